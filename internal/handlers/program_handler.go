package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/repository"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/services"
)

var validProgramDifficulties = []string{"beginner", "intermediate", "advanced"}

type ProgramHandler struct {
	programRepo     *repository.ProgramRepository
	recommendations *services.RecommendationService
}

func NewProgramHandler(programRepo *repository.ProgramRepository, recommendations *services.RecommendationService) *ProgramHandler {
	return &ProgramHandler{programRepo: programRepo, recommendations: recommendations}
}

func (h *ProgramHandler) Create(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var input repository.CreateProgramInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validateProgramInput(&input); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	input.CreatedBy = userID

	program, err := h.programRepo.Create(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create program"})
	}
	h.recommendations.InvalidateCatalog(c.Context())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"program": program})
}

func validateProgramInput(input *repository.CreateProgramInput) string {
	if strings.TrimSpace(input.Title) == "" {
		return "title is required"
	}
	if strings.TrimSpace(input.Category) == "" {
		return "category is required"
	}
	normalized := normalizeEnumValue(input.Difficulty)
	if !containsString(validProgramDifficulties, normalized) {
		return "difficulty must be one of: " + strings.Join(validProgramDifficulties, ", ")
	}
	input.Difficulty = normalized
	input.Category = normalizeEnumValue(input.Category)
	if input.EstimatedTimePerSession <= 0 {
		return "estimated_time_per_session must be positive"
	}
	if input.WorkoutsPerWeek < 1 || input.WorkoutsPerWeek > 14 {
		return "workouts_per_week must be between 1 and 14"
	}
	if len(input.WorkoutIDs) == 0 {
		return "workout_ids must not be empty"
	}
	return ""
}

func (h *ProgramHandler) List(c *fiber.Ctx) error {
	page, limit := parsePageLimit(c)

	programs, total, err := h.programRepo.List(c.Context(), (page-1)*limit, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch programs"})
	}
	return c.JSON(fiber.Map{
		"programs":   programs,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *ProgramHandler) Get(c *fiber.Ctx) error {
	programID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	program, err := h.programRepo.GetByID(c.Context(), programID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch program"})
	}
	return c.JSON(fiber.Map{"program": program})
}

func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	programID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	var input repository.UpdateProgramInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Difficulty != nil {
		normalized := normalizeEnumValue(*input.Difficulty)
		if !containsString(validProgramDifficulties, normalized) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "difficulty must be one of: " + strings.Join(validProgramDifficulties, ", ")})
		}
		input.Difficulty = &normalized
	}
	if input.Category != nil {
		normalized := normalizeEnumValue(*input.Category)
		input.Category = &normalized
	}

	program, err := h.programRepo.Update(c.Context(), programID, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update program"})
	}
	h.recommendations.InvalidateCatalog(c.Context())
	return c.JSON(fiber.Map{"program": program})
}

func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	programID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	if err := h.programRepo.Delete(c.Context(), programID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete program"})
	}
	h.recommendations.InvalidateCatalog(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

// Suggestions returns ranked program suggestions for the authenticated user.
func (h *ProgramHandler) Suggestions(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	limit := services.DefaultSuggestionLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 20 {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "limit must be between 1 and 20"})
		}
		limit = parsed
	}

	suggestions, err := h.recommendations.SuggestForUser(c.Context(), userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build suggestions"})
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}
