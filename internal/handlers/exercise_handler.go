package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/repository"
)

type ExerciseHandler struct {
	exerciseRepo *repository.ExerciseRepository
}

func NewExerciseHandler(exerciseRepo *repository.ExerciseRepository) *ExerciseHandler {
	return &ExerciseHandler{exerciseRepo: exerciseRepo}
}

func (h *ExerciseHandler) Create(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var input repository.CreateExerciseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(input.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if strings.TrimSpace(input.TargetMuscleGroup) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "target_muscle_group is required"})
	}
	input.CreatedBy = userID

	exercise, err := h.exerciseRepo.Create(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create exercise"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"exercise": exercise})
}

func (h *ExerciseHandler) List(c *fiber.Ctx) error {
	page, limit := parsePageLimit(c)

	exercises, total, err := h.exerciseRepo.List(c.Context(), (page-1)*limit, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch exercises"})
	}
	return c.JSON(fiber.Map{
		"exercises":  exercises,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *ExerciseHandler) Get(c *fiber.Ctx) error {
	exerciseID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	exercise, err := h.exerciseRepo.GetByID(c.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch exercise"})
	}
	return c.JSON(fiber.Map{"exercise": exercise})
}

func (h *ExerciseHandler) Update(c *fiber.Ctx) error {
	exerciseID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	var input repository.UpdateExerciseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	exercise, err := h.exerciseRepo.Update(c.Context(), exerciseID, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update exercise"})
	}
	return c.JSON(fiber.Map{"exercise": exercise})
}

func (h *ExerciseHandler) Delete(c *fiber.Ctx) error {
	exerciseID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	if err := h.exerciseRepo.Delete(c.Context(), exerciseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete exercise"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
