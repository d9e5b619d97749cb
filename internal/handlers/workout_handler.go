package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/repository"
)

type WorkoutHandler struct {
	workoutRepo *repository.WorkoutRepository
}

func NewWorkoutHandler(workoutRepo *repository.WorkoutRepository) *WorkoutHandler {
	return &WorkoutHandler{workoutRepo: workoutRepo}
}

func (h *WorkoutHandler) Create(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var input repository.CreateWorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(input.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if strings.TrimSpace(input.Type) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "type is required"})
	}
	for _, set := range input.Sets {
		if set.ExerciseID <= 0 || set.SetCount <= 0 || set.RepCount <= 0 {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "each set needs a valid exercise_id, set_count and rep_count"})
		}
	}
	input.CreatedBy = userID

	workout, err := h.workoutRepo.Create(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create workout"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) List(c *fiber.Ctx) error {
	page, limit := parsePageLimit(c)

	workouts, total, err := h.workoutRepo.List(c.Context(), (page-1)*limit, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workouts"})
	}
	return c.JSON(fiber.Map{
		"workouts":   workouts,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *WorkoutHandler) Get(c *fiber.Ctx) error {
	workoutID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	workout, err := h.workoutRepo.GetByID(c.Context(), workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workout"})
	}
	return c.JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) Update(c *fiber.Ctx) error {
	workoutID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	var input repository.UpdateWorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	workout, err := h.workoutRepo.Update(c.Context(), workoutID, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update workout"})
	}
	return c.JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) Delete(c *fiber.Ctx) error {
	workoutID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	if err := h.workoutRepo.Delete(c.Context(), workoutID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete workout"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
