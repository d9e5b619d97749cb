package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/services"
)

type GoalHandler struct {
	goalService *services.GoalService
}

func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

type createGoalRequest struct {
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	Targets   models.GoalTargets `json:"targets"`
	ProgramID *int64             `json:"program_id"`
	Workouts  []struct {
		WorkoutID     *int64    `json:"workout_id"`
		ScheduledDate time.Time `json:"scheduled_date"`
	} `json:"workouts"`
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_date and end_date are required"})
	}

	input := services.CreateGoalInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Targets:   req.Targets,
		ProgramID: req.ProgramID,
	}
	for _, workout := range req.Workouts {
		input.Workouts = append(input.Workouts, services.GoalWorkoutScheduleInput{
			WorkoutID:     workout.WorkoutID,
			ScheduledDate: workout.ScheduledDate,
		})
	}

	goal, realism, err := h.goalService.CreateGoal(c.Context(), userID, input)
	if err != nil {
		return mapGoalError(c, err, "Failed to create goal")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"goal":    goal,
		"realism": realism,
	})
}

func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	goals, err := h.goalService.ListGoals(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch goals"})
	}
	return c.JSON(fiber.Map{"goals": goals})
}

func (h *GoalHandler) Get(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	goalID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	goal, err := h.goalService.GetGoal(c.Context(), userID, goalID)
	if err != nil {
		return mapGoalError(c, err, "Failed to fetch goal")
	}
	return c.JSON(fiber.Map{"goal": goal})
}

type changeStatusRequest struct {
	Status models.GoalStatus `json:"status"`
}

func (h *GoalHandler) ChangeStatus(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	goalID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	var req changeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	goal, err := h.goalService.ChangeStatus(c.Context(), userID, goalID, req.Status)
	if err != nil {
		return mapGoalError(c, err, "Failed to update goal status")
	}
	return c.JSON(fiber.Map{"goal": goal})
}

func (h *GoalHandler) CompleteWorkout(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	goalID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}
	workoutID, err := strconv.ParseInt(c.Params("workoutId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	var input services.CompleteWorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	input.GoalWorkoutID = workoutID
	if input.Enjoyment != nil && (*input.Enjoyment < 1 || *input.Enjoyment > 5) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enjoyment must be between 1 and 5"})
	}
	if input.DifficultyRating != nil && (*input.DifficultyRating < 1 || *input.DifficultyRating > 5) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "difficulty_rating must be between 1 and 5"})
	}

	goal, earned, err := h.goalService.CompleteWorkout(c.Context(), userID, goalID, input)
	if err != nil {
		return mapGoalError(c, err, "Failed to complete workout")
	}
	return c.JSON(fiber.Map{
		"goal":         goal,
		"achievements": earned,
	})
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	goalID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	if err := h.goalService.DeleteGoal(c.Context(), userID, goalID); err != nil {
		return mapGoalError(c, err, "Failed to delete goal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func mapGoalError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	case errors.Is(err, services.ErrProgramNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
	case errors.Is(err, services.ErrWorkoutNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Scheduled workout not found"})
	case errors.Is(err, services.ErrWorkoutAlreadyCompleted):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Workout already completed"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this goal"})
	case errors.Is(err, services.ErrInvalidStatusTransition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid status transition"})
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal status"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal input"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
	}
}
