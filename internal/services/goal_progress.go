package services

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

var (
	ErrWorkoutNotFound         = errors.New("goal workout not found")
	ErrWorkoutAlreadyCompleted = errors.New("goal workout already completed")
	ErrInvalidStatusTransition = errors.New("invalid goal status transition")
	ErrInvalidStatus           = errors.New("invalid goal status")
	ErrInvalidInput            = errors.New("invalid input")
	ErrForbidden               = errors.New("forbidden")
	ErrProgramNotFound         = errors.New("program not found")
)

// Milestones fire on exact counts, not thresholds: a count that jumps past a
// milestone (bulk import) does not fire it retroactively.
var workoutCountMilestones = map[int]string{
	1:  "First workout completed!",
	5:  "5 workouts completed!",
	10: "10 workouts completed!",
}

type CompleteWorkoutInput struct {
	GoalWorkoutID    int64   `json:"-"`
	ActualDuration   *int    `json:"actual_duration"`
	CaloriesBurned   *int    `json:"calories_burned"`
	Notes            *string `json:"notes"`
	Enjoyment        *int    `json:"enjoyment"`
	DifficultyRating *int    `json:"difficulty_rating"`
}

// ApplyCompletion marks one scheduled workout done, recomputes the goal's
// progress aggregate from the full workout list, flips an active goal to
// completed at 100%, and returns the achievements earned by this call. The
// goal is mutated in place; the caller owns persistence. Returns
// ErrWorkoutNotFound / ErrWorkoutAlreadyCompleted without touching the goal.
func ApplyCompletion(goal *models.Goal, input CompleteWorkoutInput, now time.Time) ([]models.Achievement, error) {
	var target *models.GoalWorkout
	for i := range goal.Workouts {
		if goal.Workouts[i].ID == input.GoalWorkoutID {
			target = &goal.Workouts[i]
			break
		}
	}
	if target == nil {
		return nil, ErrWorkoutNotFound
	}
	if target.Completed {
		return nil, ErrWorkoutAlreadyCompleted
	}

	target.Completed = true
	target.CompletedAt = &now
	// absent optional fields keep whatever value is already stored
	if input.ActualDuration != nil {
		target.ActualDuration = input.ActualDuration
	}
	if input.CaloriesBurned != nil {
		target.CaloriesBurned = input.CaloriesBurned
	}
	if input.Notes != nil {
		target.Notes = input.Notes
	}
	if input.Enjoyment != nil {
		target.Enjoyment = input.Enjoyment
	}
	if input.DifficultyRating != nil {
		target.DifficultyRating = input.DifficultyRating
	}

	goal.Progress = RecomputeProgress(goal.Workouts)

	earned := make([]models.Achievement, 0, 2)
	if description, ok := workoutCountMilestones[goal.Progress.CompletedWorkouts]; ok {
		earned = append(earned, newMilestone(description, strconv.Itoa(goal.Progress.CompletedWorkouts), now))
	}
	if goal.Progress.CompletionPercentage == 100 && goal.Status == models.GoalStatusActive {
		goal.Status = models.GoalStatusCompleted
		earned = append(earned, newMilestone("Goal completed!", strconv.Itoa(goal.Progress.CompletedWorkouts), now))
	}

	goal.Achievements = append(goal.Achievements, earned...)
	goal.UpdatedAt = now
	return earned, nil
}

// RecomputeProgress derives the aggregate from the whole workout list rather
// than incrementally, so it stays consistent even if entries were mutated
// out of band.
func RecomputeProgress(workouts []models.GoalWorkout) models.GoalProgress {
	progress := models.GoalProgress{}
	for _, workout := range workouts {
		if workout.Completed {
			progress.CompletedWorkouts++
		}
		progress.TotalCaloriesBurned += intValue(workout.CaloriesBurned)
		progress.TotalDuration += intValue(workout.ActualDuration)
	}
	if len(workouts) > 0 {
		progress.CompletionPercentage = int(math.Round(
			float64(progress.CompletedWorkouts) / float64(len(workouts)) * 100,
		))
	}
	return progress
}

// ChangeGoalStatus is the single authoritative owner-edit transition
// function. The active->completed transition belongs to ApplyCompletion
// alone, and completed/cancelled goals never leave their terminal state.
func ChangeGoalStatus(goal *models.Goal, requested models.GoalStatus, now time.Time) error {
	switch requested {
	case models.GoalStatusActive, models.GoalStatusPaused, models.GoalStatusCancelled:
	case models.GoalStatusCompleted:
		return ErrInvalidStatusTransition
	default:
		return ErrInvalidStatus
	}

	switch goal.Status {
	case models.GoalStatusCompleted, models.GoalStatusCancelled:
		return ErrInvalidStatusTransition
	}
	if goal.Status == requested {
		return ErrInvalidStatusTransition
	}

	goal.Status = requested
	goal.UpdatedAt = now
	return nil
}

func newMilestone(description, value string, now time.Time) models.Achievement {
	return models.Achievement{
		ID:          uuid.NewString(),
		Type:        models.AchievementMilestone,
		Description: description,
		Value:       value,
		EarnedAt:    now,
	}
}
