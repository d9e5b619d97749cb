package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

func progressNow() time.Time {
	return time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
}

func buildGoal(workoutCount int) *models.Goal {
	goal := &models.Goal{
		ID:     1,
		UserID: 42,
		Status: models.GoalStatusActive,
	}
	for i := 0; i < workoutCount; i++ {
		goal.Workouts = append(goal.Workouts, models.GoalWorkout{
			ID:            int64(i + 1),
			ScheduledDate: progressNow().AddDate(0, 0, i),
		})
	}
	return goal
}

func TestApplyCompletionMarksWorkoutAndRecomputes(t *testing.T) {
	goal := buildGoal(4)
	duration := 45
	calories := 300

	earned, err := ApplyCompletion(goal, CompleteWorkoutInput{
		GoalWorkoutID:  2,
		ActualDuration: &duration,
		CaloriesBurned: &calories,
	}, progressNow())
	if err != nil {
		t.Fatalf("ApplyCompletion: %v", err)
	}

	if !goal.Workouts[1].Completed {
		t.Fatal("workout 2 should be completed")
	}
	if goal.Workouts[1].CompletedAt == nil {
		t.Fatal("completed_at should be set")
	}
	if goal.Progress.CompletedWorkouts != 1 {
		t.Fatalf("expected 1 completed workout, got %d", goal.Progress.CompletedWorkouts)
	}
	if goal.Progress.CompletionPercentage != 25 {
		t.Fatalf("expected 25%%, got %d%%", goal.Progress.CompletionPercentage)
	}
	if goal.Progress.TotalDuration != 45 || goal.Progress.TotalCaloriesBurned != 300 {
		t.Fatalf("unexpected aggregate: duration %d, calories %d",
			goal.Progress.TotalDuration, goal.Progress.TotalCaloriesBurned)
	}
	if len(earned) != 1 || earned[0].Description != "First workout completed!" {
		t.Fatalf("expected the first-workout milestone, got %v", earned)
	}
}

func TestApplyCompletionUnknownWorkout(t *testing.T) {
	goal := buildGoal(2)

	_, err := ApplyCompletion(goal, CompleteWorkoutInput{GoalWorkoutID: 99}, progressNow())
	if !errors.Is(err, ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}
	if goal.Progress.CompletedWorkouts != 0 {
		t.Fatal("failed completion must not touch progress")
	}
}

func TestApplyCompletionIsNotIdempotent(t *testing.T) {
	goal := buildGoal(3)

	if _, err := ApplyCompletion(goal, CompleteWorkoutInput{GoalWorkoutID: 1}, progressNow()); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	before := goal.Progress

	_, err := ApplyCompletion(goal, CompleteWorkoutInput{GoalWorkoutID: 1}, progressNow())
	if !errors.Is(err, ErrWorkoutAlreadyCompleted) {
		t.Fatalf("expected ErrWorkoutAlreadyCompleted, got %v", err)
	}
	if goal.Progress != before {
		t.Fatal("second completion must leave progress unchanged")
	}
	if len(goal.Achievements) != 1 {
		t.Fatalf("no new achievements may be earned, got %d", len(goal.Achievements))
	}
}

func TestApplyCompletionCopiesDifficultyRating(t *testing.T) {
	goal := buildGoal(2)
	rating := 4

	if _, err := ApplyCompletion(goal, CompleteWorkoutInput{
		GoalWorkoutID:    1,
		DifficultyRating: &rating,
	}, progressNow()); err != nil {
		t.Fatalf("ApplyCompletion: %v", err)
	}
	if goal.Workouts[0].DifficultyRating == nil || *goal.Workouts[0].DifficultyRating != 4 {
		t.Fatal("difficulty rating not copied onto the completed workout")
	}
	if goal.Workouts[1].DifficultyRating != nil {
		t.Fatal("difficulty rating leaked onto an untouched workout")
	}
}

func TestApplyCompletionKeepsStoredOptionalFields(t *testing.T) {
	goal := buildGoal(1)
	notes := "pre-filled"
	goal.Workouts[0].Notes = &notes

	// no Notes in the input: the stored value must survive
	if _, err := ApplyCompletion(goal, CompleteWorkoutInput{GoalWorkoutID: 1}, progressNow()); err != nil {
		t.Fatalf("ApplyCompletion: %v", err)
	}
	if goal.Workouts[0].Notes == nil || *goal.Workouts[0].Notes != "pre-filled" {
		t.Fatal("absent optional input overwrote a stored value")
	}
}

func TestApplyCompletionFlipsActiveGoalAtHundredPercent(t *testing.T) {
	goal := buildGoal(1)

	earned, err := ApplyCompletion(goal, CompleteWorkoutInput{GoalWorkoutID: 1}, progressNow())
	if err != nil {
		t.Fatalf("ApplyCompletion: %v", err)
	}
	if goal.Status != models.GoalStatusCompleted {
		t.Fatalf("expected completed status, got %q", goal.Status)
	}
	// first-workout milestone plus goal-completed, in that order
	if len(earned) != 2 {
		t.Fatalf("expected 2 achievements, got %d", len(earned))
	}
	if earned[0].Description != "First workout completed!" || earned[1].Description != "Goal completed!" {
		t.Fatalf("unexpected achievements: %q, %q", earned[0].Description, earned[1].Description)
	}
	for _, a := range earned {
		if a.ID == "" || a.Type != models.AchievementMilestone {
			t.Fatalf("malformed achievement %+v", a)
		}
	}
}

func TestApplyCompletionPausedGoalStaysPausedAtHundredPercent(t *testing.T) {
	goal := buildGoal(1)
	goal.Status = models.GoalStatusPaused

	earned, err := ApplyCompletion(goal, CompleteWorkoutInput{GoalWorkoutID: 1}, progressNow())
	if err != nil {
		t.Fatalf("ApplyCompletion: %v", err)
	}
	if goal.Status != models.GoalStatusPaused {
		t.Fatalf("only active goals auto-complete, got %q", goal.Status)
	}
	for _, a := range earned {
		if a.Description == "Goal completed!" {
			t.Fatal("goal-completed achievement fired on a paused goal")
		}
	}
}

func TestApplyCompletionMilestonesFireOnExactCounts(t *testing.T) {
	goal := buildGoal(12)

	milestones := 0
	for i := 1; i <= 12; i++ {
		earned, err := ApplyCompletion(goal, CompleteWorkoutInput{GoalWorkoutID: int64(i)}, progressNow())
		if err != nil {
			t.Fatalf("completion %d: %v", i, err)
		}
		for _, a := range earned {
			switch a.Description {
			case "First workout completed!", "5 workouts completed!", "10 workouts completed!":
				milestones++
				if i != 1 && i != 5 && i != 10 {
					t.Fatalf("count milestone fired at completion %d", i)
				}
			}
		}
	}
	if milestones != 3 {
		t.Fatalf("expected exactly 3 count milestones, got %d", milestones)
	}
}

func TestRecomputeProgressEmptyList(t *testing.T) {
	progress := RecomputeProgress(nil)
	if progress.CompletionPercentage != 0 || progress.CompletedWorkouts != 0 {
		t.Fatalf("empty list must yield zero progress, got %+v", progress)
	}
}

func TestRecomputeProgressRoundsPercentage(t *testing.T) {
	workouts := []models.GoalWorkout{
		{ID: 1, Completed: true},
		{ID: 2},
		{ID: 3},
	}
	progress := RecomputeProgress(workouts)
	if progress.CompletionPercentage != 33 {
		t.Fatalf("expected 33%%, got %d%%", progress.CompletionPercentage)
	}
}

func TestChangeGoalStatusTransitions(t *testing.T) {
	cases := []struct {
		name      string
		current   models.GoalStatus
		requested models.GoalStatus
		wantErr   error
	}{
		{"pause active", models.GoalStatusActive, models.GoalStatusPaused, nil},
		{"resume paused", models.GoalStatusPaused, models.GoalStatusActive, nil},
		{"cancel active", models.GoalStatusActive, models.GoalStatusCancelled, nil},
		{"complete by edit", models.GoalStatusActive, models.GoalStatusCompleted, ErrInvalidStatusTransition},
		{"reopen completed", models.GoalStatusCompleted, models.GoalStatusActive, ErrInvalidStatusTransition},
		{"reopen cancelled", models.GoalStatusCancelled, models.GoalStatusActive, ErrInvalidStatusTransition},
		{"same status", models.GoalStatusActive, models.GoalStatusActive, ErrInvalidStatusTransition},
		{"unknown status", models.GoalStatusActive, models.GoalStatus("published"), ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			goal := &models.Goal{Status: tc.current}
			err := ChangeGoalStatus(goal, tc.requested, progressNow())
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if goal.Status != tc.requested {
					t.Fatalf("status not applied: got %q", goal.Status)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if goal.Status != tc.current {
				t.Fatalf("failed transition mutated status to %q", goal.Status)
			}
		})
	}
}
