package services

import (
	"strings"
	"testing"
	"time"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

func realismWindow(days int) (time.Time, time.Time) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, days)
}

func TestCheckGoalRealismNilProfile(t *testing.T) {
	start, end := realismWindow(7)
	result := CheckGoalRealism(nil, GoalRealismInput{
		ProposedWorkoutCount: 50,
		StartDate:            start,
		EndDate:              end,
	})
	if !result.IsRealistic {
		t.Fatal("nil profile must yield a realistic result")
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestCheckGoalRealismBeginnerOverload(t *testing.T) {
	start, end := realismWindow(7)
	profile := &models.Profile{FitnessLevel: strPtr("beginner")}

	result := CheckGoalRealism(profile, GoalRealismInput{
		ProposedWorkoutCount: 10,
		StartDate:            start,
		EndDate:              end,
	})
	if result.IsRealistic {
		t.Fatal("10 workouts in 7 days should not be realistic for a beginner")
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "beginner") {
		t.Fatalf("warning should name the level: %q", result.Warnings[0])
	}
}

func TestCheckGoalRealismWithinLevelLimit(t *testing.T) {
	start, end := realismWindow(7)
	profile := &models.Profile{FitnessLevel: strPtr("advanced")}

	result := CheckGoalRealism(profile, GoalRealismInput{
		ProposedWorkoutCount: 7,
		StartDate:            start,
		EndDate:              end,
	})
	if !result.IsRealistic {
		t.Fatalf("7 workouts per week is within the advanced limit, got warnings %v", result.Warnings)
	}
}

func TestCheckGoalRealismSedentaryCeiling(t *testing.T) {
	start, end := realismWindow(7)
	profile := &models.Profile{ActivityLevel: strPtr("sedentary")}

	result := CheckGoalRealism(profile, GoalRealismInput{
		ProposedWorkoutCount: 4,
		StartDate:            start,
		EndDate:              end,
	})
	if result.IsRealistic {
		t.Fatal("4 weekly workouts should warn for a sedentary profile")
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "sedentary") {
		t.Fatalf("expected a sedentary warning, got %v", result.Warnings)
	}
}

func TestCheckGoalRealismMedicalConditionsAlwaysWarn(t *testing.T) {
	start, end := realismWindow(30)
	profile := &models.Profile{
		MedicalConditions: slicePtr([]string{"asthma"}),
	}

	result := CheckGoalRealism(profile, GoalRealismInput{
		ProposedWorkoutCount: 1,
		StartDate:            start,
		EndDate:              end,
	})
	if result.IsRealistic {
		t.Fatal("medical conditions should always produce a warning")
	}
	if !strings.Contains(result.Warnings[0], "healthcare provider") {
		t.Fatalf("unexpected warning %q", result.Warnings[0])
	}
}

func TestCheckGoalRealismAccumulatesWarnings(t *testing.T) {
	start, end := realismWindow(7)
	profile := &models.Profile{
		FitnessLevel:      strPtr("beginner"),
		ActivityLevel:     strPtr("sedentary"),
		MedicalConditions: slicePtr([]string{"hypertension"}),
	}

	result := CheckGoalRealism(profile, GoalRealismInput{
		ProposedWorkoutCount: 10,
		StartDate:            start,
		EndDate:              end,
	})
	if len(result.Warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %v", result.Warnings)
	}
}

func TestCheckGoalRealismZeroDayWindow(t *testing.T) {
	start, _ := realismWindow(0)
	profile := &models.Profile{FitnessLevel: strPtr("beginner")}

	result := CheckGoalRealism(profile, GoalRealismInput{
		ProposedWorkoutCount: 10,
		StartDate:            start,
		EndDate:              start,
	})
	// a degenerate window computes zero weekly load, so only non-rate checks
	// can warn
	if !result.IsRealistic {
		t.Fatalf("expected realistic for a zero-day window, got %v", result.Warnings)
	}
}
