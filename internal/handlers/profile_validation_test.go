package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/repository"
)

func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestValidateProfileInputAcceptsEmpty(t *testing.T) {
	if msg := validateProfileInput(&repository.UpdateProfileInput{}); msg != "" {
		t.Fatalf("empty input should validate, got %q", msg)
	}
}

func TestValidateProfileInputAcceptsBoundaryValues(t *testing.T) {
	adult := time.Now().AddDate(-30, 0, 0)
	input := &repository.UpdateProfileInput{
		DateOfBirth:      &adult,
		WorkoutFrequency: intPtr(7),
	}
	if msg := validateProfileInput(input); msg != "" {
		t.Fatalf("expected valid input, got %q", msg)
	}
}

func TestValidateProfileInputNormalizesEnums(t *testing.T) {
	input := &repository.UpdateProfileInput{
		ActivityLevel:      strPtr("  Moderately_Active "),
		ExperienceLevel:    strPtr("BEGINNER"),
		PreferredIntensity: strPtr("High"),
		FitnessLevel:       strPtr("Advanced"),
	}
	if msg := validateProfileInput(input); msg != "" {
		t.Fatalf("expected valid input, got %q", msg)
	}
	if *input.ActivityLevel != "moderately_active" {
		t.Fatalf("activity level not normalized: %q", *input.ActivityLevel)
	}
	if *input.ExperienceLevel != "beginner" || *input.PreferredIntensity != "high" || *input.FitnessLevel != "advanced" {
		t.Fatal("enum values not normalized to lowercase")
	}
}

func TestValidateProfileInputRejectsBadValues(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)
	tooYoung := time.Now().AddDate(-12, 0, 0)
	tooOld := time.Now().AddDate(-121, 0, 0)
	cases := []struct {
		name  string
		input repository.UpdateProfileInput
		want  string
	}{
		{"future dob", repository.UpdateProfileInput{DateOfBirth: &future}, "date_of_birth"},
		{"under 13", repository.UpdateProfileInput{DateOfBirth: &tooYoung}, "date_of_birth"},
		{"over 120", repository.UpdateProfileInput{DateOfBirth: &tooOld}, "date_of_birth"},
		{"tiny height", repository.UpdateProfileInput{HeightCM: floatPtr(10)}, "height_cm"},
		{"huge weight", repository.UpdateProfileInput{WeightKG: floatPtr(900)}, "weight_kg"},
		{"bad activity", repository.UpdateProfileInput{ActivityLevel: strPtr("couch_potato")}, "activity_level"},
		{"bad experience", repository.UpdateProfileInput{ExperienceLevel: strPtr("guru")}, "experience_level"},
		{"bad intensity", repository.UpdateProfileInput{PreferredIntensity: strPtr("brutal")}, "preferred_intensity"},
		{"bad fitness level", repository.UpdateProfileInput{FitnessLevel: strPtr("elite")}, "fitness_level"},
		{"short duration", repository.UpdateProfileInput{WorkoutDurationMinutes: intPtr(2)}, "workout_duration_minutes"},
		{"excess frequency", repository.UpdateProfileInput{WorkoutFrequency: intPtr(8)}, "workout_frequency"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := validateProfileInput(&tc.input)
			if msg == "" {
				t.Fatal("expected a validation message")
			}
			if !strings.Contains(msg, tc.want) {
				t.Fatalf("message %q should mention %q", msg, tc.want)
			}
		})
	}
}

func TestValidateProgramInput(t *testing.T) {
	valid := repository.CreateProgramInput{
		Title:                   "Couch to 5K",
		Category:                "Cardio",
		Difficulty:              "Beginner",
		EstimatedTimePerSession: 30,
		WorkoutsPerWeek:         3,
		WorkoutIDs:              []int64{1, 2},
	}
	if msg := validateProgramInput(&valid); msg != "" {
		t.Fatalf("expected valid program, got %q", msg)
	}
	if valid.Difficulty != "beginner" || valid.Category != "cardio" {
		t.Fatal("difficulty and category should be normalized")
	}

	missingTitle := valid
	missingTitle.Title = "  "
	if msg := validateProgramInput(&missingTitle); msg == "" {
		t.Fatal("expected a validation message for a blank title")
	}

	badDifficulty := valid
	badDifficulty.Difficulty = "impossible"
	if msg := validateProgramInput(&badDifficulty); msg == "" {
		t.Fatal("expected a validation message for an unknown difficulty")
	}

	noWorkouts := valid
	noWorkouts.WorkoutIDs = nil
	if msg := validateProgramInput(&noWorkouts); msg == "" {
		t.Fatal("expected a validation message for an empty workout list")
	}
}
