package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/repository"
)

var (
	validActivityLevels = []string{
		"sedentary", "lightly_active", "moderately_active", "very_active", "extremely_active",
	}
	validExperienceLevels = []string{"beginner", "novice", "intermediate", "advanced", "expert"}
	validIntensities      = []string{"low", "moderate", "high", "extreme"}
	validFitnessLevels    = []string{"beginner", "intermediate", "advanced"}
)

// validateProfileInput returns an empty string when the input is acceptable,
// otherwise a message for the client. Only fields present in the request are
// checked; absent fields keep their stored values.
func validateProfileInput(input *repository.UpdateProfileInput) string {
	if input.DateOfBirth != nil {
		if input.DateOfBirth.After(time.Now()) {
			return "date_of_birth cannot be in the future"
		}
		age := yearsSince(*input.DateOfBirth, time.Now())
		if age < 13 || age > 120 {
			return "date_of_birth must correspond to an age between 13 and 120"
		}
	}
	if input.HeightCM != nil && (*input.HeightCM < 50 || *input.HeightCM > 280) {
		return "height_cm must be between 50 and 280"
	}
	if input.WeightKG != nil && (*input.WeightKG < 20 || *input.WeightKG > 500) {
		return "weight_kg must be between 20 and 500"
	}
	if input.ActivityLevel != nil {
		normalized := normalizeEnumValue(*input.ActivityLevel)
		if !containsString(validActivityLevels, normalized) {
			return fmt.Sprintf("activity_level must be one of: %s", strings.Join(validActivityLevels, ", "))
		}
		input.ActivityLevel = &normalized
	}
	if input.ExperienceLevel != nil {
		normalized := normalizeEnumValue(*input.ExperienceLevel)
		if !containsString(validExperienceLevels, normalized) {
			return fmt.Sprintf("experience_level must be one of: %s", strings.Join(validExperienceLevels, ", "))
		}
		input.ExperienceLevel = &normalized
	}
	if input.PreferredIntensity != nil {
		normalized := normalizeEnumValue(*input.PreferredIntensity)
		if !containsString(validIntensities, normalized) {
			return fmt.Sprintf("preferred_intensity must be one of: %s", strings.Join(validIntensities, ", "))
		}
		input.PreferredIntensity = &normalized
	}
	if input.FitnessLevel != nil {
		normalized := normalizeEnumValue(*input.FitnessLevel)
		if !containsString(validFitnessLevels, normalized) {
			return fmt.Sprintf("fitness_level must be one of: %s", strings.Join(validFitnessLevels, ", "))
		}
		input.FitnessLevel = &normalized
	}
	if input.WorkoutDurationMinutes != nil && (*input.WorkoutDurationMinutes < 5 || *input.WorkoutDurationMinutes > 300) {
		return "workout_duration_minutes must be between 5 and 300"
	}
	if input.WorkoutFrequency != nil && (*input.WorkoutFrequency < 1 || *input.WorkoutFrequency > 7) {
		return "workout_frequency must be between 1 and 7"
	}
	return ""
}

func yearsSince(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	return years
}

func normalizeEnumValue(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
