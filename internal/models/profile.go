package models

import (
	"math"
	"time"
)

type Profile struct {
	ID                     int64      `json:"id"`
	UserID                 int64      `json:"user_id"`
	DateOfBirth            *time.Time `json:"date_of_birth"`
	Gender                 *string    `json:"gender"`
	HeightCM               *float64   `json:"height_cm"`
	WeightKG               *float64   `json:"weight_kg"`
	FitnessLevel           *string    `json:"fitness_level"`
	ActivityLevel          *string    `json:"activity_level"`
	ExperienceLevel        *string    `json:"experience_level"`
	PreferredIntensity     *string    `json:"preferred_intensity"`
	MedicalConditions      *[]string  `json:"medical_conditions"`
	PreviousInjuries       *[]string  `json:"previous_injuries"`
	FitnessGoals           *[]string  `json:"fitness_goals"`
	WorkoutDurationMinutes *int       `json:"workout_duration_minutes"`
	WorkoutFrequency       *int       `json:"workout_frequency"`
	OnboardingComplete     bool       `json:"onboarding_complete"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// Age derives whole years from the stored date of birth, nil when unset.
func (p *Profile) Age(now time.Time) *int {
	if p == nil || p.DateOfBirth == nil {
		return nil
	}
	dob := *p.DateOfBirth
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	return &years
}

// BMI derives kg/m² from height and weight, nil unless both are present
// and positive.
func (p *Profile) BMI() *float64 {
	if p == nil || p.HeightCM == nil || p.WeightKG == nil {
		return nil
	}
	if *p.HeightCM <= 0 || *p.WeightKG <= 0 {
		return nil
	}
	meters := *p.HeightCM / 100
	bmi := *p.WeightKG / (meters * meters)
	bmi = math.Round(bmi*10) / 10
	return &bmi
}
