package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

const profileColumns = `
	id, user_id, date_of_birth, gender, height_cm, weight_kg,
	fitness_level, activity_level, experience_level, preferred_intensity,
	medical_conditions, previous_injuries, fitness_goals,
	workout_duration_minutes, workout_frequency, onboarding_complete,
	created_at, updated_at`

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO profiles (user_id) VALUES ($1)`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, userID))
}

type UpdateProfileInput struct {
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
}

// UpdatePartial applies COALESCE semantics: an absent field keeps the stored
// value, it is never overwritten with null.
func (r *ProfileRepository) UpdatePartial(ctx context.Context, userID int64, input UpdateProfileInput) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET date_of_birth = COALESCE($1, date_of_birth),
			gender = COALESCE($2, gender),
			height_cm = COALESCE($3, height_cm),
			weight_kg = COALESCE($4, weight_kg),
			fitness_level = COALESCE($5, fitness_level),
			activity_level = COALESCE($6, activity_level),
			experience_level = COALESCE($7, experience_level),
			preferred_intensity = COALESCE($8, preferred_intensity),
			medical_conditions = COALESCE($9, medical_conditions),
			previous_injuries = COALESCE($10, previous_injuries),
			fitness_goals = COALESCE($11, fitness_goals),
			workout_duration_minutes = COALESCE($12, workout_duration_minutes),
			workout_frequency = COALESCE($13, workout_frequency),
			onboarding_complete = TRUE,
			updated_at = NOW()
		WHERE user_id = $14
		RETURNING ` + profileColumns

	return r.scanProfile(r.db.QueryRow(ctx, query,
		input.DateOfBirth,
		input.Gender,
		input.HeightCM,
		input.WeightKG,
		input.FitnessLevel,
		input.ActivityLevel,
		input.ExperienceLevel,
		input.PreferredIntensity,
		input.MedicalConditions,
		input.PreviousInjuries,
		input.FitnessGoals,
		input.WorkoutDurationMinutes,
		input.WorkoutFrequency,
		userID,
	))
}

func (r *ProfileRepository) scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.DateOfBirth,
		&profile.Gender,
		&profile.HeightCM,
		&profile.WeightKG,
		&profile.FitnessLevel,
		&profile.ActivityLevel,
		&profile.ExperienceLevel,
		&profile.PreferredIntensity,
		&profile.MedicalConditions,
		&profile.PreviousInjuries,
		&profile.FitnessGoals,
		&profile.WorkoutDurationMinutes,
		&profile.WorkoutFrequency,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
