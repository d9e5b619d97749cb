package models

import "time"

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCancelled GoalStatus = "cancelled"
)

type AchievementType string

const (
	AchievementMilestone    AchievementType = "milestone"
	AchievementPersonalBest AchievementType = "personal_best"
	AchievementStreak       AchievementType = "streak"
	AchievementConsistency  AchievementType = "consistency"
)

// GoalTargets are fixed at goal creation and never edited afterwards.
type GoalTargets struct {
	TotalWorkouts   int `json:"total_workouts"`
	WorkoutsPerWeek int `json:"workouts_per_week"`
	TotalCalories   int `json:"total_calories"`
	TotalDuration   int `json:"total_duration"`
}

// GoalProgress is a derived aggregate: it is always recomputed from the full
// workout list, never authored independently.
type GoalProgress struct {
	CompletedWorkouts    int `json:"completed_workouts"`
	TotalCaloriesBurned  int `json:"total_calories_burned"`
	TotalDuration        int `json:"total_duration"`
	CompletionPercentage int `json:"completion_percentage"`
}

type GoalWorkout struct {
	ID               int64      `json:"id"`
	WorkoutID        *int64     `json:"workout_id,omitempty"`
	ScheduledDate    time.Time  `json:"scheduled_date"`
	Completed        bool       `json:"completed"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	ActualDuration   *int       `json:"actual_duration,omitempty"`
	CaloriesBurned   *int       `json:"calories_burned,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	Enjoyment        *int       `json:"enjoyment,omitempty"`
	DifficultyRating *int       `json:"difficulty_rating,omitempty"`
}

// Achievement rows are append-only; once earned they are never edited.
type Achievement struct {
	ID          string          `json:"id"`
	Type        AchievementType `json:"type"`
	Description string          `json:"description"`
	Value       string          `json:"value"`
	EarnedAt    time.Time       `json:"earned_at"`
}

type Goal struct {
	ID           int64         `json:"id"`
	UserID       int64         `json:"user_id"`
	ProgramID    *int64        `json:"program_id,omitempty"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	Status       GoalStatus    `json:"status"`
	Targets      GoalTargets   `json:"targets"`
	Workouts     []GoalWorkout `json:"workouts"`
	Progress     GoalProgress  `json:"progress"`
	Achievements []Achievement `json:"achievements"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
