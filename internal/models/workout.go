package models

import "time"

// WorkoutSet is one exercise prescription inside a workout. The set list is
// stored as a JSONB column on the workout row.
type WorkoutSet struct {
	ExerciseID int64 `json:"exercise_id"`
	SetCount   int   `json:"set_count"`
	RepCount   int   `json:"rep_count"`
}

type Workout struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Difficulty *string      `json:"difficulty,omitempty"`
	Sets       []WorkoutSet `json:"sets"`
	CreatedBy  int64        `json:"created_by"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
