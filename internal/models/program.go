package models

import "time"

type Program struct {
	ID                      int64     `json:"id"`
	Title                   string    `json:"title"`
	Description             *string   `json:"description,omitempty"`
	Category                string    `json:"category"`
	Difficulty              string    `json:"difficulty"`
	EstimatedTimePerSession int       `json:"estimated_time_per_session"`
	WorkoutsPerWeek         int       `json:"workouts_per_week"`
	WorkoutIDs              []int64   `json:"workout_ids"`
	RatingAverage           *float64  `json:"rating_average"`
	RatingCount             int       `json:"rating_count"`
	CreatedBy               int64     `json:"created_by"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// ProgramSuggestion is a catalog program annotated with a match score and a
// human-readable reason for the ranking.
type ProgramSuggestion struct {
	Program
	MatchScore int    `json:"match_score"`
	Reason     string `json:"reason"`
}
