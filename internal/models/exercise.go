package models

import "time"

type Exercise struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description,omitempty"`
	TargetMuscleGroup string    `json:"target_muscle_group"`
	ImageURL          *string   `json:"image_url,omitempty"`
	VideoURL          *string   `json:"video_url,omitempty"`
	CreatedBy         int64     `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
