package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

const workoutColumns = `
	id, name, type, difficulty, sets, created_by, created_at, updated_at`

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

type CreateWorkoutInput struct {
	Name       string              `json:"name"`
	Type       string              `json:"type"`
	Difficulty *string             `json:"difficulty"`
	Sets       []models.WorkoutSet `json:"sets"`
	CreatedBy  int64               `json:"-"`
}

func (r *WorkoutRepository) Create(ctx context.Context, input CreateWorkoutInput) (*models.Workout, error) {
	sets, err := json.Marshal(input.Sets)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO workouts (name, type, difficulty, sets, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + workoutColumns

	return r.scanWorkout(r.db.QueryRow(ctx, query,
		input.Name,
		input.Type,
		input.Difficulty,
		sets,
		input.CreatedBy,
	))
}

type UpdateWorkoutInput struct {
	Name       *string              `json:"name"`
	Type       *string              `json:"type"`
	Difficulty *string              `json:"difficulty"`
	Sets       *[]models.WorkoutSet `json:"sets"`
}

func (r *WorkoutRepository) Update(ctx context.Context, workoutID int64, input UpdateWorkoutInput) (*models.Workout, error) {
	var sets []byte
	if input.Sets != nil {
		encoded, err := json.Marshal(*input.Sets)
		if err != nil {
			return nil, err
		}
		sets = encoded
	}
	query := `
		UPDATE workouts
		SET name = COALESCE($1, name),
			type = COALESCE($2, type),
			difficulty = COALESCE($3, difficulty),
			sets = COALESCE($4, sets),
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + workoutColumns

	return r.scanWorkout(r.db.QueryRow(ctx, query,
		input.Name,
		input.Type,
		input.Difficulty,
		sets,
		workoutID,
	))
}

func (r *WorkoutRepository) GetByID(ctx context.Context, workoutID int64) (*models.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1`
	return r.scanWorkout(r.db.QueryRow(ctx, query, workoutID))
}

func (r *WorkoutRepository) List(ctx context.Context, offset, limit int) ([]models.Workout, int, error) {
	query := `
		SELECT ` + workoutColumns + `, COUNT(*) OVER ()
		FROM workouts
		ORDER BY name ASC, id ASC
		OFFSET $1 LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	total := 0
	for rows.Next() {
		var workout models.Workout
		var sets []byte
		if err := rows.Scan(
			&workout.ID,
			&workout.Name,
			&workout.Type,
			&workout.Difficulty,
			&sets,
			&workout.CreatedBy,
			&workout.CreatedAt,
			&workout.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, err
		}
		if err := decodeSets(sets, &workout); err != nil {
			return nil, 0, err
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return workouts, total, nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, workoutID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, workoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *WorkoutRepository) scanWorkout(row pgx.Row) (*models.Workout, error) {
	var workout models.Workout
	var sets []byte
	err := row.Scan(
		&workout.ID,
		&workout.Name,
		&workout.Type,
		&workout.Difficulty,
		&sets,
		&workout.CreatedBy,
		&workout.CreatedAt,
		&workout.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := decodeSets(sets, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func decodeSets(data []byte, workout *models.Workout) error {
	workout.Sets = make([]models.WorkoutSet, 0)
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, &workout.Sets)
}
