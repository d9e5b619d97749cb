package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

const exerciseColumns = `
	id, name, description, target_muscle_group, image_url, video_url,
	created_by, created_at, updated_at`

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

type CreateExerciseInput struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	TargetMuscleGroup string  `json:"target_muscle_group"`
	ImageURL          *string `json:"image_url"`
	VideoURL          *string `json:"video_url"`
	CreatedBy         int64   `json:"-"`
}

func (r *ExerciseRepository) Create(ctx context.Context, input CreateExerciseInput) (*models.Exercise, error) {
	query := `
		INSERT INTO exercises (name, description, target_muscle_group, image_url, video_url, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + exerciseColumns

	return r.scanExercise(r.db.QueryRow(ctx, query,
		input.Name,
		input.Description,
		input.TargetMuscleGroup,
		input.ImageURL,
		input.VideoURL,
		input.CreatedBy,
	))
}

type UpdateExerciseInput struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	TargetMuscleGroup *string `json:"target_muscle_group"`
	ImageURL          *string `json:"image_url"`
	VideoURL          *string `json:"video_url"`
}

func (r *ExerciseRepository) Update(ctx context.Context, exerciseID int64, input UpdateExerciseInput) (*models.Exercise, error) {
	query := `
		UPDATE exercises
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			target_muscle_group = COALESCE($3, target_muscle_group),
			image_url = COALESCE($4, image_url),
			video_url = COALESCE($5, video_url),
			updated_at = NOW()
		WHERE id = $6
		RETURNING ` + exerciseColumns

	return r.scanExercise(r.db.QueryRow(ctx, query,
		input.Name,
		input.Description,
		input.TargetMuscleGroup,
		input.ImageURL,
		input.VideoURL,
		exerciseID,
	))
}

func (r *ExerciseRepository) GetByID(ctx context.Context, exerciseID int64) (*models.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = $1`
	return r.scanExercise(r.db.QueryRow(ctx, query, exerciseID))
}

func (r *ExerciseRepository) List(ctx context.Context, offset, limit int) ([]models.Exercise, int, error) {
	query := `
		SELECT ` + exerciseColumns + `, COUNT(*) OVER ()
		FROM exercises
		ORDER BY name ASC, id ASC
		OFFSET $1 LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	total := 0
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.Name,
			&exercise.Description,
			&exercise.TargetMuscleGroup,
			&exercise.ImageURL,
			&exercise.VideoURL,
			&exercise.CreatedBy,
			&exercise.CreatedAt,
			&exercise.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, err
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return exercises, total, nil
}

func (r *ExerciseRepository) Delete(ctx context.Context, exerciseID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, exerciseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ExerciseRepository) scanExercise(row pgx.Row) (*models.Exercise, error) {
	var exercise models.Exercise
	err := row.Scan(
		&exercise.ID,
		&exercise.Name,
		&exercise.Description,
		&exercise.TargetMuscleGroup,
		&exercise.ImageURL,
		&exercise.VideoURL,
		&exercise.CreatedBy,
		&exercise.CreatedAt,
		&exercise.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}
