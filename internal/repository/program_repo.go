package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

const programColumns = `
	id, title, description, category, difficulty, estimated_time_per_session,
	workouts_per_week, workout_ids, rating_average, rating_count,
	created_by, created_at, updated_at`

type ProgramRepository struct {
	db DBTX
}

func NewProgramRepository(db DBTX) *ProgramRepository {
	return &ProgramRepository{db: db}
}

type CreateProgramInput struct {
	Title                   string  `json:"title"`
	Description             *string `json:"description"`
	Category                string  `json:"category"`
	Difficulty              string  `json:"difficulty"`
	EstimatedTimePerSession int     `json:"estimated_time_per_session"`
	WorkoutsPerWeek         int     `json:"workouts_per_week"`
	WorkoutIDs              []int64 `json:"workout_ids"`
	CreatedBy               int64   `json:"-"`
}

func (r *ProgramRepository) Create(ctx context.Context, input CreateProgramInput) (*models.Program, error) {
	query := `
		INSERT INTO programs (title, description, category, difficulty,
			estimated_time_per_session, workouts_per_week, workout_ids, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + programColumns

	return r.scanProgram(r.db.QueryRow(ctx, query,
		input.Title,
		input.Description,
		input.Category,
		input.Difficulty,
		input.EstimatedTimePerSession,
		input.WorkoutsPerWeek,
		input.WorkoutIDs,
		input.CreatedBy,
	))
}

type UpdateProgramInput struct {
	Title                   *string  `json:"title"`
	Description             *string  `json:"description"`
	Category                *string  `json:"category"`
	Difficulty              *string  `json:"difficulty"`
	EstimatedTimePerSession *int     `json:"estimated_time_per_session"`
	WorkoutsPerWeek         *int     `json:"workouts_per_week"`
	WorkoutIDs              *[]int64 `json:"workout_ids"`
}

func (r *ProgramRepository) Update(ctx context.Context, programID int64, input UpdateProgramInput) (*models.Program, error) {
	query := `
		UPDATE programs
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			category = COALESCE($3, category),
			difficulty = COALESCE($4, difficulty),
			estimated_time_per_session = COALESCE($5, estimated_time_per_session),
			workouts_per_week = COALESCE($6, workouts_per_week),
			workout_ids = COALESCE($7, workout_ids),
			updated_at = NOW()
		WHERE id = $8
		RETURNING ` + programColumns

	return r.scanProgram(r.db.QueryRow(ctx, query,
		input.Title,
		input.Description,
		input.Category,
		input.Difficulty,
		input.EstimatedTimePerSession,
		input.WorkoutsPerWeek,
		input.WorkoutIDs,
		programID,
	))
}

func (r *ProgramRepository) GetByID(ctx context.Context, programID int64) (*models.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE id = $1`
	return r.scanProgram(r.db.QueryRow(ctx, query, programID))
}

// ListAll returns the whole catalog in its default ordering: rating, then
// recency. Suggestion ranking relies on this ordering for the no-profile
// fallback.
func (r *ProgramRepository) ListAll(ctx context.Context) ([]models.Program, error) {
	query := `
		SELECT ` + programColumns + `
		FROM programs
		ORDER BY rating_average DESC NULLS LAST, created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make([]models.Program, 0)
	for rows.Next() {
		program, err := r.scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, *program)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *ProgramRepository) List(ctx context.Context, offset, limit int) ([]models.Program, int, error) {
	query := `
		SELECT ` + programColumns + `, COUNT(*) OVER ()
		FROM programs
		ORDER BY rating_average DESC NULLS LAST, created_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	programs := make([]models.Program, 0)
	total := 0
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(
			&program.ID,
			&program.Title,
			&program.Description,
			&program.Category,
			&program.Difficulty,
			&program.EstimatedTimePerSession,
			&program.WorkoutsPerWeek,
			&program.WorkoutIDs,
			&program.RatingAverage,
			&program.RatingCount,
			&program.CreatedBy,
			&program.CreatedAt,
			&program.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, err
		}
		programs = append(programs, program)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return programs, total, nil
}

func (r *ProgramRepository) Delete(ctx context.Context, programID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1`, programID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProgramRepository) scanProgram(row pgx.Row) (*models.Program, error) {
	var program models.Program
	err := row.Scan(
		&program.ID,
		&program.Title,
		&program.Description,
		&program.Category,
		&program.Difficulty,
		&program.EstimatedTimePerSession,
		&program.WorkoutsPerWeek,
		&program.WorkoutIDs,
		&program.RatingAverage,
		&program.RatingCount,
		&program.CreatedBy,
		&program.CreatedAt,
		&program.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &program, nil
}
