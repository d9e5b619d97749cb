package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

const goalColumns = `
	id, user_id, program_id, start_date, end_date, status,
	target_total_workouts, target_workouts_per_week, target_total_calories, target_total_duration,
	completed_workouts, total_calories_burned, total_duration, completion_percentage,
	created_at, updated_at`

const goalWorkoutColumns = `
	id, workout_id, scheduled_date, completed, completed_at,
	actual_duration, calories_burned, notes, enjoyment, difficulty_rating`

type GoalRepository struct {
	db DBTX
}

func NewGoalRepository(db DBTX) *GoalRepository {
	return &GoalRepository{db: db}
}

type CreateGoalInput struct {
	UserID    int64
	ProgramID *int64
	StartDate time.Time
	EndDate   time.Time
	Status    models.GoalStatus
	Targets   models.GoalTargets
	Workouts  []models.GoalWorkout
}

// Create inserts the goal row plus its fixed workout schedule. Run it on a
// tx so a partial schedule is never visible.
func (r *GoalRepository) Create(ctx context.Context, input CreateGoalInput) (*models.Goal, error) {
	query := `
		INSERT INTO goals (user_id, program_id, start_date, end_date, status,
			target_total_workouts, target_workouts_per_week, target_total_calories, target_total_duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + goalColumns

	goal, err := r.scanGoal(r.db.QueryRow(ctx, query,
		input.UserID,
		input.ProgramID,
		input.StartDate,
		input.EndDate,
		input.Status,
		input.Targets.TotalWorkouts,
		input.Targets.WorkoutsPerWeek,
		input.Targets.TotalCalories,
		input.Targets.TotalDuration,
	))
	if err != nil {
		return nil, err
	}

	goal.Workouts = make([]models.GoalWorkout, 0, len(input.Workouts))
	for _, workout := range input.Workouts {
		inserted := workout
		err := r.db.QueryRow(ctx, `
			INSERT INTO goal_workouts (goal_id, workout_id, scheduled_date)
			VALUES ($1, $2, $3)
			RETURNING id
		`, goal.ID, workout.WorkoutID, workout.ScheduledDate).Scan(&inserted.ID)
		if err != nil {
			return nil, err
		}
		goal.Workouts = append(goal.Workouts, inserted)
	}
	goal.Achievements = make([]models.Achievement, 0)
	return goal, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, goalID int64) (*models.Goal, error) {
	return r.getByID(ctx, goalID, false)
}

// GetByIDForUpdate locks the goal row for the duration of the surrounding
// tx, serializing concurrent completions on the same goal.
func (r *GoalRepository) GetByIDForUpdate(ctx context.Context, goalID int64) (*models.Goal, error) {
	return r.getByID(ctx, goalID, true)
}

func (r *GoalRepository) getByID(ctx context.Context, goalID int64, forUpdate bool) (*models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	goal, err := r.scanGoal(r.db.QueryRow(ctx, query, goalID))
	if err != nil {
		return nil, err
	}
	if goal.Workouts, err = r.listWorkouts(ctx, goalID); err != nil {
		return nil, err
	}
	if goal.Achievements, err = r.listAchievements(ctx, goalID); err != nil {
		return nil, err
	}
	return goal, nil
}

// ListByUserID returns full goal aggregates; the child collections are
// fetched with one batched query each rather than per goal.
func (r *GoalRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1
		ORDER BY start_date DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]models.Goal, 0)
	goalIDs := make([]int64, 0)
	for rows.Next() {
		goal, err := r.scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
		goalIDs = append(goalIDs, goal.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return goals, nil
	}

	workoutsByGoal, err := r.listWorkoutsForGoals(ctx, goalIDs)
	if err != nil {
		return nil, err
	}
	achievementsByGoal, err := r.listAchievementsForGoals(ctx, goalIDs)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		goals[i].Workouts = workoutsByGoal[goals[i].ID]
		if goals[i].Workouts == nil {
			goals[i].Workouts = make([]models.GoalWorkout, 0)
		}
		goals[i].Achievements = achievementsByGoal[goals[i].ID]
		if goals[i].Achievements == nil {
			goals[i].Achievements = make([]models.Achievement, 0)
		}
	}
	return goals, nil
}

func (r *GoalRepository) listWorkoutsForGoals(ctx context.Context, goalIDs []int64) (map[int64][]models.GoalWorkout, error) {
	query := `
		SELECT goal_id, ` + goalWorkoutColumns + `
		FROM goal_workouts
		WHERE goal_id = ANY($1)
		ORDER BY scheduled_date ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, goalIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byGoal := make(map[int64][]models.GoalWorkout)
	for rows.Next() {
		var goalID int64
		var workout models.GoalWorkout
		if err := rows.Scan(
			&goalID,
			&workout.ID,
			&workout.WorkoutID,
			&workout.ScheduledDate,
			&workout.Completed,
			&workout.CompletedAt,
			&workout.ActualDuration,
			&workout.CaloriesBurned,
			&workout.Notes,
			&workout.Enjoyment,
			&workout.DifficultyRating,
		); err != nil {
			return nil, err
		}
		byGoal[goalID] = append(byGoal[goalID], workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return byGoal, nil
}

func (r *GoalRepository) listAchievementsForGoals(ctx context.Context, goalIDs []int64) (map[int64][]models.Achievement, error) {
	query := `
		SELECT goal_id, id, type, description, value, earned_at
		FROM achievements
		WHERE goal_id = ANY($1)
		ORDER BY earned_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, goalIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byGoal := make(map[int64][]models.Achievement)
	for rows.Next() {
		var goalID int64
		var achievement models.Achievement
		if err := rows.Scan(
			&goalID,
			&achievement.ID,
			&achievement.Type,
			&achievement.Description,
			&achievement.Value,
			&achievement.EarnedAt,
		); err != nil {
			return nil, err
		}
		byGoal[goalID] = append(byGoal[goalID], achievement)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return byGoal, nil
}

// UpdateWorkout persists the mutable completion fields of one scheduled
// workout.
func (r *GoalRepository) UpdateWorkout(ctx context.Context, goalID int64, workout models.GoalWorkout) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE goal_workouts
		SET completed = $1,
			completed_at = $2,
			actual_duration = $3,
			calories_burned = $4,
			notes = $5,
			enjoyment = $6,
			difficulty_rating = $7
		WHERE id = $8 AND goal_id = $9
	`,
		workout.Completed,
		workout.CompletedAt,
		workout.ActualDuration,
		workout.CaloriesBurned,
		workout.Notes,
		workout.Enjoyment,
		workout.DifficultyRating,
		workout.ID,
		goalID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateProgressAndStatus writes the recomputed aggregate and current status
// back to the goal row.
func (r *GoalRepository) UpdateProgressAndStatus(ctx context.Context, goal *models.Goal) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE goals
		SET status = $1,
			completed_workouts = $2,
			total_calories_burned = $3,
			total_duration = $4,
			completion_percentage = $5,
			updated_at = NOW()
		WHERE id = $6
	`,
		goal.Status,
		goal.Progress.CompletedWorkouts,
		goal.Progress.TotalCaloriesBurned,
		goal.Progress.TotalDuration,
		goal.Progress.CompletionPercentage,
		goal.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// InsertAchievements appends earned achievements; achievement rows are never
// updated or deleted.
func (r *GoalRepository) InsertAchievements(ctx context.Context, goalID int64, achievements []models.Achievement) error {
	for _, achievement := range achievements {
		_, err := r.db.Exec(ctx, `
			INSERT INTO achievements (id, goal_id, type, description, value, earned_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			achievement.ID,
			goalID,
			achievement.Type,
			achievement.Description,
			achievement.Value,
			achievement.EarnedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, goalID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1`, goalID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *GoalRepository) listWorkouts(ctx context.Context, goalID int64) ([]models.GoalWorkout, error) {
	query := `
		SELECT ` + goalWorkoutColumns + `
		FROM goal_workouts
		WHERE goal_id = $1
		ORDER BY scheduled_date ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]models.GoalWorkout, 0)
	for rows.Next() {
		var workout models.GoalWorkout
		if err := rows.Scan(
			&workout.ID,
			&workout.WorkoutID,
			&workout.ScheduledDate,
			&workout.Completed,
			&workout.CompletedAt,
			&workout.ActualDuration,
			&workout.CaloriesBurned,
			&workout.Notes,
			&workout.Enjoyment,
			&workout.DifficultyRating,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *GoalRepository) listAchievements(ctx context.Context, goalID int64) ([]models.Achievement, error) {
	query := `
		SELECT id, type, description, value, earned_at
		FROM achievements
		WHERE goal_id = $1
		ORDER BY earned_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := make([]models.Achievement, 0)
	for rows.Next() {
		var achievement models.Achievement
		if err := rows.Scan(
			&achievement.ID,
			&achievement.Type,
			&achievement.Description,
			&achievement.Value,
			&achievement.EarnedAt,
		); err != nil {
			return nil, err
		}
		achievements = append(achievements, achievement)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *GoalRepository) scanGoal(row pgx.Row) (*models.Goal, error) {
	var goal models.Goal
	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.ProgramID,
		&goal.StartDate,
		&goal.EndDate,
		&goal.Status,
		&goal.Targets.TotalWorkouts,
		&goal.Targets.WorkoutsPerWeek,
		&goal.Targets.TotalCalories,
		&goal.Targets.TotalDuration,
		&goal.Progress.CompletedWorkouts,
		&goal.Progress.TotalCaloriesBurned,
		&goal.Progress.TotalDuration,
		&goal.Progress.CompletionPercentage,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
