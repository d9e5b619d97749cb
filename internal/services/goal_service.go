package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/metrics"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/repository"
)

type programReader interface {
	GetByID(ctx context.Context, programID int64) (*models.Program, error)
}

type GoalService struct {
	db          *pgxpool.Pool
	goalRepo    *repository.GoalRepository
	profileRepo profileReader
	programRepo programReader
	logger      *zap.Logger
}

func NewGoalService(
	db *pgxpool.Pool,
	goalRepo *repository.GoalRepository,
	profileRepo profileReader,
	programRepo programReader,
	logger *zap.Logger,
) *GoalService {
	return &GoalService{
		db:          db,
		goalRepo:    goalRepo,
		profileRepo: profileRepo,
		programRepo: programRepo,
		logger:      logger,
	}
}

type GoalWorkoutScheduleInput struct {
	WorkoutID     *int64
	ScheduledDate time.Time
}

type CreateGoalInput struct {
	StartDate time.Time
	EndDate   time.Time
	Targets   models.GoalTargets
	ProgramID *int64
	Workouts  []GoalWorkoutScheduleInput
}

// CreateGoal builds the fixed workout schedule (from a program's cadence or
// the explicit list), runs the advisory realism check against the owner's
// profile, and persists the goal. Realism warnings are returned alongside
// the goal and never block creation.
func (s *GoalService) CreateGoal(ctx context.Context, userID int64, input CreateGoalInput) (*models.Goal, GoalRealismResult, error) {
	noResult := GoalRealismResult{}
	if !input.EndDate.After(input.StartDate) {
		return nil, noResult, ErrInvalidInput
	}
	if input.ProgramID != nil && len(input.Workouts) > 0 {
		return nil, noResult, ErrInvalidInput
	}

	var workouts []models.GoalWorkout
	if input.ProgramID != nil {
		program, err := s.programRepo.GetByID(ctx, *input.ProgramID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, noResult, ErrProgramNotFound
			}
			return nil, noResult, err
		}
		workouts = scheduleFromProgram(program, input.StartDate, input.EndDate)
	} else {
		workouts = make([]models.GoalWorkout, 0, len(input.Workouts))
		for _, workout := range input.Workouts {
			workouts = append(workouts, models.GoalWorkout{
				WorkoutID:     workout.WorkoutID,
				ScheduledDate: workout.ScheduledDate,
			})
		}
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, noResult, err
		}
		profile = nil
	}
	realism := CheckGoalRealism(profile, GoalRealismInput{
		ProposedWorkoutCount: len(workouts),
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
	})

	targets := input.Targets
	if targets.TotalWorkouts == 0 {
		targets.TotalWorkouts = len(workouts)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, noResult, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	goal, err := repository.NewGoalRepository(tx).Create(ctx, repository.CreateGoalInput{
		UserID:    userID,
		ProgramID: input.ProgramID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    models.GoalStatusActive,
		Targets:   targets,
		Workouts:  workouts,
	})
	if err != nil {
		return nil, noResult, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, noResult, err
	}

	metrics.GoalsCreated.Inc()
	return goal, realism, nil
}

// CompleteWorkout runs the whole fetch-apply-persist cycle inside one tx,
// with the goal row locked so two completions on the same goal serialize.
// Completions on different goals remain last-write-wins at the store; there
// is no optimistic concurrency here.
func (s *GoalService) CompleteWorkout(ctx context.Context, userID, goalID int64, input CompleteWorkoutInput) (*models.Goal, []models.Achievement, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	txGoalRepo := repository.NewGoalRepository(tx)

	goal, err := txGoalRepo.GetByIDForUpdate(ctx, goalID)
	if err != nil {
		return nil, nil, err
	}
	if goal.UserID != userID {
		return nil, nil, ErrForbidden
	}

	earned, err := ApplyCompletion(goal, input, time.Now().UTC())
	if err != nil {
		return nil, nil, err
	}

	var completed *models.GoalWorkout
	for i := range goal.Workouts {
		if goal.Workouts[i].ID == input.GoalWorkoutID {
			completed = &goal.Workouts[i]
			break
		}
	}
	if err := txGoalRepo.UpdateWorkout(ctx, goal.ID, *completed); err != nil {
		return nil, nil, err
	}
	if err := txGoalRepo.UpdateProgressAndStatus(ctx, goal); err != nil {
		return nil, nil, err
	}
	if err := txGoalRepo.InsertAchievements(ctx, goal.ID, earned); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	metrics.WorkoutsCompleted.Inc()
	metrics.AchievementsEarned.Add(float64(len(earned)))
	if goal.Status == models.GoalStatusCompleted {
		s.logger.Info("goal completed",
			zap.Int64("goal_id", goal.ID),
			zap.Int64("user_id", userID),
		)
	}
	return goal, earned, nil
}

// ChangeStatus applies an owner status edit through the authoritative
// transition function and persists the result.
func (s *GoalService) ChangeStatus(ctx context.Context, userID, goalID int64, requested models.GoalStatus) (*models.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrForbidden
	}
	if err := ChangeGoalStatus(goal, requested, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.goalRepo.UpdateProgressAndStatus(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) GetGoal(ctx context.Context, userID, goalID int64) (*models.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrForbidden
	}
	return goal, nil
}

func (s *GoalService) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	return s.goalRepo.ListByUserID(ctx, userID)
}

func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID int64) error {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return err
	}
	if goal.UserID != userID {
		return ErrForbidden
	}
	return s.goalRepo.Delete(ctx, goalID)
}

// scheduleFromProgram spreads the program's weekly cadence evenly across the
// goal window, cycling through the program's workout list.
func scheduleFromProgram(program *models.Program, start, end time.Time) []models.GoalWorkout {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days <= 0 || program.WorkoutsPerWeek <= 0 {
		return []models.GoalWorkout{}
	}
	weeks := (days + 6) / 7

	gapDays := 7.0 / float64(program.WorkoutsPerWeek)
	workouts := make([]models.GoalWorkout, 0, weeks*program.WorkoutsPerWeek)
	for week := 0; week < weeks; week++ {
		for slot := 0; slot < program.WorkoutsPerWeek; slot++ {
			offset := float64(week*7) + float64(slot)*gapDays
			scheduled := start.Add(time.Duration(offset*24) * time.Hour)
			if scheduled.After(end) {
				continue
			}
			workout := models.GoalWorkout{ScheduledDate: scheduled}
			if len(program.WorkoutIDs) > 0 {
				id := program.WorkoutIDs[(week*program.WorkoutsPerWeek+slot)%len(program.WorkoutIDs)]
				workout.WorkoutID = &id
			}
			workouts = append(workouts, workout)
		}
	}
	return workouts
}
