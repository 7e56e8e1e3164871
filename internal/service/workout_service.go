package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/liftlog/liftlog/internal/domain"
	"github.com/liftlog/liftlog/pkg/logger"
)

type WorkoutService struct {
	repo                domain.WorkoutRepository
	workoutExerciseRepo domain.WorkoutExerciseRepository
	exerciseRepo        domain.ExerciseRepository
	logger              logger.Logger
}

func NewWorkoutService(
	repo domain.WorkoutRepository,
	workoutExerciseRepo domain.WorkoutExerciseRepository,
	exerciseRepo domain.ExerciseRepository,
	logger logger.Logger,
) *WorkoutService {
	return &WorkoutService{
		repo:                repo,
		workoutExerciseRepo: workoutExerciseRepo,
		exerciseRepo:        exerciseRepo,
		logger:              logger,
	}
}

func (s *WorkoutService) CreateWorkout(ctx context.Context, req *domain.CreateWorkoutRequest) (*domain.Workout, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		Name:        req.Name,
		StartedAt:   req.StartedAt,
		CompletedAt: req.CompletedAt,
	}

	if err := s.repo.CreateWorkout(ctx, workout); err != nil {
		s.logger.WithField("user_id", req.UserID).Error(fmt.Sprintf("Failed to create workout: %v", err))
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	return workout, nil
}

func (s *WorkoutService) GetWorkoutByID(ctx context.Context, userID, workoutID string) (*domain.Workout, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id is required")
	}

	workout, err := s.repo.GetWorkoutByID(ctx, userID, workoutID)
	if err != nil {
		if _, ok := err.(*domain.ErrWorkoutNotFound); ok {
			return nil, err
		}
		s.logger.WithField("workout_id", workoutID).Error(fmt.Sprintf("Failed to get workout: %v", err))
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	return workout, nil
}

func (s *WorkoutService) GetWorkouts(ctx context.Context, userID string) ([]*domain.Workout, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id is required")
	}

	workouts, err := s.repo.GetWorkouts(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to get workouts: %v", err))
		return nil, fmt.Errorf("failed to get workouts: %w", err)
	}

	return workouts, nil
}

func (s *WorkoutService) GetWorkoutsActiveOnDate(ctx context.Context, req *domain.ActiveWorkoutsRequest) ([]*domain.Workout, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	workouts, err := s.repo.GetWorkoutsActiveOnDate(ctx, req.UserID, req.DayStart, req.DayEnd)
	if err != nil {
		s.logger.WithField("user_id", req.UserID).Error(fmt.Sprintf("Failed to get active workouts: %v", err))
		return nil, fmt.Errorf("failed to get active workouts: %w", err)
	}

	return workouts, nil
}

func (s *WorkoutService) UpdateWorkout(ctx context.Context, req *domain.UpdateWorkoutRequest) (*domain.Workout, error) {
	update, err := req.Validate()
	if err != nil {
		return nil, err
	}

	workout, err := s.repo.UpdateWorkout(ctx, req.UserID, req.WorkoutID, update)
	if err != nil {
		if _, ok := err.(*domain.ErrWorkoutNotFound); ok {
			return nil, err
		}
		s.logger.WithField("workout_id", req.WorkoutID).Error(fmt.Sprintf("Failed to update workout: %v", err))
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}

	return workout, nil
}

func (s *WorkoutService) CompleteWorkout(ctx context.Context, userID, workoutID string, completedAt time.Time) (*domain.Workout, error) {
	if completedAt.IsZero() {
		return nil, domain.NewValidationError("completed_at is required")
	}

	req := &domain.UpdateWorkoutRequest{
		UserID:      userID,
		WorkoutID:   workoutID,
		CompletedAt: &completedAt,
	}
	return s.UpdateWorkout(ctx, req)
}

func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID, workoutID string) error {
	if userID == "" {
		return domain.NewValidationError("user_id is required")
	}

	// The row delete cascades over workout_exercises and their sets.
	if err := s.repo.DeleteWorkout(ctx, userID, workoutID); err != nil {
		if _, ok := err.(*domain.ErrWorkoutNotFound); ok {
			return err
		}
		s.logger.WithField("workout_id", workoutID).Error(fmt.Sprintf("Failed to delete workout: %v", err))
		return fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil
}

// DuplicateWorkout copies a workout and its exercise list in one transaction.
// The copy starts now, is in progress, and keeps the original's exercise
// order. Sets are not copied.
func (s *WorkoutService) DuplicateWorkout(ctx context.Context, userID, workoutID string) (*domain.Workout, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id is required")
	}

	var duplicate *domain.Workout

	err := s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		original, err := s.repo.GetWorkoutByIDTx(ctx, tx, userID, workoutID)
		if err != nil {
			return err
		}

		workoutExercises, err := s.workoutExerciseRepo.GetWorkoutExercisesTx(ctx, tx, workoutID)
		if err != nil {
			return err
		}

		duplicate = &domain.Workout{
			ID:        uuid.New().String(),
			UserID:    original.UserID,
			Name:      original.Name + " (copy)",
			StartedAt: time.Now().UTC(),
		}
		if err := s.repo.CreateWorkoutTx(ctx, tx, duplicate); err != nil {
			return err
		}

		copies := make([]*domain.WorkoutExercise, 0, len(workoutExercises))
		for _, workoutExercise := range workoutExercises {
			copies = append(copies, &domain.WorkoutExercise{
				ID:         uuid.New().String(),
				WorkoutID:  duplicate.ID,
				ExerciseID: workoutExercise.ExerciseID,
				Order:      workoutExercise.Order,
			})
		}
		return s.workoutExerciseRepo.CreateWorkoutExercisesTx(ctx, tx, copies)
	})
	if err != nil {
		if _, ok := err.(*domain.ErrWorkoutNotFound); ok {
			return nil, err
		}
		s.logger.WithField("workout_id", workoutID).Error(fmt.Sprintf("Failed to duplicate workout: %v", err))
		return nil, fmt.Errorf("failed to duplicate workout: %w", err)
	}

	return duplicate, nil
}

func (s *WorkoutService) GetWorkoutTree(ctx context.Context, userID, workoutID string) ([]*domain.WorkoutExerciseWithSets, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id is required")
	}

	// Ownership is settled before any child row is touched. A workout that
	// is missing or foreign stops here; a workout with no exercises yet
	// returns an empty tree, which is a different answer.
	if _, err := s.repo.GetWorkoutByID(ctx, userID, workoutID); err != nil {
		if _, ok := err.(*domain.ErrWorkoutNotFound); ok {
			return nil, err
		}
		s.logger.WithField("workout_id", workoutID).Error(fmt.Sprintf("Failed to get workout: %v", err))
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	tree, err := s.workoutExerciseRepo.GetWorkoutExercisesWithSets(ctx, workoutID)
	if err != nil {
		s.logger.WithField("workout_id", workoutID).Error(fmt.Sprintf("Failed to get workout tree: %v", err))
		return nil, fmt.Errorf("failed to get workout tree: %w", err)
	}

	if tree == nil {
		tree = []*domain.WorkoutExerciseWithSets{}
	}
	return tree, nil
}

func (s *WorkoutService) AddExerciseToWorkout(ctx context.Context, req *domain.AddExerciseToWorkoutRequest) (*domain.WorkoutExercise, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetWorkoutByID(ctx, req.UserID, req.WorkoutID); err != nil {
		if _, ok := err.(*domain.ErrWorkoutNotFound); ok {
			return nil, err
		}
		s.logger.WithField("workout_id", req.WorkoutID).Error(fmt.Sprintf("Failed to get workout: %v", err))
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	if _, err := s.exerciseRepo.GetExerciseByID(ctx, req.ExerciseID); err != nil {
		if _, ok := err.(*domain.ErrExerciseNotFound); ok {
			return nil, err
		}
		s.logger.WithField("exercise_id", req.ExerciseID).Error(fmt.Sprintf("Failed to get exercise: %v", err))
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}

	nextOrder, err := s.workoutExerciseRepo.GetNextOrder(ctx, req.WorkoutID)
	if err != nil {
		s.logger.WithField("workout_id", req.WorkoutID).Error(fmt.Sprintf("Failed to get next order: %v", err))
		return nil, fmt.Errorf("failed to get next order: %w", err)
	}

	workoutExercise := &domain.WorkoutExercise{
		ID:         uuid.New().String(),
		WorkoutID:  req.WorkoutID,
		ExerciseID: req.ExerciseID,
		Order:      nextOrder,
	}

	if err := s.workoutExerciseRepo.CreateWorkoutExercise(ctx, workoutExercise); err != nil {
		s.logger.WithField("workout_id", req.WorkoutID).Error(fmt.Sprintf("Failed to add exercise to workout: %v", err))
		return nil, fmt.Errorf("failed to add exercise to workout: %w", err)
	}

	return workoutExercise, nil
}

func (s *WorkoutService) RemoveExerciseFromWorkout(ctx context.Context, userID, workoutExerciseID string) error {
	if userID == "" {
		return domain.NewValidationError("user_id is required")
	}

	workout, err := s.workoutExerciseRepo.GetOwningWorkout(ctx, workoutExerciseID)
	if err != nil {
		if _, ok := err.(*domain.ErrWorkoutExerciseNotFound); ok {
			return err
		}
		s.logger.WithField("workout_exercise_id", workoutExerciseID).Error(fmt.Sprintf("Failed to resolve owning workout: %v", err))
		return fmt.Errorf("failed to resolve owning workout: %w", err)
	}

	// A foreign owner gets the same answer as a missing row.
	if workout.UserID != userID {
		return &domain.ErrWorkoutExerciseNotFound{Message: "workout exercise not found"}
	}

	if err := s.workoutExerciseRepo.DeleteWorkoutExercise(ctx, workoutExerciseID); err != nil {
		if _, ok := err.(*domain.ErrWorkoutExerciseNotFound); ok {
			return err
		}
		s.logger.WithField("workout_exercise_id", workoutExerciseID).Error(fmt.Sprintf("Failed to remove exercise from workout: %v", err))
		return fmt.Errorf("failed to remove exercise from workout: %w", err)
	}

	return nil
}
