package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/liftlog/liftlog/internal/domain"
	"github.com/liftlog/liftlog/pkg/logger"
)

type SetService struct {
	repo                domain.SetRepository
	workoutExerciseRepo domain.WorkoutExerciseRepository
	workoutRepo         domain.WorkoutRepository
	logger              logger.Logger
}

func NewSetService(
	repo domain.SetRepository,
	workoutExerciseRepo domain.WorkoutExerciseRepository,
	workoutRepo domain.WorkoutRepository,
	logger logger.Logger,
) *SetService {
	return &SetService{
		repo:                repo,
		workoutExerciseRepo: workoutExerciseRepo,
		workoutRepo:         workoutRepo,
		logger:              logger,
	}
}

func (s *SetService) CreateSet(ctx context.Context, req *domain.CreateSetRequest) (*domain.Set, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The parent workout exercise has no user_id; its owner is the workout
	// at the top of the chain.
	workout, err := s.workoutExerciseRepo.GetOwningWorkout(ctx, req.WorkoutExerciseID)
	if err != nil {
		if _, ok := err.(*domain.ErrWorkoutExerciseNotFound); ok {
			return nil, err
		}
		s.logger.WithField("workout_exercise_id", req.WorkoutExerciseID).Error(fmt.Sprintf("Failed to resolve owning workout: %v", err))
		return nil, fmt.Errorf("failed to resolve owning workout: %w", err)
	}
	if workout.UserID != req.UserID {
		return nil, &domain.ErrWorkoutExerciseNotFound{Message: "workout exercise not found"}
	}

	set := &domain.Set{
		ID:                uuid.New().String(),
		WorkoutExerciseID: req.WorkoutExerciseID,
		SetNumber:         req.SetNumber,
		WeightKg:          req.WeightKg,
		Reps:              req.Reps,
	}

	if err := s.repo.CreateSet(ctx, set); err != nil {
		s.logger.WithField("workout_exercise_id", req.WorkoutExerciseID).Error(fmt.Sprintf("Failed to create set: %v", err))
		return nil, fmt.Errorf("failed to create set: %w", err)
	}

	return set, nil
}

// CreateSets logs several sets against one workout atomically. Ownership is
// checked once at the workout, then every referenced workout exercise must
// belong to that workout.
func (s *SetService) CreateSets(ctx context.Context, req *domain.CreateSetsRequest) ([]*domain.Set, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.workoutRepo.GetWorkoutByID(ctx, req.UserID, req.WorkoutID); err != nil {
		if _, ok := err.(*domain.ErrWorkoutNotFound); ok {
			return nil, err
		}
		s.logger.WithField("workout_id", req.WorkoutID).Error(fmt.Sprintf("Failed to get workout: %v", err))
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	workoutExercises, err := s.workoutExerciseRepo.GetWorkoutExercises(ctx, req.WorkoutID)
	if err != nil {
		s.logger.WithField("workout_id", req.WorkoutID).Error(fmt.Sprintf("Failed to get workout exercises: %v", err))
		return nil, fmt.Errorf("failed to get workout exercises: %w", err)
	}

	owned := make(map[string]bool, len(workoutExercises))
	for _, workoutExercise := range workoutExercises {
		owned[workoutExercise.ID] = true
	}

	sets := make([]*domain.Set, 0, len(req.Sets))
	for i, input := range req.Sets {
		if !owned[input.WorkoutExerciseID] {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid create sets request: sets[%d]: workout_exercise_id does not belong to the workout", i))
		}
		sets = append(sets, &domain.Set{
			ID:                uuid.New().String(),
			WorkoutExerciseID: input.WorkoutExerciseID,
			SetNumber:         input.SetNumber,
			WeightKg:          input.WeightKg,
			Reps:              input.Reps,
		})
	}

	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		return s.repo.CreateSetsTx(ctx, tx, sets)
	})
	if err != nil {
		s.logger.WithField("workout_id", req.WorkoutID).Error(fmt.Sprintf("Failed to create sets: %v", err))
		return nil, fmt.Errorf("failed to create sets: %w", err)
	}

	return sets, nil
}

func (s *SetService) UpdateSet(ctx context.Context, req *domain.UpdateSetRequest) (*domain.Set, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	workout, err := s.repo.GetOwningWorkout(ctx, req.SetID)
	if err != nil {
		if _, ok := err.(*domain.ErrSetNotFound); ok {
			return nil, err
		}
		s.logger.WithField("set_id", req.SetID).Error(fmt.Sprintf("Failed to resolve owning workout: %v", err))
		return nil, fmt.Errorf("failed to resolve owning workout: %w", err)
	}
	if workout.UserID != req.UserID {
		return nil, &domain.ErrSetNotFound{Message: "set not found"}
	}

	set, err := s.repo.UpdateSet(ctx, req.SetID, req.WeightKg, req.Reps)
	if err != nil {
		if _, ok := err.(*domain.ErrSetNotFound); ok {
			return nil, err
		}
		s.logger.WithField("set_id", req.SetID).Error(fmt.Sprintf("Failed to update set: %v", err))
		return nil, fmt.Errorf("failed to update set: %w", err)
	}

	return set, nil
}

func (s *SetService) DeleteSet(ctx context.Context, userID, setID string) error {
	if userID == "" {
		return domain.NewValidationError("user_id is required")
	}

	workout, err := s.repo.GetOwningWorkout(ctx, setID)
	if err != nil {
		if _, ok := err.(*domain.ErrSetNotFound); ok {
			return err
		}
		s.logger.WithField("set_id", setID).Error(fmt.Sprintf("Failed to resolve owning workout: %v", err))
		return fmt.Errorf("failed to resolve owning workout: %w", err)
	}
	if workout.UserID != userID {
		return &domain.ErrSetNotFound{Message: "set not found"}
	}

	if err := s.repo.DeleteSet(ctx, setID); err != nil {
		if _, ok := err.(*domain.ErrSetNotFound); ok {
			return err
		}
		s.logger.WithField("set_id", setID).Error(fmt.Sprintf("Failed to delete set: %v", err))
		return fmt.Errorf("failed to delete set: %w", err)
	}

	return nil
}
