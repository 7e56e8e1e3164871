package service

import (
	"context"
	"fmt"

	"github.com/liftlog/liftlog/internal/domain"
	"github.com/liftlog/liftlog/pkg/logger"
)

type ExerciseService struct {
	repo   domain.ExerciseRepository
	logger logger.Logger
}

func NewExerciseService(repo domain.ExerciseRepository, logger logger.Logger) *ExerciseService {
	return &ExerciseService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ExerciseService) GetOrCreateExercise(ctx context.Context, req *domain.GetOrCreateExerciseRequest) (*domain.Exercise, error) {
	name, err := req.Validate()
	if err != nil {
		return nil, err
	}

	exercise, err := s.repo.GetOrCreateExercise(ctx, name)
	if err != nil {
		s.logger.WithField("exercise_name", name).Error(fmt.Sprintf("Failed to get or create exercise: %v", err))
		return nil, fmt.Errorf("failed to get or create exercise: %w", err)
	}

	return exercise, nil
}

func (s *ExerciseService) GetExerciseByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("invalid exercise id")
	}

	exercise, err := s.repo.GetExerciseByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrExerciseNotFound); ok {
			return nil, err
		}
		s.logger.WithField("exercise_id", id).Error(fmt.Sprintf("Failed to get exercise: %v", err))
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}

	return exercise, nil
}

func (s *ExerciseService) GetExercises(ctx context.Context) ([]*domain.Exercise, error) {
	exercises, err := s.repo.GetExercises(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get exercises: %v", err))
		return nil, fmt.Errorf("failed to get exercises: %w", err)
	}

	return exercises, nil
}
