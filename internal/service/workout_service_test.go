package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftlog/liftlog/internal/domain"
	"github.com/liftlog/liftlog/internal/domain/mocks"
	"github.com/liftlog/liftlog/pkg/logger"
)

const (
	testUserID            = "user_2NNEqL2nrIRdJ194ndJqAHwEfxC"
	testOtherUserID       = "user_9ZZEqL2nrIRdJ194ndJqAHwEfxC"
	testWorkoutID         = "a81bc81b-dead-4e5d-abff-90865d1e13b1"
	testWorkoutExerciseID = "0b9fb5f6-1b93-41ad-b0f2-752cf3e97481"
	testSetID             = "5f6f4ca2-8ed9-4b63-ae28-b33c31df4ba0"
)

type workoutServiceMocks struct {
	repo                *mocks.MockWorkoutRepository
	workoutExerciseRepo *mocks.MockWorkoutExerciseRepository
	exerciseRepo        *mocks.MockExerciseRepository
}

func newWorkoutService(t *testing.T, ctrl *gomock.Controller) (*WorkoutService, workoutServiceMocks) {
	m := workoutServiceMocks{
		repo:                mocks.NewMockWorkoutRepository(ctrl),
		workoutExerciseRepo: mocks.NewMockWorkoutExerciseRepository(ctrl),
		exerciseRepo:        mocks.NewMockExerciseRepository(ctrl),
	}
	svc := NewWorkoutService(m.repo, m.workoutExerciseRepo, m.exerciseRepo, logger.NewTestLogger(t))
	return svc, m
}

func TestWorkoutService_CreateWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()
	startedAt := time.Now().UTC().Add(-time.Hour)

	t.Run("creates with a generated id", func(t *testing.T) {
		m.repo.EXPECT().
			CreateWorkout(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, workout *domain.Workout) error {
				assert.NotEmpty(t, workout.ID)
				assert.Equal(t, testUserID, workout.UserID)
				assert.Equal(t, "Push Day", workout.Name)
				assert.Nil(t, workout.CompletedAt)
				return nil
			})

		workout, err := svc.CreateWorkout(ctx, &domain.CreateWorkoutRequest{
			UserID:    testUserID,
			Name:      "Push Day",
			StartedAt: startedAt,
		})
		require.NoError(t, err)
		assert.Equal(t, testUserID, workout.UserID)
	})

	t.Run("rejects an invalid request without touching the repository", func(t *testing.T) {
		workout, err := svc.CreateWorkout(ctx, &domain.CreateWorkoutRequest{
			UserID:    testUserID,
			StartedAt: startedAt,
		})
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
		assert.Nil(t, workout)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		m.repo.EXPECT().
			CreateWorkout(ctx, gomock.Any()).
			Return(errors.New("database error"))

		workout, err := svc.CreateWorkout(ctx, &domain.CreateWorkoutRequest{
			UserID:    testUserID,
			Name:      "Push Day",
			StartedAt: startedAt,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create workout")
		assert.Nil(t, workout)
	})
}

func TestWorkoutService_GetWorkoutByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()

	t.Run("returns the owner's workout", func(t *testing.T) {
		expected := &domain.Workout{ID: testWorkoutID, UserID: testUserID, Name: "Push Day"}

		m.repo.EXPECT().
			GetWorkoutByID(ctx, testUserID, testWorkoutID).
			Return(expected, nil)

		workout, err := svc.GetWorkoutByID(ctx, testUserID, testWorkoutID)
		require.NoError(t, err)
		assert.Equal(t, expected, workout)
	})

	t.Run("another user's workout is not found", func(t *testing.T) {
		notFound := &domain.ErrWorkoutNotFound{Message: "workout not found"}

		m.repo.EXPECT().
			GetWorkoutByID(ctx, testOtherUserID, testWorkoutID).
			Return(nil, notFound)

		workout, err := svc.GetWorkoutByID(ctx, testOtherUserID, testWorkoutID)
		require.Error(t, err)
		assert.Equal(t, notFound, err)
		assert.Nil(t, workout)
	})

	t.Run("requires a user id", func(t *testing.T) {
		workout, err := svc.GetWorkoutByID(ctx, "", testWorkoutID)
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
		assert.Nil(t, workout)
	})
}

func TestWorkoutService_GetWorkouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()

	expected := []*domain.Workout{
		{ID: testWorkoutID, UserID: testUserID, Name: "Push Day"},
	}

	m.repo.EXPECT().
		GetWorkouts(ctx, testUserID).
		Return(expected, nil)

	workouts, err := svc.GetWorkouts(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, expected, workouts)
}

func TestWorkoutService_GetWorkoutsActiveOnDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()

	dayStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)

	t.Run("returns overlapping workouts", func(t *testing.T) {
		expected := []*domain.Workout{{ID: testWorkoutID, UserID: testUserID}}

		m.repo.EXPECT().
			GetWorkoutsActiveOnDate(ctx, testUserID, dayStart, dayEnd).
			Return(expected, nil)

		workouts, err := svc.GetWorkoutsActiveOnDate(ctx, &domain.ActiveWorkoutsRequest{
			UserID:   testUserID,
			DayStart: dayStart,
			DayEnd:   dayEnd,
		})
		require.NoError(t, err)
		assert.Equal(t, expected, workouts)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		workouts, err := svc.GetWorkoutsActiveOnDate(ctx, &domain.ActiveWorkoutsRequest{
			UserID:   testUserID,
			DayStart: dayEnd,
			DayEnd:   dayStart,
		})
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
		assert.Nil(t, workouts)
	})
}

func TestWorkoutService_UpdateWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()

	t.Run("renames", func(t *testing.T) {
		newName := "Pull Day"
		expected := &domain.Workout{ID: testWorkoutID, UserID: testUserID, Name: newName}

		m.repo.EXPECT().
			UpdateWorkout(ctx, testUserID, testWorkoutID, domain.WorkoutUpdate{Name: &newName}).
			Return(expected, nil)

		workout, err := svc.UpdateWorkout(ctx, &domain.UpdateWorkoutRequest{
			UserID:    testUserID,
			WorkoutID: testWorkoutID,
			Name:      &newName,
		})
		require.NoError(t, err)
		assert.Equal(t, expected, workout)
	})

	t.Run("another user's workout is not found", func(t *testing.T) {
		newName := "Pull Day"
		notFound := &domain.ErrWorkoutNotFound{Message: "workout not found"}

		m.repo.EXPECT().
			UpdateWorkout(ctx, testOtherUserID, testWorkoutID, gomock.Any()).
			Return(nil, notFound)

		workout, err := svc.UpdateWorkout(ctx, &domain.UpdateWorkoutRequest{
			UserID:    testOtherUserID,
			WorkoutID: testWorkoutID,
			Name:      &newName,
		})
		require.Error(t, err)
		assert.Equal(t, notFound, err)
		assert.Nil(t, workout)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		workout, err := svc.UpdateWorkout(ctx, &domain.UpdateWorkoutRequest{
			UserID:    testUserID,
			WorkoutID: testWorkoutID,
		})
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
		assert.Nil(t, workout)
	})
}

func TestWorkoutService_CompleteWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()

	t.Run("stamps completed_at", func(t *testing.T) {
		completedAt := time.Now().UTC()
		expected := &domain.Workout{ID: testWorkoutID, UserID: testUserID, CompletedAt: &completedAt}

		m.repo.EXPECT().
			UpdateWorkout(ctx, testUserID, testWorkoutID, domain.WorkoutUpdate{CompletedAt: &completedAt}).
			Return(expected, nil)

		workout, err := svc.CompleteWorkout(ctx, testUserID, testWorkoutID, completedAt)
		require.NoError(t, err)
		require.NotNil(t, workout.CompletedAt)
		assert.Equal(t, completedAt, *workout.CompletedAt)
	})

	t.Run("requires a timestamp", func(t *testing.T) {
		workout, err := svc.CompleteWorkout(ctx, testUserID, testWorkoutID, time.Time{})
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
		assert.Nil(t, workout)
	})
}

func TestWorkoutService_DeleteWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		m.repo.EXPECT().
			DeleteWorkout(ctx, testUserID, testWorkoutID).
			Return(nil)

		require.NoError(t, svc.DeleteWorkout(ctx, testUserID, testWorkoutID))
	})

	t.Run("another user's workout is not found", func(t *testing.T) {
		notFound := &domain.ErrWorkoutNotFound{Message: "workout not found"}

		m.repo.EXPECT().
			DeleteWorkout(ctx, testOtherUserID, testWorkoutID).
			Return(notFound)

		err := svc.DeleteWorkout(ctx, testOtherUserID, testWorkoutID)
		require.Error(t, err)
		assert.Equal(t, notFound, err)
	})
}

func TestWorkoutService_DuplicateWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()

	completedAt := time.Now().UTC().Add(-time.Hour)
	original := &domain.Workout{
		ID:          testWorkoutID,
		UserID:      testUserID,
		Name:        "Push Day",
		StartedAt:   completedAt.Add(-time.Hour),
		CompletedAt: &completedAt,
	}
	originalExercises := []*domain.WorkoutExercise{
		{ID: testWorkoutExerciseID, WorkoutID: testWorkoutID, ExerciseID: 3, Order: 0},
		{ID: "7cc7a620-4a9c-4d46-9c2e-57c5e94e0c2a", WorkoutID: testWorkoutID, ExerciseID: 7, Order: 2},
	}

	t.Run("copies the workout and its exercise list", func(t *testing.T) {
		m.repo.EXPECT().
			WithTransaction(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
				return fn(nil)
			})
		m.repo.EXPECT().
			GetWorkoutByIDTx(ctx, gomock.Nil(), testUserID, testWorkoutID).
			Return(original, nil)
		m.workoutExerciseRepo.EXPECT().
			GetWorkoutExercisesTx(ctx, gomock.Nil(), testWorkoutID).
			Return(originalExercises, nil)

		var createdWorkout *domain.Workout
		m.repo.EXPECT().
			CreateWorkoutTx(ctx, gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, workout *domain.Workout) error {
				createdWorkout = workout
				return nil
			})
		m.workoutExerciseRepo.EXPECT().
			CreateWorkoutExercisesTx(ctx, gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, copies []*domain.WorkoutExercise) error {
				require.Len(t, copies, 2)
				for i, c := range copies {
					assert.Equal(t, createdWorkout.ID, c.WorkoutID)
					assert.Equal(t, originalExercises[i].ExerciseID, c.ExerciseID)
					assert.Equal(t, originalExercises[i].Order, c.Order)
					assert.NotEqual(t, originalExercises[i].ID, c.ID)
				}
				return nil
			})

		duplicate, err := svc.DuplicateWorkout(ctx, testUserID, testWorkoutID)
		require.NoError(t, err)
		assert.NotEqual(t, original.ID, duplicate.ID)
		assert.Equal(t, testUserID, duplicate.UserID)
		assert.Equal(t, "Push Day (copy)", duplicate.Name)
		// The copy starts fresh and is in progress even if the original finished.
		assert.Nil(t, duplicate.CompletedAt)
		assert.True(t, duplicate.StartedAt.After(original.StartedAt))
	})

	t.Run("another user's workout is not found and nothing is written", func(t *testing.T) {
		notFound := &domain.ErrWorkoutNotFound{Message: "workout not found"}

		m.repo.EXPECT().
			WithTransaction(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
				return fn(nil)
			})
		m.repo.EXPECT().
			GetWorkoutByIDTx(ctx, gomock.Nil(), testOtherUserID, testWorkoutID).
			Return(nil, notFound)

		duplicate, err := svc.DuplicateWorkout(ctx, testOtherUserID, testWorkoutID)
		require.Error(t, err)
		assert.Equal(t, notFound, err)
		assert.Nil(t, duplicate)
	})

	t.Run("a failed exercise copy aborts the transaction", func(t *testing.T) {
		m.repo.EXPECT().
			WithTransaction(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
				if err := fn(nil); err != nil {
					// The real implementation rolls back here.
					return err
				}
				return nil
			})
		m.repo.EXPECT().
			GetWorkoutByIDTx(ctx, gomock.Nil(), testUserID, testWorkoutID).
			Return(original, nil)
		m.workoutExerciseRepo.EXPECT().
			GetWorkoutExercisesTx(ctx, gomock.Nil(), testWorkoutID).
			Return(originalExercises, nil)
		m.repo.EXPECT().
			CreateWorkoutTx(ctx, gomock.Nil(), gomock.Any()).
			Return(nil)
		m.workoutExerciseRepo.EXPECT().
			CreateWorkoutExercisesTx(ctx, gomock.Nil(), gomock.Any()).
			Return(errors.New("database error"))

		duplicate, err := svc.DuplicateWorkout(ctx, testUserID, testWorkoutID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to duplicate workout")
		assert.Nil(t, duplicate)
	})
}

func TestWorkoutService_GetWorkoutTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()

	owned := &domain.Workout{ID: testWorkoutID, UserID: testUserID}

	t.Run("returns the tree", func(t *testing.T) {
		expected := []*domain.WorkoutExerciseWithSets{
			{
				WorkoutExercise: &domain.WorkoutExercise{ID: testWorkoutExerciseID, WorkoutID: testWorkoutID, ExerciseID: 3},
				Exercise:        &domain.Exercise{ID: 3, Name: "Bench Press"},
				Sets:            []*domain.Set{{ID: testSetID, WorkoutExerciseID: testWorkoutExerciseID, SetNumber: 1, WeightKg: 80, Reps: 10}},
			},
		}

		m.repo.EXPECT().
			GetWorkoutByID(ctx, testUserID, testWorkoutID).
			Return(owned, nil)
		m.workoutExerciseRepo.EXPECT().
			GetWorkoutExercisesWithSets(ctx, testWorkoutID).
			Return(expected, nil)

		tree, err := svc.GetWorkoutTree(ctx, testUserID, testWorkoutID)
		require.NoError(t, err)
		assert.Equal(t, expected, tree)
	})

	t.Run("an empty workout yields an empty tree, not an error", func(t *testing.T) {
		m.repo.EXPECT().
			GetWorkoutByID(ctx, testUserID, testWorkoutID).
			Return(owned, nil)
		m.workoutExerciseRepo.EXPECT().
			GetWorkoutExercisesWithSets(ctx, testWorkoutID).
			Return(nil, nil)

		tree, err := svc.GetWorkoutTree(ctx, testUserID, testWorkoutID)
		require.NoError(t, err)
		assert.NotNil(t, tree)
		assert.Len(t, tree, 0)
	})

	t.Run("another user's workout is not found before any child row is read", func(t *testing.T) {
		notFound := &domain.ErrWorkoutNotFound{Message: "workout not found"}

		m.repo.EXPECT().
			GetWorkoutByID(ctx, testOtherUserID, testWorkoutID).
			Return(nil, notFound)

		tree, err := svc.GetWorkoutTree(ctx, testOtherUserID, testWorkoutID)
		require.Error(t, err)
		assert.Equal(t, notFound, err)
		assert.Nil(t, tree)
	})
}

func TestWorkoutService_AddExerciseToWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()

	owned := &domain.Workout{ID: testWorkoutID, UserID: testUserID}
	req := &domain.AddExerciseToWorkoutRequest{
		UserID:     testUserID,
		WorkoutID:  testWorkoutID,
		ExerciseID: 3,
	}

	t.Run("appends at the next order", func(t *testing.T) {
		m.repo.EXPECT().
			GetWorkoutByID(ctx, testUserID, testWorkoutID).
			Return(owned, nil)
		m.exerciseRepo.EXPECT().
			GetExerciseByID(ctx, int64(3)).
			Return(&domain.Exercise{ID: 3, Name: "Bench Press"}, nil)
		m.workoutExerciseRepo.EXPECT().
			GetNextOrder(ctx, testWorkoutID).
			Return(4, nil)
		m.workoutExerciseRepo.EXPECT().
			CreateWorkoutExercise(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, workoutExercise *domain.WorkoutExercise) error {
				assert.Equal(t, 4, workoutExercise.Order)
				assert.Equal(t, testWorkoutID, workoutExercise.WorkoutID)
				return nil
			})

		workoutExercise, err := svc.AddExerciseToWorkout(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 4, workoutExercise.Order)
		assert.NotEmpty(t, workoutExercise.ID)
	})

	t.Run("another user's workout is not found", func(t *testing.T) {
		notFound := &domain.ErrWorkoutNotFound{Message: "workout not found"}

		m.repo.EXPECT().
			GetWorkoutByID(ctx, testOtherUserID, testWorkoutID).
			Return(nil, notFound)

		workoutExercise, err := svc.AddExerciseToWorkout(ctx, &domain.AddExerciseToWorkoutRequest{
			UserID:     testOtherUserID,
			WorkoutID:  testWorkoutID,
			ExerciseID: 3,
		})
		require.Error(t, err)
		assert.Equal(t, notFound, err)
		assert.Nil(t, workoutExercise)
	})

	t.Run("unknown exercise", func(t *testing.T) {
		notFound := &domain.ErrExerciseNotFound{Message: "exercise not found"}

		m.repo.EXPECT().
			GetWorkoutByID(ctx, testUserID, testWorkoutID).
			Return(owned, nil)
		m.exerciseRepo.EXPECT().
			GetExerciseByID(ctx, int64(3)).
			Return(nil, notFound)

		workoutExercise, err := svc.AddExerciseToWorkout(ctx, req)
		require.Error(t, err)
		assert.Equal(t, notFound, err)
		assert.Nil(t, workoutExercise)
	})
}

func TestWorkoutService_RemoveExerciseFromWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(t, ctrl)
	ctx := context.Background()

	owned := &domain.Workout{ID: testWorkoutID, UserID: testUserID}

	t.Run("removes the owner's entry", func(t *testing.T) {
		m.workoutExerciseRepo.EXPECT().
			GetOwningWorkout(ctx, testWorkoutExerciseID).
			Return(owned, nil)
		m.workoutExerciseRepo.EXPECT().
			DeleteWorkoutExercise(ctx, testWorkoutExerciseID).
			Return(nil)

		require.NoError(t, svc.RemoveExerciseFromWorkout(ctx, testUserID, testWorkoutExerciseID))
	})

	t.Run("a foreign owner reads as not found and nothing is deleted", func(t *testing.T) {
		m.workoutExerciseRepo.EXPECT().
			GetOwningWorkout(ctx, testWorkoutExerciseID).
			Return(owned, nil)

		err := svc.RemoveExerciseFromWorkout(ctx, testOtherUserID, testWorkoutExerciseID)
		require.Error(t, err)
		assert.IsType(t, &domain.ErrWorkoutExerciseNotFound{}, err)
	})

	t.Run("missing entry", func(t *testing.T) {
		notFound := &domain.ErrWorkoutExerciseNotFound{Message: "workout exercise not found"}

		m.workoutExerciseRepo.EXPECT().
			GetOwningWorkout(ctx, testWorkoutExerciseID).
			Return(nil, notFound)

		err := svc.RemoveExerciseFromWorkout(ctx, testUserID, testWorkoutExerciseID)
		require.Error(t, err)
		assert.Equal(t, notFound, err)
	})
}
