package domain

import (
	"context"
	"database/sql"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_workout_exercise_repository.go -package mocks github.com/liftlog/liftlog/internal/domain WorkoutExerciseRepository

// WorkoutExercise links a workout to a catalog exercise at a position in the
// workout's execution order. It carries no user_id of its own: ownership is
// always resolved through the parent workout.
//
// Order values are appended, never renumbered. Removing an entry leaves a gap
// and the next append still uses max(order)+1.
type WorkoutExercise struct {
	ID         string    `json:"id"`
	WorkoutID  string    `json:"workout_id" db:"workout_id"`
	ExerciseID int64     `json:"exercise_id" db:"exercise_id"`
	Order      int       `json:"order" db:"order"`
	CreatedAt  time.Time `json:"created_at"`
}

// For database scanning
type dbWorkoutExercise struct {
	ID         string
	WorkoutID  string
	ExerciseID int64
	Order      int
	CreatedAt  time.Time
}

// ScanWorkoutExercise scans a workout exercise from the database
func ScanWorkoutExercise(scanner interface {
	Scan(dest ...interface{}) error
}) (*WorkoutExercise, error) {
	var dbwe dbWorkoutExercise
	if err := scanner.Scan(
		&dbwe.ID,
		&dbwe.WorkoutID,
		&dbwe.ExerciseID,
		&dbwe.Order,
		&dbwe.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &WorkoutExercise{
		ID:         dbwe.ID,
		WorkoutID:  dbwe.WorkoutID,
		ExerciseID: dbwe.ExerciseID,
		Order:      dbwe.Order,
		CreatedAt:  dbwe.CreatedAt,
	}, nil
}

// WorkoutExerciseWithSets is one node of the workout tree read: the join row,
// its catalog exercise, and its sets ordered by set number.
type WorkoutExerciseWithSets struct {
	WorkoutExercise *WorkoutExercise `json:"workout_exercise"`
	Exercise        *Exercise        `json:"exercise"`
	Sets            []*Set           `json:"sets"`
}

// Request/Response types
type AddExerciseToWorkoutRequest struct {
	UserID     string `json:"user_id"`
	WorkoutID  string `json:"workout_id"`
	ExerciseID int64  `json:"exercise_id"`
}

func (r *AddExerciseToWorkoutRequest) Validate() error {
	if r.UserID == "" {
		return NewValidationError("invalid add exercise request: user_id is required")
	}
	if r.WorkoutID == "" {
		return NewValidationError("invalid add exercise request: workout_id is required")
	}
	if !govalidator.IsUUID(r.WorkoutID) {
		return NewValidationError("invalid add exercise request: workout_id must be a UUID")
	}
	if r.ExerciseID <= 0 {
		return NewValidationError("invalid add exercise request: exercise_id must be positive")
	}
	return nil
}

type WorkoutExerciseRepository interface {
	// CreateWorkoutExercise inserts a workout exercise row
	CreateWorkoutExercise(ctx context.Context, workoutExercise *WorkoutExercise) error

	// CreateWorkoutExercisesTx bulk-inserts workout exercise rows within a transaction
	CreateWorkoutExercisesTx(ctx context.Context, tx *sql.Tx, workoutExercises []*WorkoutExercise) error

	// GetNextOrder returns max(order)+1 for the workout, or 0 when the
	// workout has no exercises yet
	GetNextOrder(ctx context.Context, workoutID string) (int, error)

	// GetWorkoutExercises retrieves the workout's exercise rows ordered by position
	GetWorkoutExercises(ctx context.Context, workoutID string) ([]*WorkoutExercise, error)

	// GetWorkoutExercisesTx is GetWorkoutExercises within a transaction
	GetWorkoutExercisesTx(ctx context.Context, tx *sql.Tx, workoutID string) ([]*WorkoutExercise, error)

	// GetWorkoutExercisesWithSets retrieves the full tree below a workout:
	// exercise rows joined to the catalog, each with its sets ordered by
	// set_number
	GetWorkoutExercisesWithSets(ctx context.Context, workoutID string) ([]*WorkoutExerciseWithSets, error)

	// GetOwningWorkout resolves the workout that owns a workout exercise.
	// Returns ErrWorkoutExerciseNotFound when the row does not exist.
	GetOwningWorkout(ctx context.Context, workoutExerciseID string) (*Workout, error)

	// DeleteWorkoutExercise deletes a workout exercise; its sets go with it
	// by cascade
	DeleteWorkoutExercise(ctx context.Context, workoutExerciseID string) error
}
