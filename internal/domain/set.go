package domain

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_set_repository.go -package mocks github.com/liftlog/liftlog/internal/domain SetRepository

// Set is the leaf of the ownership tree: one logged weight/rep entry under a
// workout exercise. SetNumber is caller-computed (current count + 1) and kept
// best-effort; the schema carries no uniqueness constraint on it.
type Set struct {
	ID                string    `json:"id"`
	WorkoutExerciseID string    `json:"workout_exercise_id" db:"workout_exercise_id"`
	SetNumber         int       `json:"set_number" db:"set_number"`
	WeightKg          float64   `json:"weight_kg" db:"weight_kg"`
	Reps              int       `json:"reps"`
	CreatedAt         time.Time `json:"created_at"`
}

// For database scanning
type dbSet struct {
	ID                string
	WorkoutExerciseID string
	SetNumber         int
	WeightKg          float64
	Reps              int
	CreatedAt         time.Time
}

// ScanSet scans a set from the database
func ScanSet(scanner interface {
	Scan(dest ...interface{}) error
}) (*Set, error) {
	var dbs dbSet
	if err := scanner.Scan(
		&dbs.ID,
		&dbs.WorkoutExerciseID,
		&dbs.SetNumber,
		&dbs.WeightKg,
		&dbs.Reps,
		&dbs.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &Set{
		ID:                dbs.ID,
		WorkoutExerciseID: dbs.WorkoutExerciseID,
		SetNumber:         dbs.SetNumber,
		WeightKg:          dbs.WeightKg,
		Reps:              dbs.Reps,
		CreatedAt:         dbs.CreatedAt,
	}, nil
}

// Request/Response types
type CreateSetRequest struct {
	UserID            string  `json:"user_id"`
	WorkoutExerciseID string  `json:"workout_exercise_id"`
	SetNumber         int     `json:"set_number"`
	WeightKg          float64 `json:"weight_kg"`
	Reps              int     `json:"reps"`
}

func (r *CreateSetRequest) Validate() error {
	if r.UserID == "" {
		return NewValidationError("invalid create set request: user_id is required")
	}
	if r.WorkoutExerciseID == "" {
		return NewValidationError("invalid create set request: workout_exercise_id is required")
	}
	if !govalidator.IsUUID(r.WorkoutExerciseID) {
		return NewValidationError("invalid create set request: workout_exercise_id must be a UUID")
	}
	if r.SetNumber < 1 {
		return NewValidationError("invalid create set request: set_number must be at least 1")
	}
	if r.WeightKg < 0 {
		return NewValidationError("invalid create set request: weight_kg must not be negative")
	}
	if r.Reps < 1 {
		return NewValidationError("invalid create set request: reps must be at least 1")
	}
	return nil
}

// SetInput is one entry of a bulk set-logging request.
type SetInput struct {
	WorkoutExerciseID string  `json:"workout_exercise_id"`
	SetNumber         int     `json:"set_number"`
	WeightKg          float64 `json:"weight_kg"`
	Reps              int     `json:"reps"`
}

type CreateSetsRequest struct {
	UserID    string     `json:"user_id"`
	WorkoutID string     `json:"workout_id"`
	Sets      []SetInput `json:"sets"`
}

func (r *CreateSetsRequest) Validate() error {
	if r.UserID == "" {
		return NewValidationError("invalid create sets request: user_id is required")
	}
	if r.WorkoutID == "" {
		return NewValidationError("invalid create sets request: workout_id is required")
	}
	if !govalidator.IsUUID(r.WorkoutID) {
		return NewValidationError("invalid create sets request: workout_id must be a UUID")
	}
	if len(r.Sets) == 0 {
		return NewValidationError("invalid create sets request: sets is required")
	}
	for i, input := range r.Sets {
		if input.WorkoutExerciseID == "" {
			return NewValidationError(fmt.Sprintf("invalid create sets request: sets[%d]: workout_exercise_id is required", i))
		}
		if !govalidator.IsUUID(input.WorkoutExerciseID) {
			return NewValidationError(fmt.Sprintf("invalid create sets request: sets[%d]: workout_exercise_id must be a UUID", i))
		}
		if input.SetNumber < 1 {
			return NewValidationError(fmt.Sprintf("invalid create sets request: sets[%d]: set_number must be at least 1", i))
		}
		if input.WeightKg < 0 {
			return NewValidationError(fmt.Sprintf("invalid create sets request: sets[%d]: weight_kg must not be negative", i))
		}
		if input.Reps < 1 {
			return NewValidationError(fmt.Sprintf("invalid create sets request: sets[%d]: reps must be at least 1", i))
		}
	}
	return nil
}

type UpdateSetRequest struct {
	UserID   string  `json:"user_id"`
	SetID    string  `json:"set_id"`
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
}

func (r *UpdateSetRequest) Validate() error {
	if r.UserID == "" {
		return NewValidationError("invalid update set request: user_id is required")
	}
	if r.SetID == "" {
		return NewValidationError("invalid update set request: set_id is required")
	}
	if !govalidator.IsUUID(r.SetID) {
		return NewValidationError("invalid update set request: set_id must be a UUID")
	}
	if r.WeightKg < 0 {
		return NewValidationError("invalid update set request: weight_kg must not be negative")
	}
	if r.Reps < 1 {
		return NewValidationError("invalid update set request: reps must be at least 1")
	}
	return nil
}

// SetService provides ownership-scoped set logging
type SetService interface {
	// CreateSet logs a single set after resolving the ownership chain
	CreateSet(ctx context.Context, req *CreateSetRequest) (*Set, error)

	// CreateSets logs several sets for one workout atomically
	CreateSets(ctx context.Context, req *CreateSetsRequest) ([]*Set, error)

	// UpdateSet updates a set's weight and reps
	UpdateSet(ctx context.Context, req *UpdateSetRequest) (*Set, error)

	// DeleteSet deletes a set
	DeleteSet(ctx context.Context, userID, setID string) error
}

type SetRepository interface {
	// CreateSet inserts a set row
	CreateSet(ctx context.Context, set *Set) error

	// CreateSetsTx bulk-inserts set rows within a transaction
	CreateSetsTx(ctx context.Context, tx *sql.Tx, sets []*Set) error

	// GetOwningWorkout resolves the workout that owns a set through the
	// set -> workout_exercise -> workout chain. Returns ErrSetNotFound when
	// the set does not exist.
	GetOwningWorkout(ctx context.Context, setID string) (*Workout, error)

	// UpdateSet updates a set's weight and reps and returns the updated row
	UpdateSet(ctx context.Context, setID string, weightKg float64, reps int) (*Set, error)

	// DeleteSet deletes a set
	DeleteSet(ctx context.Context, setID string) error

	// WithTransaction executes a function within a transaction
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}
