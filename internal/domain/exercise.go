package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_exercise_repository.go -package mocks github.com/liftlog/liftlog/internal/domain ExerciseRepository

// Exercise is global reference data shared by every user. Rows are created on
// first use and are never deleted as part of the workout lifecycle.
type Exercise struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs validation on the exercise fields
func (e *Exercise) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("invalid exercise: name is required")
	}
	if len(e.Name) > 255 {
		return fmt.Errorf("invalid exercise: name length must be between 1 and 255")
	}
	return nil
}

// For database scanning
type dbExercise struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScanExercise scans an exercise from the database
func ScanExercise(scanner interface {
	Scan(dest ...interface{}) error
}) (*Exercise, error) {
	var dbe dbExercise
	if err := scanner.Scan(
		&dbe.ID,
		&dbe.Name,
		&dbe.CreatedAt,
		&dbe.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &Exercise{
		ID:        dbe.ID,
		Name:      dbe.Name,
		CreatedAt: dbe.CreatedAt,
		UpdatedAt: dbe.UpdatedAt,
	}, nil
}

// Request/Response types
type GetOrCreateExerciseRequest struct {
	Name string `json:"name"`
}

// Validate trims the name and checks its bounds. The trimmed name is the
// lookup key, so trimming has to happen before any storage access.
func (r *GetOrCreateExerciseRequest) Validate() (name string, err error) {
	name = strings.TrimSpace(r.Name)
	if name == "" {
		return "", NewValidationError("invalid get or create exercise request: name is required")
	}
	if len(name) > 255 {
		return "", NewValidationError("invalid get or create exercise request: name length must be between 1 and 255")
	}
	return name, nil
}

// ExerciseService provides operations for the global exercise catalog
type ExerciseService interface {
	// GetOrCreateExercise returns the exercise with the given trimmed name,
	// creating it first if it does not exist yet
	GetOrCreateExercise(ctx context.Context, req *GetOrCreateExerciseRequest) (*Exercise, error)

	// GetExerciseByID retrieves an exercise by ID
	GetExerciseByID(ctx context.Context, id int64) (*Exercise, error)

	// GetExercises retrieves the full catalog ordered by name
	GetExercises(ctx context.Context) ([]*Exercise, error)
}

type ExerciseRepository interface {
	// GetOrCreateExercise looks an exercise up by exact name and inserts it
	// if absent. A concurrent insert of the same name must resolve to the
	// existing row, never to an error or a second row.
	GetOrCreateExercise(ctx context.Context, name string) (*Exercise, error)

	// GetExerciseByID retrieves an exercise by its ID
	GetExerciseByID(ctx context.Context, id int64) (*Exercise, error)

	// GetExercises retrieves all exercises ordered by name
	GetExercises(ctx context.Context) ([]*Exercise, error)
}
