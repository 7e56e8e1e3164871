package domain

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_workout_repository.go -package mocks github.com/liftlog/liftlog/internal/domain WorkoutRepository

// Workout is the aggregate root of the ownership tree. UserID is the opaque
// authenticated-subject identifier supplied by the identity provider; it is
// set at creation and never changes. A nil CompletedAt means the workout is
// still in progress.
type Workout struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Name        string     `json:"name"`
	StartedAt   time.Time  `json:"started_at" db:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Validate performs validation on the workout fields
func (w *Workout) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("invalid workout: id is required")
	}
	if !govalidator.IsUUID(w.ID) {
		return fmt.Errorf("invalid workout: id must be a UUID")
	}
	if w.UserID == "" {
		return fmt.Errorf("invalid workout: user_id is required")
	}
	if w.Name == "" {
		return fmt.Errorf("invalid workout: name is required")
	}
	if len(w.Name) > 255 {
		return fmt.Errorf("invalid workout: name length must be between 1 and 255")
	}
	if w.StartedAt.IsZero() {
		return fmt.Errorf("invalid workout: started_at is required")
	}
	if w.CompletedAt != nil && w.CompletedAt.Before(w.StartedAt) {
		return fmt.Errorf("invalid workout: completed_at must not be before started_at")
	}
	return nil
}

// For database scanning
type dbWorkout struct {
	ID          string
	UserID      string
	Name        string
	StartedAt   time.Time
	CompletedAt sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ScanWorkout scans a workout from the database
func ScanWorkout(scanner interface {
	Scan(dest ...interface{}) error
}) (*Workout, error) {
	var dbw dbWorkout
	if err := scanner.Scan(
		&dbw.ID,
		&dbw.UserID,
		&dbw.Name,
		&dbw.StartedAt,
		&dbw.CompletedAt,
		&dbw.CreatedAt,
		&dbw.UpdatedAt,
	); err != nil {
		return nil, err
	}

	w := &Workout{
		ID:        dbw.ID,
		UserID:    dbw.UserID,
		Name:      dbw.Name,
		StartedAt: dbw.StartedAt,
		CreatedAt: dbw.CreatedAt,
		UpdatedAt: dbw.UpdatedAt,
	}
	if dbw.CompletedAt.Valid {
		completedAt := dbw.CompletedAt.Time
		w.CompletedAt = &completedAt
	}

	return w, nil
}

// WorkoutUpdate carries the fields of a partial workout update. Nil fields
// are left untouched; ClearCompletedAt moves a finished workout back to
// in-progress and wins over CompletedAt when both are given.
type WorkoutUpdate struct {
	Name           *string
	StartedAt      *time.Time
	CompletedAt    *time.Time
	ClearCompleted bool
}

// IsEmpty reports whether the update would change nothing.
func (u *WorkoutUpdate) IsEmpty() bool {
	return u.Name == nil && u.StartedAt == nil && u.CompletedAt == nil && !u.ClearCompleted
}

// Request/Response types
type CreateWorkoutRequest struct {
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (r *CreateWorkoutRequest) Validate() error {
	if r.UserID == "" {
		return NewValidationError("invalid create workout request: user_id is required")
	}
	if r.Name == "" {
		return NewValidationError("invalid create workout request: name is required")
	}
	if len(r.Name) > 255 {
		return NewValidationError("invalid create workout request: name length must be between 1 and 255")
	}
	if r.StartedAt.IsZero() {
		return NewValidationError("invalid create workout request: started_at is required")
	}
	if r.CompletedAt != nil && r.CompletedAt.Before(r.StartedAt) {
		return NewValidationError("invalid create workout request: completed_at must not be before started_at")
	}
	return nil
}

type UpdateWorkoutRequest struct {
	UserID         string     `json:"user_id"`
	WorkoutID      string     `json:"workout_id"`
	Name           *string    `json:"name,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	ClearCompleted bool       `json:"clear_completed,omitempty"`
}

func (r *UpdateWorkoutRequest) Validate() (update WorkoutUpdate, err error) {
	if r.UserID == "" {
		return update, NewValidationError("invalid update workout request: user_id is required")
	}
	if r.WorkoutID == "" {
		return update, NewValidationError("invalid update workout request: workout_id is required")
	}
	if !govalidator.IsUUID(r.WorkoutID) {
		return update, NewValidationError("invalid update workout request: workout_id must be a UUID")
	}
	if r.Name != nil {
		if *r.Name == "" {
			return update, NewValidationError("invalid update workout request: name must not be empty")
		}
		if len(*r.Name) > 255 {
			return update, NewValidationError("invalid update workout request: name length must be between 1 and 255")
		}
	}
	if r.StartedAt != nil && r.StartedAt.IsZero() {
		return update, NewValidationError("invalid update workout request: started_at must not be zero")
	}
	if r.CompletedAt != nil && r.ClearCompleted {
		return update, NewValidationError("invalid update workout request: completed_at and clear_completed are mutually exclusive")
	}

	update = WorkoutUpdate{
		Name:           r.Name,
		StartedAt:      r.StartedAt,
		CompletedAt:    r.CompletedAt,
		ClearCompleted: r.ClearCompleted,
	}
	if update.IsEmpty() {
		return update, NewValidationError("invalid update workout request: no fields to update")
	}
	return update, nil
}

type ActiveWorkoutsRequest struct {
	UserID   string    `json:"user_id"`
	DayStart time.Time `json:"day_start"`
	DayEnd   time.Time `json:"day_end"`
}

func (r *ActiveWorkoutsRequest) Validate() error {
	if r.UserID == "" {
		return NewValidationError("invalid active workouts request: user_id is required")
	}
	if r.DayStart.IsZero() || r.DayEnd.IsZero() {
		return NewValidationError("invalid active workouts request: day_start and day_end are required")
	}
	if r.DayEnd.Before(r.DayStart) {
		return NewValidationError("invalid active workouts request: day_end must not be before day_start")
	}
	return nil
}

// WorkoutService provides ownership-scoped operations on workouts and their
// exercise tree. Every method takes the authenticated-subject identifier and
// never returns another user's rows.
type WorkoutService interface {
	// CreateWorkout creates a new workout owned by the requesting user
	CreateWorkout(ctx context.Context, req *CreateWorkoutRequest) (*Workout, error)

	// GetWorkoutByID retrieves one of the user's workouts
	GetWorkoutByID(ctx context.Context, userID, workoutID string) (*Workout, error)

	// GetWorkouts retrieves all of the user's workouts ordered by start time
	GetWorkouts(ctx context.Context, userID string) ([]*Workout, error)

	// GetWorkoutsActiveOnDate retrieves the user's workouts overlapping a calendar day
	GetWorkoutsActiveOnDate(ctx context.Context, req *ActiveWorkoutsRequest) ([]*Workout, error)

	// UpdateWorkout applies a partial update and returns the updated row
	UpdateWorkout(ctx context.Context, req *UpdateWorkoutRequest) (*Workout, error)

	// CompleteWorkout stamps completed_at on an in-progress workout
	CompleteWorkout(ctx context.Context, userID, workoutID string, completedAt time.Time) (*Workout, error)

	// DeleteWorkout deletes a workout and, by cascade, its exercises and sets
	DeleteWorkout(ctx context.Context, userID, workoutID string) error

	// DuplicateWorkout copies a workout and its exercise list atomically
	DuplicateWorkout(ctx context.Context, userID, workoutID string) (*Workout, error)

	// GetWorkoutTree returns the workout's exercises with their sets
	GetWorkoutTree(ctx context.Context, userID, workoutID string) ([]*WorkoutExerciseWithSets, error)

	// AddExerciseToWorkout appends an exercise to the workout's execution order
	AddExerciseToWorkout(ctx context.Context, req *AddExerciseToWorkoutRequest) (*WorkoutExercise, error)

	// RemoveExerciseFromWorkout removes a workout exercise and, by cascade, its sets
	RemoveExerciseFromWorkout(ctx context.Context, userID, workoutExerciseID string) error
}

type WorkoutRepository interface {
	// CreateWorkout creates a new workout in the database
	CreateWorkout(ctx context.Context, workout *Workout) error

	// GetWorkoutByID retrieves a workout scoped to its owner. A workout that
	// exists but belongs to someone else is reported exactly like a missing
	// one.
	GetWorkoutByID(ctx context.Context, userID, workoutID string) (*Workout, error)

	// GetWorkouts retrieves all workouts of a user ordered by started_at
	GetWorkouts(ctx context.Context, userID string) ([]*Workout, error)

	// GetWorkoutsActiveOnDate retrieves the user's workouts active within
	// the [dayStart, dayEnd] window
	GetWorkoutsActiveOnDate(ctx context.Context, userID string, dayStart, dayEnd time.Time) ([]*Workout, error)

	// UpdateWorkout updates a workout with an owner-scoped predicate and
	// returns the updated row; zero matched rows is a not-found
	UpdateWorkout(ctx context.Context, userID, workoutID string, update WorkoutUpdate) (*Workout, error)

	// DeleteWorkout deletes a workout with an owner-scoped predicate
	DeleteWorkout(ctx context.Context, userID, workoutID string) error

	// WithTransaction executes a function within a transaction
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error

	// CreateWorkoutTx creates a workout within a transaction
	CreateWorkoutTx(ctx context.Context, tx *sql.Tx, workout *Workout) error

	// GetWorkoutByIDTx retrieves an owner-scoped workout within a transaction
	GetWorkoutByIDTx(ctx context.Context, tx *sql.Tx, userID, workoutID string) (*Workout, error)
}
