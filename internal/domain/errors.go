package domain

import (
	"fmt"
)

// ErrWorkoutNotFound is returned when a workout does not exist or does not
// belong to the requesting user. The two cases are deliberately
// indistinguishable so that one user can never probe for another user's data.
type ErrWorkoutNotFound struct {
	Message string
}

func (e *ErrWorkoutNotFound) Error() string {
	return e.Message
}

// ErrWorkoutExerciseNotFound covers both a missing workout exercise and one
// whose owning workout belongs to another user.
type ErrWorkoutExerciseNotFound struct {
	Message string
}

func (e *ErrWorkoutExerciseNotFound) Error() string {
	return e.Message
}

// ErrSetNotFound covers both a missing set and one owned, through its
// workout-exercise chain, by another user.
type ErrSetNotFound struct {
	Message string
}

func (e *ErrSetNotFound) Error() string {
	return e.Message
}

// ErrExerciseNotFound is returned when a reference exercise does not exist.
type ErrExerciseNotFound struct {
	Message string
}

func (e *ErrExerciseNotFound) Error() string {
	return e.Message
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}
