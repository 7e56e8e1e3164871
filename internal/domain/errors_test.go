package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrors(t *testing.T) {
	assert.Equal(t, "workout not found", (&ErrWorkoutNotFound{Message: "workout not found"}).Error())
	assert.Equal(t, "workout exercise not found", (&ErrWorkoutExerciseNotFound{Message: "workout exercise not found"}).Error())
	assert.Equal(t, "set not found", (&ErrSetNotFound{Message: "set not found"}).Error())
	assert.Equal(t, "exercise not found", (&ErrExerciseNotFound{Message: "exercise not found"}).Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("reps must be at least 1")
	assert.Equal(t, "validation error: reps must be at least 1", err.Error())

	var v ValidationError
	assert.ErrorAs(t, err, &v)
	assert.Equal(t, "reps must be at least 1", v.Message)
}
