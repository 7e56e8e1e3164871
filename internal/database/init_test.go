package database

import (
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftlog/liftlog/internal/database/schema"
)

func TestInitializeDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema.TableDefinitions {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, InitializeDatabase(db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInitializeDatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(".*").WillReturnError(errors.New("permission denied"))

	err = InitializeDatabase(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create table")
}

func TestSchemaCascades(t *testing.T) {
	ddl := strings.Join(schema.TableDefinitions, "\n")

	// Child tables must drop with their parents; the exercise catalog must not.
	assert.Contains(t, ddl, "workout_id UUID NOT NULL REFERENCES workouts(id) ON DELETE CASCADE")
	assert.Contains(t, ddl, "workout_exercise_id UUID NOT NULL REFERENCES workout_exercises(id) ON DELETE CASCADE")
	assert.NotContains(t, ddl, "REFERENCES exercises(id) ON DELETE CASCADE")

	// Set numbers are best-effort: no uniqueness across a workout exercise.
	assert.NotContains(t, ddl, "UNIQUE (workout_exercise_id, set_number)")
}
