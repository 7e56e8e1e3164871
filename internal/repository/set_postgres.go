package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/liftlog/liftlog/internal/domain"
)

const setColumns = "id, workout_exercise_id, set_number, weight_kg, reps, created_at"

type setRepository struct {
	db *sql.DB
}

// NewSetRepository creates a new PostgreSQL set repository
func NewSetRepository(db *sql.DB) domain.SetRepository {
	return &setRepository{
		db: db,
	}
}

// WithTransaction executes a function within a transaction
func (r *setRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *setRepository) CreateSet(ctx context.Context, set *domain.Set) error {
	set.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO sets (id, workout_exercise_id, set_number, weight_kg, reps, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		set.ID,
		set.WorkoutExerciseID,
		set.SetNumber,
		set.WeightKg,
		set.Reps,
		set.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create set: %w", err)
	}
	return nil
}

// CreateSetsTx bulk-inserts set rows in one statement
func (r *setRepository) CreateSetsTx(ctx context.Context, tx *sql.Tx, sets []*domain.Set) error {
	if len(sets) == 0 {
		return nil
	}

	now := time.Now().UTC()

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Insert("sets").
		Columns("id", "workout_exercise_id", "set_number", "weight_kg", "reps", "created_at")

	for _, set := range sets {
		set.CreatedAt = now
		queryBuilder = queryBuilder.Values(
			set.ID,
			set.WorkoutExerciseID,
			set.SetNumber,
			set.WeightKg,
			set.Reps,
			set.CreatedAt,
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create sets: %w", err)
	}
	return nil
}

func (r *setRepository) GetOwningWorkout(ctx context.Context, setID string) (*domain.Workout, error) {
	// Three tables deep: set -> workout_exercise -> workout. The caller
	// compares the returned workout's user_id against the requesting user.
	query := `
		SELECT w.id, w.user_id, w.name, w.started_at, w.completed_at, w.created_at, w.updated_at
		FROM workouts w
		JOIN workout_exercises we ON we.workout_id = w.id
		JOIN sets s ON s.workout_exercise_id = we.id
		WHERE s.id = $1
	`

	row := r.db.QueryRowContext(ctx, query, setID)
	workout, err := domain.ScanWorkout(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrSetNotFound{Message: "set not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owning workout: %w", err)
	}

	return workout, nil
}

func (r *setRepository) UpdateSet(ctx context.Context, setID string, weightKg float64, reps int) (*domain.Set, error) {
	query := `
		UPDATE sets
		SET weight_kg = $1, reps = $2
		WHERE id = $3
		RETURNING ` + setColumns

	row := r.db.QueryRowContext(ctx, query, weightKg, reps, setID)
	set, err := domain.ScanSet(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrSetNotFound{Message: "set not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update set: %w", err)
	}

	return set, nil
}

func (r *setRepository) DeleteSet(ctx context.Context, setID string) error {
	query := `DELETE FROM sets WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, setID)
	if err != nil {
		return fmt.Errorf("failed to delete set: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrSetNotFound{Message: "set not found"}
	}

	return nil
}
