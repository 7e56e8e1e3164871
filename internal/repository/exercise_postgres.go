package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/liftlog/liftlog/internal/domain"
)

type exerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository creates a new PostgreSQL exercise repository
func NewExerciseRepository(db *sql.DB) domain.ExerciseRepository {
	return &exerciseRepository{
		db: db,
	}
}

func (r *exerciseRepository) GetOrCreateExercise(ctx context.Context, name string) (*domain.Exercise, error) {
	exercise, err := r.getExerciseByName(ctx, name)
	if err == nil {
		return exercise, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get exercise by name: %w", err)
	}

	now := time.Now().UTC()

	query := `
		INSERT INTO exercises (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowContext(ctx, query, name, now, now).Scan(&id)
	if err != nil {
		// A concurrent caller may have inserted the same name between our
		// lookup and the insert. The unique constraint reports that as
		// 23505, in which case the existing row is the answer.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			exercise, err = r.getExerciseByName(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("failed to get exercise after conflict: %w", err)
			}
			return exercise, nil
		}
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	return &domain.Exercise{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *exerciseRepository) getExerciseByName(ctx context.Context, name string) (*domain.Exercise, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM exercises
		WHERE name = $1
	`

	row := r.db.QueryRowContext(ctx, query, name)
	return domain.ScanExercise(row)
}

func (r *exerciseRepository) GetExerciseByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM exercises
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	exercise, err := domain.ScanExercise(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrExerciseNotFound{Message: "exercise not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}

	return exercise, nil
}

func (r *exerciseRepository) GetExercises(ctx context.Context) ([]*domain.Exercise, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM exercises
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*domain.Exercise
	for rows.Next() {
		exercise, err := domain.ScanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercise rows: %w", err)
	}

	return exercises, nil
}
