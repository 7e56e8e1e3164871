package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/liftlog/liftlog/internal/domain"
)

const workoutColumns = "id, user_id, name, started_at, completed_at, created_at, updated_at"

type workoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository creates a new PostgreSQL workout repository
func NewWorkoutRepository(db *sql.DB) domain.WorkoutRepository {
	return &workoutRepository{
		db: db,
	}
}

// WithTransaction executes a function within a transaction
func (r *workoutRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
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

func (r *workoutRepository) CreateWorkout(ctx context.Context, workout *domain.Workout) error {
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	query := `
		INSERT INTO workouts (id, user_id, name, started_at, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		workout.ID,
		workout.UserID,
		workout.Name,
		workout.StartedAt,
		workout.CompletedAt,
		workout.CreatedAt,
		workout.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

// CreateWorkoutTx creates a workout within a transaction
func (r *workoutRepository) CreateWorkoutTx(ctx context.Context, tx *sql.Tx, workout *domain.Workout) error {
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	query := `
		INSERT INTO workouts (id, user_id, name, started_at, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := tx.ExecContext(ctx, query,
		workout.ID,
		workout.UserID,
		workout.Name,
		workout.StartedAt,
		workout.CompletedAt,
		workout.CreatedAt,
		workout.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

func (r *workoutRepository) GetWorkoutByID(ctx context.Context, userID, workoutID string) (*domain.Workout, error) {
	// The user_id predicate is the ownership check: a foreign workout scans
	// as ErrNoRows exactly like a missing one.
	query := `
		SELECT ` + workoutColumns + `
		FROM workouts
		WHERE id = $1 AND user_id = $2
	`

	row := r.db.QueryRowContext(ctx, query, workoutID, userID)
	workout, err := domain.ScanWorkout(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrWorkoutNotFound{Message: "workout not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	return workout, nil
}

// GetWorkoutByIDTx retrieves an owner-scoped workout within a transaction
func (r *workoutRepository) GetWorkoutByIDTx(ctx context.Context, tx *sql.Tx, userID, workoutID string) (*domain.Workout, error) {
	query := `
		SELECT ` + workoutColumns + `
		FROM workouts
		WHERE id = $1 AND user_id = $2
	`

	row := tx.QueryRowContext(ctx, query, workoutID, userID)
	workout, err := domain.ScanWorkout(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrWorkoutNotFound{Message: "workout not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	return workout, nil
}

func (r *workoutRepository) GetWorkouts(ctx context.Context, userID string) ([]*domain.Workout, error) {
	query := `
		SELECT ` + workoutColumns + `
		FROM workouts
		WHERE user_id = $1
		ORDER BY started_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkoutRows(rows)
}

func (r *workoutRepository) GetWorkoutsActiveOnDate(ctx context.Context, userID string, dayStart, dayEnd time.Time) ([]*domain.Workout, error) {
	// A workout is active on a day when it started on or before the day's
	// end and either is still in progress or finished on or after the day's
	// start.
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	queryBuilder := psql.Select("id", "user_id", "name", "started_at", "completed_at", "created_at", "updated_at").
		From("workouts").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"started_at": dayEnd}).
		Where(sq.Or{
			sq.Eq{"completed_at": nil},
			sq.GtOrEq{"completed_at": dayStart},
		}).
		OrderBy("started_at ASC")

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get active workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkoutRows(rows)
}

func (r *workoutRepository) UpdateWorkout(ctx context.Context, userID, workoutID string, update domain.WorkoutUpdate) (*domain.Workout, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	queryBuilder := psql.Update("workouts").
		Set("updated_at", time.Now().UTC())

	if update.Name != nil {
		queryBuilder = queryBuilder.Set("name", *update.Name)
	}
	if update.StartedAt != nil {
		queryBuilder = queryBuilder.Set("started_at", *update.StartedAt)
	}
	if update.ClearCompleted {
		queryBuilder = queryBuilder.Set("completed_at", nil)
	} else if update.CompletedAt != nil {
		queryBuilder = queryBuilder.Set("completed_at", *update.CompletedAt)
	}

	// The owner predicate makes the check and the mutation one statement:
	// there is no window where ownership could be rechecked stale.
	queryBuilder = queryBuilder.
		Where(sq.Eq{"id": workoutID}).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + workoutColumns)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	workout, err := domain.ScanWorkout(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrWorkoutNotFound{Message: "workout not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}

	return workout, nil
}

func (r *workoutRepository) DeleteWorkout(ctx context.Context, userID, workoutID string) error {
	query := `DELETE FROM workouts WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, workoutID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrWorkoutNotFound{Message: "workout not found"}
	}

	return nil
}

func scanWorkoutRows(rows *sql.Rows) ([]*domain.Workout, error) {
	var workouts []*domain.Workout
	for rows.Next() {
		workout, err := domain.ScanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, workout)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workout rows: %w", err)
	}

	return workouts, nil
}
