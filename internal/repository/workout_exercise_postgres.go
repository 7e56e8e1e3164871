package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/liftlog/liftlog/internal/domain"
)

type workoutExerciseRepository struct {
	db *sql.DB
}

// NewWorkoutExerciseRepository creates a new PostgreSQL workout exercise repository
func NewWorkoutExerciseRepository(db *sql.DB) domain.WorkoutExerciseRepository {
	return &workoutExerciseRepository{
		db: db,
	}
}

func (r *workoutExerciseRepository) CreateWorkoutExercise(ctx context.Context, workoutExercise *domain.WorkoutExercise) error {
	workoutExercise.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO workout_exercises (id, workout_id, exercise_id, "order", created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		workoutExercise.ID,
		workoutExercise.WorkoutID,
		workoutExercise.ExerciseID,
		workoutExercise.Order,
		workoutExercise.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create workout exercise: %w", err)
	}
	return nil
}

// CreateWorkoutExercisesTx bulk-inserts workout exercise rows in one statement
func (r *workoutExerciseRepository) CreateWorkoutExercisesTx(ctx context.Context, tx *sql.Tx, workoutExercises []*domain.WorkoutExercise) error {
	if len(workoutExercises) == 0 {
		return nil
	}

	now := time.Now().UTC()

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Insert("workout_exercises").
		Columns("id", "workout_id", "exercise_id", `"order"`, "created_at")

	for _, workoutExercise := range workoutExercises {
		workoutExercise.CreatedAt = now
		queryBuilder = queryBuilder.Values(
			workoutExercise.ID,
			workoutExercise.WorkoutID,
			workoutExercise.ExerciseID,
			workoutExercise.Order,
			workoutExercise.CreatedAt,
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create workout exercises: %w", err)
	}
	return nil
}

func (r *workoutExerciseRepository) GetNextOrder(ctx context.Context, workoutID string) (int, error) {
	// Orders append forever: a removed entry's position is never reused.
	query := `
		SELECT COALESCE(MAX("order") + 1, 0)
		FROM workout_exercises
		WHERE workout_id = $1
	`

	var nextOrder int
	if err := r.db.QueryRowContext(ctx, query, workoutID).Scan(&nextOrder); err != nil {
		return 0, fmt.Errorf("failed to get next order: %w", err)
	}
	return nextOrder, nil
}

func (r *workoutExerciseRepository) GetWorkoutExercises(ctx context.Context, workoutID string) ([]*domain.WorkoutExercise, error) {
	query := `
		SELECT id, workout_id, exercise_id, "order", created_at
		FROM workout_exercises
		WHERE workout_id = $1
		ORDER BY "order" ASC
	`

	rows, err := r.db.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workout exercises: %w", err)
	}
	defer rows.Close()

	return scanWorkoutExerciseRows(rows)
}

// GetWorkoutExercisesTx is GetWorkoutExercises within a transaction
func (r *workoutExerciseRepository) GetWorkoutExercisesTx(ctx context.Context, tx *sql.Tx, workoutID string) ([]*domain.WorkoutExercise, error) {
	query := `
		SELECT id, workout_id, exercise_id, "order", created_at
		FROM workout_exercises
		WHERE workout_id = $1
		ORDER BY "order" ASC
	`

	rows, err := tx.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workout exercises: %w", err)
	}
	defer rows.Close()

	return scanWorkoutExerciseRows(rows)
}

func (r *workoutExerciseRepository) GetWorkoutExercisesWithSets(ctx context.Context, workoutID string) ([]*domain.WorkoutExerciseWithSets, error) {
	// One round trip for the whole tree. The LEFT JOIN keeps exercises with
	// no sets; their set columns come back NULL.
	query := `
		SELECT
			we.id, we.workout_id, we.exercise_id, we."order", we.created_at,
			e.id, e.name, e.created_at, e.updated_at,
			s.id, s.workout_exercise_id, s.set_number, s.weight_kg, s.reps, s.created_at
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		LEFT JOIN sets s ON s.workout_exercise_id = we.id
		WHERE we.workout_id = $1
		ORDER BY we."order" ASC, s.set_number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workout exercises with sets: %w", err)
	}
	defer rows.Close()

	var tree []*domain.WorkoutExerciseWithSets
	byID := make(map[string]*domain.WorkoutExerciseWithSets)

	for rows.Next() {
		var (
			workoutExercise domain.WorkoutExercise
			exercise        domain.Exercise
			setID           sql.NullString
			setWEID         sql.NullString
			setNumber       sql.NullInt64
			setWeightKg     sql.NullFloat64
			setReps         sql.NullInt64
			setCreatedAt    sql.NullTime
		)

		if err := rows.Scan(
			&workoutExercise.ID,
			&workoutExercise.WorkoutID,
			&workoutExercise.ExerciseID,
			&workoutExercise.Order,
			&workoutExercise.CreatedAt,
			&exercise.ID,
			&exercise.Name,
			&exercise.CreatedAt,
			&exercise.UpdatedAt,
			&setID,
			&setWEID,
			&setNumber,
			&setWeightKg,
			&setReps,
			&setCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workout exercise tree row: %w", err)
		}

		node, ok := byID[workoutExercise.ID]
		if !ok {
			node = &domain.WorkoutExerciseWithSets{
				WorkoutExercise: &workoutExercise,
				Exercise:        &exercise,
				Sets:            []*domain.Set{},
			}
			byID[workoutExercise.ID] = node
			tree = append(tree, node)
		}

		if setID.Valid {
			node.Sets = append(node.Sets, &domain.Set{
				ID:                setID.String,
				WorkoutExerciseID: setWEID.String,
				SetNumber:         int(setNumber.Int64),
				WeightKg:          setWeightKg.Float64,
				Reps:              int(setReps.Int64),
				CreatedAt:         setCreatedAt.Time,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workout exercise tree rows: %w", err)
	}

	return tree, nil
}

func (r *workoutExerciseRepository) GetOwningWorkout(ctx context.Context, workoutExerciseID string) (*domain.Workout, error) {
	// Workout exercises carry no user_id; ownership lives on the parent
	// workout reached through this join.
	query := `
		SELECT w.id, w.user_id, w.name, w.started_at, w.completed_at, w.created_at, w.updated_at
		FROM workouts w
		JOIN workout_exercises we ON we.workout_id = w.id
		WHERE we.id = $1
	`

	row := r.db.QueryRowContext(ctx, query, workoutExerciseID)
	workout, err := domain.ScanWorkout(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrWorkoutExerciseNotFound{Message: "workout exercise not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owning workout: %w", err)
	}

	return workout, nil
}

func (r *workoutExerciseRepository) DeleteWorkoutExercise(ctx context.Context, workoutExerciseID string) error {
	query := `DELETE FROM workout_exercises WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, workoutExerciseID)
	if err != nil {
		return fmt.Errorf("failed to delete workout exercise: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrWorkoutExerciseNotFound{Message: "workout exercise not found"}
	}

	return nil
}

func scanWorkoutExerciseRows(rows *sql.Rows) ([]*domain.WorkoutExercise, error) {
	var workoutExercises []*domain.WorkoutExercise
	for rows.Next() {
		workoutExercise, err := domain.ScanWorkoutExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout exercise: %w", err)
		}
		workoutExercises = append(workoutExercises, workoutExercise)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workout exercise rows: %w", err)
	}

	return workoutExercises, nil
}
