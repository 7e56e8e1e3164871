package schema

// TableDefinitions holds the DDL for every table, in dependency order.
// Deleting a workout removes its workout_exercises and their sets through
// the ON DELETE CASCADE chain; exercises are global reference data and sit
// outside the cascade.
//
// sets carries no uniqueness constraint on (workout_exercise_id, set_number):
// set numbers are caller-computed and best-effort, and a constraint would
// fail legitimate concurrent logging.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS exercises (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id UUID PRIMARY KEY,
		user_id VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		started_at TIMESTAMP WITH TIME ZONE NOT NULL,
		completed_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_user_started ON workouts (user_id, started_at)`,
	`CREATE TABLE IF NOT EXISTS workout_exercises (
		id UUID PRIMARY KEY,
		workout_id UUID NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
		exercise_id BIGINT NOT NULL REFERENCES exercises(id),
		"order" INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		UNIQUE (workout_id, "order")
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises (workout_id)`,
	`CREATE TABLE IF NOT EXISTS sets (
		id UUID PRIMARY KEY,
		workout_exercise_id UUID NOT NULL REFERENCES workout_exercises(id) ON DELETE CASCADE,
		set_number INTEGER NOT NULL CHECK (set_number >= 1),
		weight_kg DECIMAL(6,2) NOT NULL CHECK (weight_kg >= 0),
		reps INTEGER NOT NULL CHECK (reps >= 1),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sets_workout_exercise ON sets (workout_exercise_id)`,
}
