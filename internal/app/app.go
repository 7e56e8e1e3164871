package app

import (
	"database/sql"
	"fmt"

	"github.com/liftlog/liftlog/config"
	"github.com/liftlog/liftlog/internal/database"
	"github.com/liftlog/liftlog/internal/domain"
	"github.com/liftlog/liftlog/internal/repository"
	"github.com/liftlog/liftlog/internal/service"
	"github.com/liftlog/liftlog/pkg/logger"
)

// App wires configuration, storage, repositories and services together.
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB

	workoutRepo         domain.WorkoutRepository
	workoutExerciseRepo domain.WorkoutExerciseRepository
	setRepo             domain.SetRepository
	exerciseRepo        domain.ExerciseRepository

	workoutService  *service.WorkoutService
	setService      *service.SetService
	exerciseService *service.ExerciseService
}

// AppOption customizes app construction
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(l logger.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// WithDB sets an existing database connection instead of opening one
func WithDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{
		config: cfg,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logger.NewLoggerWithLevel(cfg.LogLevel)
	}

	return a
}

// Initialize connects to the database, ensures the schema and builds the
// repository and service graph.
func (a *App) Initialize() error {
	if a.db == nil {
		db, err := database.Connect(&a.config.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
	}

	if err := database.InitializeDatabase(a.db); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	a.workoutRepo = repository.NewWorkoutRepository(a.db)
	a.workoutExerciseRepo = repository.NewWorkoutExerciseRepository(a.db)
	a.setRepo = repository.NewSetRepository(a.db)
	a.exerciseRepo = repository.NewExerciseRepository(a.db)

	a.exerciseService = service.NewExerciseService(a.exerciseRepo, a.logger)
	a.workoutService = service.NewWorkoutService(a.workoutRepo, a.workoutExerciseRepo, a.exerciseRepo, a.logger)
	a.setService = service.NewSetService(a.setRepo, a.workoutExerciseRepo, a.workoutRepo, a.logger)

	a.logger.WithField("environment", a.config.Environment).Info("Application initialized")
	return nil
}

// Shutdown releases the database connection
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Logger() logger.Logger {
	return a.logger
}

func (a *App) DB() *sql.DB {
	return a.db
}

func (a *App) WorkoutService() *service.WorkoutService {
	return a.workoutService
}

func (a *App) SetService() *service.SetService {
	return a.setService
}

func (a *App) ExerciseService() *service.ExerciseService {
	return a.exerciseService
}
