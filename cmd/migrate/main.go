package main

import (
	"fmt"
	"os"

	"github.com/liftlog/liftlog/config"
	"github.com/liftlog/liftlog/internal/app"
	"github.com/liftlog/liftlog/pkg/logger"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)
	appLogger.WithField("version", cfg.Version).Info("Running schema migration")

	appInstance := app.NewApp(cfg, app.WithLogger(appLogger))
	if err := appInstance.Initialize(); err != nil {
		return err
	}
	defer appInstance.Shutdown()

	appLogger.Info("Schema is up to date")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		osExit(1)
	}
}
