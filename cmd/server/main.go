// Package main implements the entry point for the to-do lists API server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
)

// main is the entry point for the todo-lists-api server.
// It loads configuration, sets up logging, connects the configured store
// and serves HTTP until a shutdown signal arrives. Any startup failure,
// including an unreachable store, exits non-zero before serving.
func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		app.logger.Error("Application stopped with error", slog.String("error", err.Error()))
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}

	todoStore, closeStore, err := setupAppStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to store", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	return newApplication(cfg, logger, todoStore, closeStore), nil
}
