package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/todo-lists-api/internal/config"
	"github.com/phrazzld/todo-lists-api/internal/redact"
	"github.com/phrazzld/todo-lists-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	store      store.TodoListStore
	closeStore closeFunc
}

// newApplication creates a new application instance. The store must already
// be connected; closeStore may be nil when there is nothing to release.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	todoStore store.TodoListStore,
	closeStore closeFunc,
) *application {
	return &application{
		config:     cfg,
		logger:     logger,
		store:      todoStore,
		closeStore: closeStore,
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.closeStore != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := app.closeStore(ctx); err != nil {
			app.logger.Error("Error closing store connection", slog.String("error", redact.Error(err)))
		}
	}

	app.logger.Info("Application shutdown completed")
}
