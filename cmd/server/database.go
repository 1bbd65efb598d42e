package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-lists-api/internal/config"
	platformmongo "github.com/phrazzld/todo-lists-api/internal/platform/mongo"
	"github.com/phrazzld/todo-lists-api/internal/platform/postgres"
	"github.com/phrazzld/todo-lists-api/internal/store"
)

// closeFunc releases the client behind a store.
type closeFunc func(ctx context.Context) error

// setupAppStore connects to the configured backend, verifies it with a ping
// and returns the store together with the function that releases its client.
func setupAppStore(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (store.TodoListStore, closeFunc, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		client, db, err := platformmongo.Connect(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}

		s := platformmongo.NewMongoTodoListStore(db.Collection(cfg.Database.Collection), logger)
		logger.Info("Using MongoDB store",
			slog.String("database", db.Name()),
			slog.String("collection", cfg.Database.Collection))
		return s, client.Disconnect, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}

		if err := postgres.Migrate(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		logger.Info("Using PostgreSQL store")
		return postgres.NewPostgresTodoListStore(db, logger), func(context.Context) error {
			return db.Close()
		}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
