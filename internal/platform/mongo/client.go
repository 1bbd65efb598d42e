package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/phrazzld/todo-lists-api/internal/config"
	"github.com/phrazzld/todo-lists-api/internal/redact"
)

// ErrNoDatabaseName is returned when neither the config nor the connection
// string names a database.
var ErrNoDatabaseName = errors.New("no database name in connection string or config")

// Connect opens a client for cfg, resolves the target database and verifies
// the deployment answers a ping. The caller owns the returned client and must
// Disconnect it.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	if logger == nil {
		logger = slog.Default()
	}

	name, err := databaseName(cfg)
	if err != nil {
		return nil, nil, err
	}

	timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mongo client: %s", redact.Error(err))
	}

	db := client.Database(name)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := ping(pingCtx, db); err != nil {
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			logger.Warn("failed to disconnect after ping failure", slog.String("error", redact.Error(dErr)))
		}
		return nil, nil, fmt.Errorf("failed to ping mongo: %s", redact.Error(err))
	}

	logger.Info("mongo connection established", slog.String("database", name))
	return client, db, nil
}

func ping(ctx context.Context, db *mongo.Database) error {
	return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// databaseName returns cfg.Name, or the default database named in the
// connection string when the config leaves it empty.
func databaseName(cfg config.DatabaseConfig) (string, error) {
	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err != nil {
		return "", fmt.Errorf("invalid mongo connection string: %s", redact.Error(err))
	}

	if cfg.Name != "" {
		return cfg.Name, nil
	}
	if cs.Database == "" {
		return "", ErrNoDatabaseName
	}
	return cs.Database, nil
}
