package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-lists-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logAppConfig logs the non-sensitive parts of the configuration.
func logAppConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("debug", cfg.Server.Debug),
		slog.String("database_driver", cfg.Database.Driver))

	logger.Debug("Database configuration",
		slog.Bool("uri_present", cfg.Database.URI != ""),
		slog.String("database_name", cfg.Database.Name),
		slog.String("collection", cfg.Database.Collection),
		slog.Int("connect_timeout_seconds", cfg.Database.ConnectTimeoutSeconds))
}
