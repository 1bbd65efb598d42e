package ciutil

import (
	"log/slog"
	"os"

	"github.com/phrazzld/todo-lists-api/internal/redact"
)

// Common environment variable names used across the codebase.
const (
	// CI environment detection variables
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	// Integration test connection strings, preferred names first
	EnvTestMongoURI    = "TODO_TEST_MONGODB_URI"
	EnvMongoURI        = "MONGODB_URI"
	EnvTestDatabaseURL = "TODO_TEST_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// IsCI returns true if the current environment is a CI environment.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != "" ||
		os.Getenv(EnvJenkinsURL) != "" ||
		os.Getenv(EnvCircleCI) != ""
}

// GetEnvWithFallbacks returns the value of the first non-empty environment variable
// from the provided list. If none is set, it returns defaultValue.
// Using anything but the first name logs a warning with the value redacted.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		if val := os.Getenv(envVar); val != "" {
			if i > 0 && logger != nil {
				logger.Warn("Using fallback environment variable",
					slog.String("used_var", envVar),
					slog.String("preferred_var", envVars[0]),
					slog.String("value", redact.String(val)))
			}
			return val
		}
	}
	return defaultValue
}
