package ciutil

import (
	"log/slog"
	"testing"
)

// TestMongoURI returns the MongoDB URI for integration tests, or "".
func TestMongoURI(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestMongoURI, EnvMongoURI}, "", logger)
}

// TestDatabaseURL returns the PostgreSQL URL for integration tests, or "".
func TestDatabaseURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestDatabaseURL, EnvDatabaseURL}, "", logger)
}

// RequireEnv skips the test when value is empty, or fails it when running in CI.
func RequireEnv(t testing.TB, value, envVar string) {
	t.Helper()

	if value != "" {
		return
	}
	if IsCI() {
		t.Fatalf("%s must be set when running integration tests in CI", envVar)
	}
	t.Skipf("%s not set", envVar)
}
