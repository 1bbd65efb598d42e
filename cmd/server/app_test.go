package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-lists-api/internal/config"
	"github.com/phrazzld/todo-lists-api/internal/mocks"
	"github.com/phrazzld/todo-lists-api/internal/platform/logger"
)

func TestSetupAppStore_UnsupportedDriver(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "sqlite"}}

	s, closeStore, err := setupAppStore(context.Background(), cfg, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
	assert.Nil(t, s)
	assert.Nil(t, closeStore)
}

func TestCleanupClosesStore(t *testing.T) {
	log, logBuf := logger.GetTestLogger(t)

	var closed bool
	app := newApplication(&config.Config{}, log, mocks.NewMemoryTodoListStore(),
		func(context.Context) error {
			closed = true
			return errors.New("already closed")
		})

	app.cleanup()

	assert.True(t, closed)
	logger.AssertLogContains(t, logBuf, "Error closing store connection")
	logger.AssertLogContains(t, logBuf, "Application shutdown completed")
}

func TestRunStopsWhenContextCanceled(t *testing.T) {
	log, logBuf := logger.GetTestLogger(t)

	var closed bool
	cfg := &config.Config{Server: config.ServerConfig{Port: 0}}
	app := newApplication(cfg, log, mocks.NewMemoryTodoListStore(),
		func(context.Context) error {
			closed = true
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	assert.True(t, closed)
	logger.AssertLogContains(t, logBuf, "Server shutdown completed")
}
