//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-lists-api/internal/ciutil"
	"github.com/phrazzld/todo-lists-api/internal/config"
	"github.com/phrazzld/todo-lists-api/internal/store"
	"github.com/phrazzld/todo-lists-api/internal/store/storetest"
)

// TestPostgresTodoListStoreConformance runs the shared suite against a live
// PostgreSQL named by TODO_TEST_DATABASE_URL or DATABASE_URL.
func TestPostgresTodoListStoreConformance(t *testing.T) {
	url := ciutil.TestDatabaseURL(nil)
	ciutil.RequireEnv(t, url, ciutil.EnvTestDatabaseURL)

	ctx := context.Background()
	db, err := Open(ctx, config.DatabaseConfig{
		Driver:                config.DriverPostgres,
		URI:                   url,
		Collection:            "todo_lists",
		ConnectTimeoutSeconds: 5,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, nil))
	// Running twice is a no-op.
	require.NoError(t, Migrate(ctx, db, nil))

	_, err = db.ExecContext(ctx, "TRUNCATE todo_lists")
	require.NoError(t, err)

	s := NewPostgresTodoListStore(db, nil)
	require.NoError(t, s.Ping(ctx))

	storetest.RunTodoListStoreSuite(t, storetest.Fixture{
		NewStore:    func(t *testing.T) store.TodoListStore { return s },
		UnknownID:   uuid.NewString(),
		MalformedID: "0b7c8f1e-not-a-uuid",
	})
}
