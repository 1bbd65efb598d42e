//go:build integration

package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/todo-lists-api/internal/ciutil"
	"github.com/phrazzld/todo-lists-api/internal/config"
	"github.com/phrazzld/todo-lists-api/internal/store"
	"github.com/phrazzld/todo-lists-api/internal/store/storetest"
)

// TestMongoTodoListStoreConformance runs the shared suite against a live
// MongoDB named by TODO_TEST_MONGODB_URI or MONGODB_URI.
func TestMongoTodoListStoreConformance(t *testing.T) {
	uri := ciutil.TestMongoURI(nil)
	ciutil.RequireEnv(t, uri, ciutil.EnvTestMongoURI)

	ctx := context.Background()
	client, db, err := Connect(ctx, config.DatabaseConfig{
		Driver:                config.DriverMongo,
		URI:                   uri,
		Name:                  "todo_test",
		Collection:            "todo_lists_test",
		ConnectTimeoutSeconds: 5,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Collection("todo_lists_test").Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	s := NewMongoTodoListStore(db.Collection("todo_lists_test"), nil)
	require.NoError(t, s.Ping(ctx))

	storetest.RunTodoListStoreSuite(t, storetest.Fixture{
		NewStore:    func(t *testing.T) store.TodoListStore { return s },
		UnknownID:   primitive.NewObjectID().Hex(),
		MalformedID: "64b-not-hex",
	})
}
