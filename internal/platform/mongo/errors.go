package mongo

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phrazzld/todo-lists-api/internal/store"
)

const entityTodoList = "todo_list"

// MapError maps a driver error to the store error taxonomy.
// mongo.ErrNoDocuments becomes store.ErrListNotFound; every other failure is
// a persistence error that keeps the driver error reachable via errors.Is.
func MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrListNotFound
	}

	return store.NewPersistenceError(entityTodoList, operation, err)
}

// IsConnectivityError reports whether err came from the network or a timeout
// rather than from the server rejecting a command.
func IsConnectivityError(err error) bool {
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
