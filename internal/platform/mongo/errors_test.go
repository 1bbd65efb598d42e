package mongo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phrazzld/todo-lists-api/internal/store"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, MapError(nil, "get"))

	assert.ErrorIs(t, MapError(mongo.ErrNoDocuments, "get"), store.ErrListNotFound)

	cause := errors.New("connection reset")
	err := MapError(cause, "create")
	assert.ErrorIs(t, err, store.ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.False(t, store.IsNotFoundError(err))

	var storeErr *store.StoreError
	if assert.ErrorAs(t, err, &storeErr) {
		assert.Equal(t, "create", storeErr.Operation)
		assert.Equal(t, "todo_list", storeErr.Entity)
	}
}
