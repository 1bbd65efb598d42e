package mocks

import (
	"testing"

	"github.com/google/uuid"

	"github.com/phrazzld/todo-lists-api/internal/store"
	"github.com/phrazzld/todo-lists-api/internal/store/storetest"
)

func TestMemoryTodoListStoreConformance(t *testing.T) {
	storetest.RunTodoListStoreSuite(t, storetest.Fixture{
		NewStore:    func(t *testing.T) store.TodoListStore { return NewMemoryTodoListStore() },
		UnknownID:   uuid.NewString(),
		MalformedID: "not-a-uuid",
	})
}
