// Package mocks provides centralized test doubles for the store layer.
//
// MockTodoListStore is a function-field mock with call tracking for tests
// that script individual store responses. MemoryTodoListStore is a working
// in-memory store for tests that need real list semantics without a database.
//
// Usage:
//
//	import "github.com/phrazzld/todo-lists-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    mockStore := &mocks.MockTodoListStore{
//	        GetByIDFn: func(ctx context.Context, id string) (*domain.ToDoList, error) {
//	            return nil, store.ErrListNotFound
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
