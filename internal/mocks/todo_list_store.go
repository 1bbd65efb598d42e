package mocks

import (
	"context"
	"iter"
	"sync"

	"github.com/phrazzld/todo-lists-api/internal/domain"
	"github.com/phrazzld/todo-lists-api/internal/store"
)

// MockTodoListStore implements store.TodoListStore for testing
type MockTodoListStore struct {
	// Custom behavior functions
	ListSummariesFn   func(ctx context.Context) iter.Seq2[*domain.ListSummary, error]
	CreateFn          func(ctx context.Context, name string) (string, error)
	GetByIDFn         func(ctx context.Context, id string) (*domain.ToDoList, error)
	DeleteFn          func(ctx context.Context, id string) (bool, error)
	CreateItemFn      func(ctx context.Context, listID, label string) (*domain.ToDoList, error)
	DeleteItemFn      func(ctx context.Context, listID, itemID string) (*domain.ToDoList, error)
	SetCheckedStateFn func(ctx context.Context, listID, itemID string, checked bool) (*domain.ToDoList, error)
	PingFn            func(ctx context.Context) error

	// Default response values
	Summaries []domain.ListSummary
	List      *domain.ToDoList
	CreatedID string
	Deleted   bool
	Err       error

	// Call tracking for verification
	mu    sync.Mutex
	Calls []MockCall
}

// MockCall records a single call made to MockTodoListStore.
type MockCall struct {
	Method  string
	ListID  string
	ItemID  string
	Name    string
	Label   string
	Checked bool
}

var _ store.TodoListStore = (*MockTodoListStore)(nil)

func (m *MockTodoListStore) record(call MockCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

// CallsTo returns the recorded calls to the named method.
func (m *MockTodoListStore) CallsTo(method string) []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	var calls []MockCall
	for _, c := range m.Calls {
		if c.Method == method {
			calls = append(calls, c)
		}
	}
	return calls
}

// ListSummaries implements store.TodoListStore.
// By default it yields Summaries, or Err once if set.
func (m *MockTodoListStore) ListSummaries(ctx context.Context) iter.Seq2[*domain.ListSummary, error] {
	m.record(MockCall{Method: "ListSummaries"})

	if m.ListSummariesFn != nil {
		return m.ListSummariesFn(ctx)
	}

	return func(yield func(*domain.ListSummary, error) bool) {
		if m.Err != nil {
			yield(nil, m.Err)
			return
		}
		for i := range m.Summaries {
			summary := m.Summaries[i]
			if !yield(&summary, nil) {
				return
			}
		}
	}
}

// Create implements store.TodoListStore.
func (m *MockTodoListStore) Create(ctx context.Context, name string) (string, error) {
	m.record(MockCall{Method: "Create", Name: name})

	if m.CreateFn != nil {
		return m.CreateFn(ctx, name)
	}
	return m.CreatedID, m.Err
}

// GetByID implements store.TodoListStore.
func (m *MockTodoListStore) GetByID(ctx context.Context, id string) (*domain.ToDoList, error) {
	m.record(MockCall{Method: "GetByID", ListID: id})

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.List, m.Err
}

// Delete implements store.TodoListStore.
func (m *MockTodoListStore) Delete(ctx context.Context, id string) (bool, error) {
	m.record(MockCall{Method: "Delete", ListID: id})

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Deleted, m.Err
}

// CreateItem implements store.TodoListStore.
func (m *MockTodoListStore) CreateItem(ctx context.Context, listID, label string) (*domain.ToDoList, error) {
	m.record(MockCall{Method: "CreateItem", ListID: listID, Label: label})

	if m.CreateItemFn != nil {
		return m.CreateItemFn(ctx, listID, label)
	}
	return m.List, m.Err
}

// DeleteItem implements store.TodoListStore.
func (m *MockTodoListStore) DeleteItem(ctx context.Context, listID, itemID string) (*domain.ToDoList, error) {
	m.record(MockCall{Method: "DeleteItem", ListID: listID, ItemID: itemID})

	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, listID, itemID)
	}
	return m.List, m.Err
}

// SetCheckedState implements store.TodoListStore.
func (m *MockTodoListStore) SetCheckedState(
	ctx context.Context,
	listID, itemID string,
	checked bool,
) (*domain.ToDoList, error) {
	m.record(MockCall{Method: "SetCheckedState", ListID: listID, ItemID: itemID, Checked: checked})

	if m.SetCheckedStateFn != nil {
		return m.SetCheckedStateFn(ctx, listID, itemID, checked)
	}
	return m.List, m.Err
}

// Ping implements store.TodoListStore.
func (m *MockTodoListStore) Ping(ctx context.Context) error {
	m.record(MockCall{Method: "Ping"})

	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return m.Err
}
