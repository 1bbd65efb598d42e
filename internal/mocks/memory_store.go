package mocks

import (
	"context"
	"iter"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/todo-lists-api/internal/domain"
	"github.com/phrazzld/todo-lists-api/internal/store"
)

// MemoryTodoListStore is an in-memory store.TodoListStore. Every method
// holds a single mutex for its whole duration, which gives the same
// per-list atomicity the database backends provide. List IDs are UUIDs.
type MemoryTodoListStore struct {
	mu    sync.Mutex
	order []string
	lists map[string]*domain.ToDoList

	// PingErr is returned by Ping when set.
	PingErr error
}

// NewMemoryTodoListStore returns an empty in-memory store.
func NewMemoryTodoListStore() *MemoryTodoListStore {
	return &MemoryTodoListStore{lists: make(map[string]*domain.ToDoList)}
}

var _ store.TodoListStore = (*MemoryTodoListStore)(nil)

// ListSummaries implements store.TodoListStore. Each range takes a fresh
// snapshot in insertion order.
func (s *MemoryTodoListStore) ListSummaries(ctx context.Context) iter.Seq2[*domain.ListSummary, error] {
	return func(yield func(*domain.ListSummary, error) bool) {
		s.mu.Lock()
		snapshot := make([]domain.ListSummary, 0, len(s.order))
		for _, id := range s.order {
			snapshot = append(snapshot, s.lists[id].Summary())
		}
		s.mu.Unlock()

		for i := range snapshot {
			if !yield(&snapshot[i], nil) {
				return
			}
		}
	}
}

// Create implements store.TodoListStore.
func (s *MemoryTodoListStore) Create(ctx context.Context, name string) (string, error) {
	if err := domain.ValidateListName(name); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.lists[id] = &domain.ToDoList{ID: id, Name: name, Items: []domain.ToDoItem{}}
	s.order = append(s.order, id)
	return id, nil
}

// GetByID implements store.TodoListStore.
func (s *MemoryTodoListStore) GetByID(ctx context.Context, id string) (*domain.ToDoList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[id]
	if !ok {
		return nil, store.ErrListNotFound
	}
	return cloneList(list), nil
}

// Delete implements store.TodoListStore.
func (s *MemoryTodoListStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[id]; !ok {
		return false, nil
	}
	delete(s.lists, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// CreateItem implements store.TodoListStore.
func (s *MemoryTodoListStore) CreateItem(ctx context.Context, listID, label string) (*domain.ToDoList, error) {
	item, err := domain.NewToDoItem(label)
	if err != nil {
		return nil, err
	}

	return s.mutate(listID, func(list *domain.ToDoList) {
		list.Items = append(list.Items, *item)
	})
}

// DeleteItem implements store.TodoListStore.
func (s *MemoryTodoListStore) DeleteItem(ctx context.Context, listID, itemID string) (*domain.ToDoList, error) {
	return s.mutate(listID, func(list *domain.ToDoList) {
		kept := list.Items[:0]
		for _, item := range list.Items {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		list.Items = kept
	})
}

// SetCheckedState implements store.TodoListStore.
func (s *MemoryTodoListStore) SetCheckedState(
	ctx context.Context,
	listID, itemID string,
	checked bool,
) (*domain.ToDoList, error) {
	return s.mutate(listID, func(list *domain.ToDoList) {
		if item := list.Item(itemID); item != nil {
			item.CheckedState = checked
		}
	})
}

// Ping implements store.TodoListStore.
func (s *MemoryTodoListStore) Ping(ctx context.Context) error {
	return s.PingErr
}

func (s *MemoryTodoListStore) mutate(listID string, fn func(*domain.ToDoList)) (*domain.ToDoList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[listID]
	if !ok {
		return nil, store.ErrListNotFound
	}
	fn(list)
	return cloneList(list), nil
}

func cloneList(list *domain.ToDoList) *domain.ToDoList {
	items := make([]domain.ToDoItem, len(list.Items))
	copy(items, list.Items)
	return &domain.ToDoList{ID: list.ID, Name: list.Name, Items: items}
}
