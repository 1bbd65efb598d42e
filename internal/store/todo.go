package store

import (
	"context"
	"iter"

	"github.com/phrazzld/todo-lists-api/internal/domain"
)

// TodoListStore defines the interface for to-do list persistence.
// Each method maps to exactly one atomic store-side operation; none of them
// reads a document, modifies it in memory and writes it back.
type TodoListStore interface {
	// ListSummaries returns a lazy sequence with one summary per stored list.
	// Every range over the sequence re-queries the store. A failed query is
	// yielded once as (nil, err) and ends the sequence.
	ListSummaries(ctx context.Context) iter.Seq2[*domain.ListSummary, error]

	// Create inserts a new list with the given name and no items.
	// Returns the ID assigned by the store.
	Create(ctx context.Context, name string) (string, error)

	// GetByID retrieves a list by its ID.
	// Returns ErrListNotFound if no list matches or the ID is malformed.
	GetByID(ctx context.Context, id string) (*domain.ToDoList, error)

	// Delete removes a list together with its items.
	// Returns true if exactly one list was removed. A malformed ID is
	// reported as false, not as an error.
	Delete(ctx context.Context, id string) (bool, error)

	// CreateItem appends a new unchecked item to the list and returns the
	// updated list. Returns ErrListNotFound if the list does not exist.
	CreateItem(ctx context.Context, listID, label string) (*domain.ToDoList, error)

	// DeleteItem removes the item from the list and returns the updated list.
	// An unknown item ID leaves the list unchanged and is not an error.
	// Returns ErrListNotFound if the list does not exist.
	DeleteItem(ctx context.Context, listID, itemID string) (*domain.ToDoList, error)

	// SetCheckedState sets the checked flag on the item and returns the
	// updated list. An unknown item ID leaves the list unchanged and is not
	// an error. Returns ErrListNotFound if the list does not exist.
	SetCheckedState(ctx context.Context, listID, itemID string, checked bool) (*domain.ToDoList, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}

// CollectSummaries drains a summary sequence into a slice, stopping at the
// first error.
func CollectSummaries(seq iter.Seq2[*domain.ListSummary, error]) ([]domain.ListSummary, error) {
	summaries := make([]domain.ListSummary, 0)
	for summary, err := range seq {
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}
