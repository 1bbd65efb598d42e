package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ToDoItem is a single entry inside a ToDoList. It has no existence
// outside of its parent list.
type ToDoItem struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	CheckedState bool   `json:"checked_state"`
}

// NewToDoItem creates an unchecked item with a freshly generated ID.
// Returns a validation error if the label is blank.
func NewToDoItem(label string) (*ToDoItem, error) {
	item := &ToDoItem{
		ID:    uuid.NewString(),
		Label: label,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the ToDoItem has valid data.
func (i *ToDoItem) Validate() error {
	if i.ID == "" {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(i.Label) == "" {
		return NewValidationError("label", "cannot be empty", ErrEmptyContent)
	}
	return nil
}

// ToDoList is a named, ordered collection of items.
// The name is fixed at creation.
type ToDoList struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []ToDoItem `json:"items"`
}

// ValidateListName checks that a list name is usable.
func ValidateListName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyContent)
	}
	return nil
}

// Item returns the item with the given ID, or nil if the list has none.
func (l *ToDoList) Item(id string) *ToDoItem {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i]
		}
	}
	return nil
}

// Summary projects the list onto its ListSummary.
func (l *ToDoList) Summary() ListSummary {
	return ListSummary{
		ID:        l.ID,
		Name:      l.Name,
		ItemCount: len(l.Items),
	}
}

// ListSummary is the read-only projection of a ToDoList returned when
// enumerating every list. It is never persisted.
type ListSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
}
