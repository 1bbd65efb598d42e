package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Malformed identifiers are reported the same way, since they can never
	// match a stored entity.
	ErrNotFound = errors.New("entity not found")

	// ErrPersistence is returned when the store is unreachable or an operation
	// fails on the store side. Implementations wrap the driver error alongside
	// it so both remain visible to errors.Is.
	ErrPersistence = errors.New("persistence failure")

	// ErrListNotFound indicates that the requested to-do list does not exist in the store.
	ErrListNotFound = fmt.Errorf("%w: todo list", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPersistenceError checks if the error originated from a failed store operation.
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "todo_list")
	Operation string // The operation that failed (e.g., "create", "delete_item")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewPersistenceError wraps a driver error as a persistence failure for the
// given operation. The result matches both ErrPersistence and cause.
func NewPersistenceError(entity, operation string, cause error) *StoreError {
	return NewStoreError(entity, operation, "store unavailable", fmt.Errorf("%w: %w", ErrPersistence, cause))
}
