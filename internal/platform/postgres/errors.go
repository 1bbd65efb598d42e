package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/phrazzld/todo-lists-api/internal/domain"
	"github.com/phrazzld/todo-lists-api/internal/store"
)

// PostgreSQL error codes
const (
	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// invalidTextRepresentationCode is raised when a value cannot be cast, e.g. a malformed UUID
	invalidTextRepresentationCode = "22P02"
)

const entityTodoList = "todo_list"

// MapError maps a database error to the store error taxonomy.
// sql.ErrNoRows and malformed identifiers become store.ErrListNotFound,
// check constraint violations become validation errors, and everything
// else is a persistence error that keeps the original error reachable.
func MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrListNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case invalidTextRepresentationCode:
			return store.ErrListNotFound
		case checkViolationCode:
			return domain.NewValidationError("",
				fmt.Sprintf("check constraint violation (%s)", pgErr.ConstraintName),
				domain.ErrValidation)
		}
	}

	return store.NewPersistenceError(entityTodoList, operation, err)
}

// IsCheckConstraintViolation checks if the given error is a PostgreSQL check constraint violation.
func IsCheckConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode
}

// rowsAffected returns the number of rows touched by result.
func rowsAffected(result sql.Result) (int64, error) {
	if result == nil {
		return 0, fmt.Errorf("nil result provided to rowsAffected")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
