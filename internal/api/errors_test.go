package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/todo-lists-api/internal/api/shared"
	"github.com/phrazzld/todo-lists-api/internal/domain"
	"github.com/phrazzld/todo-lists-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"list not found", store.ErrListNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", store.ErrNotFound), http.StatusNotFound},
		{"validation sentinel", domain.ErrValidation, http.StatusBadRequest},
		{"validation error", domain.NewValidationError("name", "cannot be empty", domain.ErrEmptyContent), http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"persistence", store.NewPersistenceError("todo_list", "create", errors.New("timeout")), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"list not found", store.ErrListNotFound, "List not found"},
		{"generic not found", store.ErrNotFound, "Resource not found"},
		{"validation error", domain.NewValidationError("label", "cannot be empty", domain.ErrEmptyContent), "label cannot be empty"},
		{"validation sentinel", domain.ErrValidation, "Validation error"},
		{"persistence", store.NewPersistenceError("todo_list", "get", errors.New("mongodb://u:p@h failed")), "Service temporarily unavailable"},
		{"unknown", errors.New("secret internals"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := shared.ValidateRequest(SetCheckedStateRequest{ItemID: "x"})
	assert.Equal(t, "Invalid checked_state: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}

func TestHandleAPIError(t *testing.T) {
	t.Run("default message for unknown errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleAPIError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"), "Failed to get to-do list")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to get to-do list"}`, rec.Body.String())
	})

	t.Run("classified errors keep their message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleAPIError(rec, httptest.NewRequest(http.MethodGet, "/", nil), store.ErrListNotFound, "ignored")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"List not found"}`, rec.Body.String())
	})
}
