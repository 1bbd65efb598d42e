package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/todo-lists-api/internal/api/shared"
	"github.com/phrazzld/todo-lists-api/internal/domain"
)

// URL parameter names shared with the router.
const (
	ParamListID = "list_id"
	ParamItemID = "item_id"
)

// getPathParam extracts a required URL path parameter.
// The value is passed through unparsed; ID format is the store's concern.
func getPathParam(r *http.Request, paramName string) (string, error) {
	value := chi.URLParam(r, paramName)
	if value == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}
	return value, nil
}

// decodeAndValidate decodes the JSON body into req and validates it.
// On failure it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		message := "Invalid request format"
		if errors.Is(err, shared.ErrEmptyBody) {
			message = GetSafeErrorMessage(err)
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}
