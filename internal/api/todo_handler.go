package api

import (
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/todo-lists-api/internal/api/shared"
	"github.com/phrazzld/todo-lists-api/internal/platform/logger"
	"github.com/phrazzld/todo-lists-api/internal/store"
)

// TodoHandler handles to-do list HTTP requests
type TodoHandler struct {
	store  store.TodoListStore
	logger *slog.Logger
	now    func() time.Time
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoStore store.TodoListStore, logger *slog.Logger) *TodoHandler {
	if todoStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("todoStore cannot be nil for TodoHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TodoHandler")
	}

	return &TodoHandler{
		store:  todoStore,
		logger: logger.With(slog.String("component", "todo_handler")),
		now:    time.Now,
	}
}

// ListLists handles GET /api/lists requests
func (h *TodoHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	response := make([]ListSummaryResponse, 0)
	for summary, err := range h.store.ListSummaries(r.Context()) {
		if err != nil {
			HandleAPIError(w, r, err, "Failed to list to-do lists")
			return
		}
		response = append(response, summaryToResponse(summary))
	}

	log.Debug("listed to-do lists", slog.Int("count", len(response)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateList handles POST /api/lists requests
func (h *TodoHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.store.Create(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create to-do list")
		return
	}

	log.Debug("created to-do list", slog.String("list_id", id))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateListResponse{
		ID:   id,
		Name: req.Name,
	})
}

// GetList handles GET /api/lists/{list_id} requests
func (h *TodoHandler) GetList(w http.ResponseWriter, r *http.Request) {
	listID, err := getPathParam(r, ParamListID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	list, err := h.store.GetByID(r.Context(), listID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get to-do list")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listToResponse(list))
}

// DeleteList handles DELETE /api/lists/{list_id} requests.
// The body is a bare JSON boolean reporting whether a list was removed.
func (h *TodoHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	listID, err := getPathParam(r, ParamListID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	deleted, err := h.store.Delete(r.Context(), listID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete to-do list")
		return
	}

	log.Debug("delete to-do list processed",
		slog.String("list_id", listID),
		slog.Bool("deleted", deleted))
	shared.RespondWithJSON(w, r, http.StatusOK, deleted)
}

// CreateItem handles POST /api/lists/{list_id}/items requests
func (h *TodoHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	listID, err := getPathParam(r, ParamListID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	list, err := h.store.CreateItem(r.Context(), listID, req.Label)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, listToResponse(list))
}

// DeleteItem handles DELETE /api/lists/{list_id}/items/{item_id} requests
func (h *TodoHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	listID, err := getPathParam(r, ParamListID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	itemID, err := getPathParam(r, ParamItemID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	list, err := h.store.DeleteItem(r.Context(), listID, itemID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listToResponse(list))
}

// SetCheckedState handles PATCH /api/lists/{list_id}/checked_state requests
func (h *TodoHandler) SetCheckedState(w http.ResponseWriter, r *http.Request) {
	listID, err := getPathParam(r, ParamListID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req SetCheckedStateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	list, err := h.store.SetCheckedState(r.Context(), listID, req.ItemID, *req.CheckedState)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listToResponse(list))
}

// Dummy handles GET /api/dummy requests. It touches no storage and returns
// a freshly generated ObjectID with the current server time.
func (h *TodoHandler) Dummy(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, DummyResponse{
		ID:   primitive.NewObjectID().Hex(),
		When: h.now(),
	})
}
