package api

import (
	"time"

	"github.com/phrazzld/todo-lists-api/internal/domain"
)

// Common request/response structures

// CreateListRequest defines the payload for creating a to-do list.
type CreateListRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateListResponse is returned after a list has been created.
type CreateListResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateItemRequest defines the payload for adding an item to a list.
type CreateItemRequest struct {
	Label string `json:"label" validate:"required"`
}

// SetCheckedStateRequest defines the payload for checking or unchecking an item.
type SetCheckedStateRequest struct {
	ItemID string `json:"item_id" validate:"required"`

	// CheckedState is a pointer so an omitted value fails validation
	// instead of silently meaning false.
	CheckedState *bool `json:"checked_state" validate:"required"`
}

// ItemResponse is the wire form of a single to-do item.
type ItemResponse struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	CheckedState bool   `json:"checked_state"`
}

// ListResponse is the wire form of a full to-do list.
type ListResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []ItemResponse `json:"items"`
}

// ListSummaryResponse is one entry of the "list all" response.
type ListSummaryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
}

// DummyResponse is returned by the dummy endpoint used to smoke-test
// serialization of store-generated IDs and timestamps.
type DummyResponse struct {
	ID   string    `json:"id"`
	When time.Time `json:"when"`
}

// listToResponse converts a domain list to its wire form.
// Items is never nil so an empty list serializes as [].
func listToResponse(list *domain.ToDoList) ListResponse {
	items := make([]ItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, ItemResponse{
			ID:           item.ID,
			Label:        item.Label,
			CheckedState: item.CheckedState,
		})
	}

	return ListResponse{
		ID:    list.ID,
		Name:  list.Name,
		Items: items,
	}
}

func summaryToResponse(summary *domain.ListSummary) ListSummaryResponse {
	return ListSummaryResponse{
		ID:        summary.ID,
		Name:      summary.Name,
		ItemCount: summary.ItemCount,
	}
}
