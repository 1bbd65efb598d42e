package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phrazzld/todo-lists-api/internal/domain"
)

// Field names of the persisted layout.
const (
	fieldID           = "_id"
	fieldName         = "name"
	fieldItems        = "items"
	fieldItemID       = "id"
	fieldCheckedState = "checked_state"
	fieldItemCount    = "item_count"
)

type itemDocument struct {
	ID           string `bson:"id"`
	Label        string `bson:"label"`
	CheckedState bool   `bson:"checked_state"`
}

type listDocument struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Items []itemDocument     `bson:"items"`
}

type summaryDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	ItemCount int                `bson:"item_count"`
}

func itemToDocument(item *domain.ToDoItem) itemDocument {
	return itemDocument{
		ID:           item.ID,
		Label:        item.Label,
		CheckedState: item.CheckedState,
	}
}

func (d *listDocument) toDomain() *domain.ToDoList {
	items := make([]domain.ToDoItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domain.ToDoItem{
			ID:           it.ID,
			Label:        it.Label,
			CheckedState: it.CheckedState,
		})
	}
	return &domain.ToDoList{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Items: items,
	}
}

func (d *summaryDocument) toDomain() *domain.ListSummary {
	return &domain.ListSummary{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		ItemCount: d.ItemCount,
	}
}
