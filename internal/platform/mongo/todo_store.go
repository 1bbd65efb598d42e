package mongo

import (
	"context"
	"iter"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phrazzld/todo-lists-api/internal/domain"
	"github.com/phrazzld/todo-lists-api/internal/platform/logger"
	"github.com/phrazzld/todo-lists-api/internal/redact"
	"github.com/phrazzld/todo-lists-api/internal/store"
)

// MongoTodoListStore implements the store.TodoListStore interface
// using a MongoDB collection as the storage backend.
type MongoTodoListStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoTodoListStore creates a new MongoDB implementation of the TodoListStore interface.
// The collection's client is owned by the caller.
// If logger is nil, a default logger will be used.
func NewMongoTodoListStore(coll *mongo.Collection, logger *slog.Logger) *MongoTodoListStore {
	if coll == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("collection cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MongoTodoListStore{
		coll:   coll,
		logger: logger.With(slog.String("component", "todo_list_store")),
	}
}

// Ensure MongoTodoListStore implements store.TodoListStore interface
var _ store.TodoListStore = (*MongoTodoListStore)(nil)

// ListSummaries implements store.TodoListStore.ListSummaries.
// Each iteration runs a fresh aggregation that projects the name and counts
// the embedded items server-side.
func (s *MongoTodoListStore) ListSummaries(ctx context.Context) iter.Seq2[*domain.ListSummary, error] {
	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.D{
			{Key: fieldName, Value: 1},
			{Key: fieldItemCount, Value: bson.D{
				{Key: "$size", Value: bson.D{
					{Key: "$ifNull", Value: bson.A{"$" + fieldItems, bson.A{}}},
				}},
			}},
		}}},
	}

	return func(yield func(*domain.ListSummary, error) bool) {
		log := logger.FromContextOrDefault(ctx, s.logger)

		cursor, err := s.coll.Aggregate(ctx, pipeline)
		if err != nil {
			log.Error("failed to query list summaries", slog.String("error", redact.Error(err)))
			yield(nil, MapError(err, "list"))
			return
		}
		defer func() {
			if cErr := cursor.Close(context.WithoutCancel(ctx)); cErr != nil {
				log.Warn("failed to close summary cursor", slog.String("error", redact.Error(cErr)))
			}
		}()

		for cursor.Next(ctx) {
			var doc summaryDocument
			if err := cursor.Decode(&doc); err != nil {
				log.Error("failed to decode list summary", slog.String("error", redact.Error(err)))
				yield(nil, MapError(err, "list"))
				return
			}
			if !yield(doc.toDomain(), nil) {
				return
			}
		}

		if err := cursor.Err(); err != nil {
			log.Error("list summaries cursor failed", slog.String("error", redact.Error(err)))
			yield(nil, MapError(err, "list"))
		}
	}
}

// Create implements store.TodoListStore.Create.
func (s *MongoTodoListStore) Create(ctx context.Context, name string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateListName(name); err != nil {
		return "", err
	}

	doc := listDocument{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Items: []itemDocument{},
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		log.Error("failed to create todo list",
			slog.String("error", redact.Error(err)),
			slog.Bool("connectivity", IsConnectivityError(err)))
		return "", MapError(err, "create")
	}

	id := doc.ID.Hex()
	log.Info("todo list created", slog.String("list_id", id))
	return id, nil
}

// GetByID implements store.TodoListStore.GetByID.
func (s *MongoTodoListStore) GetByID(ctx context.Context, id string) (*domain.ToDoList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, ok := parseID(id)
	if !ok {
		log.Debug("malformed list ID", slog.String("list_id", id))
		return nil, store.ErrListNotFound
	}

	var doc listDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: fieldID, Value: oid}}).Decode(&doc)
	if err != nil {
		return nil, s.logFailure(log, err, "get", id)
	}

	return doc.toDomain(), nil
}

// Delete implements store.TodoListStore.Delete.
func (s *MongoTodoListStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, ok := parseID(id)
	if !ok {
		log.Debug("malformed list ID", slog.String("list_id", id))
		return false, nil
	}

	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: fieldID, Value: oid}})
	if err != nil {
		return false, s.logFailure(log, err, "delete", id)
	}

	deleted := res.DeletedCount == 1
	log.Info("todo list delete processed",
		slog.String("list_id", id),
		slog.Bool("deleted", deleted))
	return deleted, nil
}

// CreateItem implements store.TodoListStore.CreateItem.
func (s *MongoTodoListStore) CreateItem(ctx context.Context, listID, label string) (*domain.ToDoList, error) {
	item, err := domain.NewToDoItem(label)
	if err != nil {
		return nil, err
	}

	update := bson.D{{Key: "$push", Value: bson.D{
		{Key: fieldItems, Value: itemToDocument(item)},
	}}}

	return s.updateList(ctx, "create_item", listID, update)
}

// DeleteItem implements store.TodoListStore.DeleteItem.
func (s *MongoTodoListStore) DeleteItem(ctx context.Context, listID, itemID string) (*domain.ToDoList, error) {
	update := bson.D{{Key: "$pull", Value: bson.D{
		{Key: fieldItems, Value: bson.D{{Key: fieldItemID, Value: itemID}}},
	}}}

	return s.updateList(ctx, "delete_item", listID, update)
}

// SetCheckedState implements store.TodoListStore.SetCheckedState.
// The array filter leaves the document untouched when no item matches, so an
// unknown item ID still returns the list.
func (s *MongoTodoListStore) SetCheckedState(
	ctx context.Context,
	listID, itemID string,
	checked bool,
) (*domain.ToDoList, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: fieldItems + ".$[item]." + fieldCheckedState, Value: checked},
	}}}
	filters := options.ArrayFilters{
		Filters: []interface{}{bson.D{{Key: "item." + fieldItemID, Value: itemID}}},
	}

	return s.updateList(ctx, "set_checked_state", listID, update, filters)
}

// Ping implements store.TodoListStore.Ping.
func (s *MongoTodoListStore) Ping(ctx context.Context) error {
	if err := ping(ctx, s.coll.Database()); err != nil {
		return MapError(err, "ping")
	}
	return nil
}

// updateList applies update to the list atomically and returns the document
// as it is after the update.
func (s *MongoTodoListStore) updateList(
	ctx context.Context,
	operation, listID string,
	update bson.D,
	arrayFilters ...options.ArrayFilters,
) (*domain.ToDoList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, ok := parseID(listID)
	if !ok {
		log.Debug("malformed list ID", slog.String("list_id", listID), slog.String("operation", operation))
		return nil, store.ErrListNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	for _, af := range arrayFilters {
		opts.SetArrayFilters(af)
	}

	var doc listDocument
	err := s.coll.FindOneAndUpdate(ctx, bson.D{{Key: fieldID, Value: oid}}, update, opts).Decode(&doc)
	if err != nil {
		return nil, s.logFailure(log, err, operation, listID)
	}

	log.Debug("todo list updated",
		slog.String("list_id", listID),
		slog.String("operation", operation),
		slog.Int("item_count", len(doc.Items)))
	return doc.toDomain(), nil
}

// logFailure maps err and logs it at a level matching its kind.
func (s *MongoTodoListStore) logFailure(log *slog.Logger, err error, operation, listID string) error {
	mapped := MapError(err, operation)
	if store.IsNotFoundError(mapped) {
		log.Debug("todo list not found",
			slog.String("list_id", listID),
			slog.String("operation", operation))
		return mapped
	}

	log.Error("todo list operation failed",
		slog.String("list_id", listID),
		slog.String("operation", operation),
		slog.String("error", redact.Error(err)),
		slog.Bool("connectivity", IsConnectivityError(err)))
	return mapped
}

// parseID converts a hex list ID to an ObjectID. Malformed IDs can never
// match a document.
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
