package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/todo-lists-api/internal/domain"
	"github.com/phrazzld/todo-lists-api/internal/platform/logger"
	"github.com/phrazzld/todo-lists-api/internal/redact"
	"github.com/phrazzld/todo-lists-api/internal/store"
)

const (
	listSummariesQuery = `
		SELECT id::text, name, jsonb_array_length(items)
		FROM todo_lists`

	createListQuery = `
		INSERT INTO todo_lists (id, name, items)
		VALUES ($1, $2, '[]'::jsonb)`

	getListQuery = `
		SELECT id::text, name, items
		FROM todo_lists
		WHERE id = $1`

	deleteListQuery = `
		DELETE FROM todo_lists
		WHERE id = $1`

	createItemQuery = `
		UPDATE todo_lists
		SET items = items || jsonb_build_array(jsonb_build_object(
			'id', $2::text,
			'label', $3::text,
			'checked_state', false))
		WHERE id = $1
		RETURNING id::text, name, items`

	deleteItemQuery = `
		UPDATE todo_lists
		SET items = COALESCE(
			(SELECT jsonb_agg(elem ORDER BY pos)
			 FROM jsonb_array_elements(items) WITH ORDINALITY AS t(elem, pos)
			 WHERE elem->>'id' IS DISTINCT FROM $2::text),
			'[]'::jsonb)
		WHERE id = $1
		RETURNING id::text, name, items`

	setCheckedStateQuery = `
		UPDATE todo_lists
		SET items = COALESCE(
			(SELECT jsonb_agg(
				CASE WHEN elem->>'id' = $2::text
					THEN jsonb_set(elem, '{checked_state}', to_jsonb($3::boolean))
					ELSE elem
				END ORDER BY pos)
			 FROM jsonb_array_elements(items) WITH ORDINALITY AS t(elem, pos)),
			'[]'::jsonb)
		WHERE id = $1
		RETURNING id::text, name, items`

	pingQuery = `SELECT 1`
)

// PostgresTodoListStore implements the store.TodoListStore interface
// using a PostgreSQL table with a JSONB items column.
type PostgresTodoListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTodoListStore creates a new PostgreSQL implementation of the TodoListStore interface.
// It accepts a DBTX interface, which can be either a *sql.DB or a *sql.Tx.
// If logger is nil, a default logger will be used.
func NewPostgresTodoListStore(db store.DBTX, logger *slog.Logger) *PostgresTodoListStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTodoListStore{
		db:     db,
		logger: logger.With(slog.String("component", "todo_list_store")),
	}
}

// Ensure PostgresTodoListStore implements store.TodoListStore interface
var _ store.TodoListStore = (*PostgresTodoListStore)(nil)

// ListSummaries implements store.TodoListStore.ListSummaries.
func (s *PostgresTodoListStore) ListSummaries(ctx context.Context) iter.Seq2[*domain.ListSummary, error] {
	return func(yield func(*domain.ListSummary, error) bool) {
		log := logger.FromContextOrDefault(ctx, s.logger)

		rows, err := s.db.QueryContext(ctx, listSummariesQuery)
		if err != nil {
			log.Error("failed to query list summaries", slog.String("error", redact.Error(err)))
			yield(nil, MapError(err, "list"))
			return
		}
		defer func() {
			if cErr := rows.Close(); cErr != nil {
				log.Warn("failed to close summary rows", slog.String("error", redact.Error(cErr)))
			}
		}()

		for rows.Next() {
			var summary domain.ListSummary
			if err := rows.Scan(&summary.ID, &summary.Name, &summary.ItemCount); err != nil {
				log.Error("failed to scan list summary", slog.String("error", redact.Error(err)))
				yield(nil, MapError(err, "list"))
				return
			}
			if !yield(&summary, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			log.Error("list summaries rows failed", slog.String("error", redact.Error(err)))
			yield(nil, MapError(err, "list"))
		}
	}
}

// Create implements store.TodoListStore.Create.
func (s *PostgresTodoListStore) Create(ctx context.Context, name string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateListName(name); err != nil {
		return "", err
	}

	id := uuid.New()
	if _, err := s.db.ExecContext(ctx, createListQuery, id, name); err != nil {
		log.Error("failed to create todo list", slog.String("error", redact.Error(err)))
		return "", MapError(err, "create")
	}

	log.Info("todo list created", slog.String("list_id", id.String()))
	return id.String(), nil
}

// GetByID implements store.TodoListStore.GetByID.
func (s *PostgresTodoListStore) GetByID(ctx context.Context, id string) (*domain.ToDoList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	listID, ok := parseID(id)
	if !ok {
		log.Debug("malformed list ID", slog.String("list_id", id))
		return nil, store.ErrListNotFound
	}

	list, err := scanList(s.db.QueryRowContext(ctx, getListQuery, listID))
	if err != nil {
		return nil, s.logFailure(log, err, "get", id)
	}
	return list, nil
}

// Delete implements store.TodoListStore.Delete.
func (s *PostgresTodoListStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	listID, ok := parseID(id)
	if !ok {
		log.Debug("malformed list ID", slog.String("list_id", id))
		return false, nil
	}

	result, err := s.db.ExecContext(ctx, deleteListQuery, listID)
	if err != nil {
		return false, s.logFailure(log, err, "delete", id)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return false, s.logFailure(log, err, "delete", id)
	}

	deleted := n == 1
	log.Info("todo list delete processed",
		slog.String("list_id", id),
		slog.Bool("deleted", deleted))
	return deleted, nil
}

// CreateItem implements store.TodoListStore.CreateItem.
func (s *PostgresTodoListStore) CreateItem(ctx context.Context, listID, label string) (*domain.ToDoList, error) {
	item, err := domain.NewToDoItem(label)
	if err != nil {
		return nil, err
	}

	return s.updateList(ctx, "create_item", listID, createItemQuery, item.ID, item.Label)
}

// DeleteItem implements store.TodoListStore.DeleteItem.
func (s *PostgresTodoListStore) DeleteItem(ctx context.Context, listID, itemID string) (*domain.ToDoList, error) {
	return s.updateList(ctx, "delete_item", listID, deleteItemQuery, itemID)
}

// SetCheckedState implements store.TodoListStore.SetCheckedState.
func (s *PostgresTodoListStore) SetCheckedState(
	ctx context.Context,
	listID, itemID string,
	checked bool,
) (*domain.ToDoList, error) {
	return s.updateList(ctx, "set_checked_state", listID, setCheckedStateQuery, itemID, checked)
}

// Ping implements store.TodoListStore.Ping.
func (s *PostgresTodoListStore) Ping(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, pingQuery); err != nil {
		return MapError(err, "ping")
	}
	return nil
}

// updateList runs a single UPDATE ... RETURNING statement against the list
// and decodes the row it returns. args follow the list ID positionally.
func (s *PostgresTodoListStore) updateList(
	ctx context.Context,
	operation, listID, query string,
	args ...any,
) (*domain.ToDoList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, ok := parseID(listID)
	if !ok {
		log.Debug("malformed list ID", slog.String("list_id", listID), slog.String("operation", operation))
		return nil, store.ErrListNotFound
	}

	list, err := scanList(s.db.QueryRowContext(ctx, query, append([]any{id}, args...)...))
	if err != nil {
		return nil, s.logFailure(log, err, operation, listID)
	}

	log.Debug("todo list updated",
		slog.String("list_id", listID),
		slog.String("operation", operation),
		slog.Int("item_count", len(list.Items)))
	return list, nil
}

// logFailure maps err and logs it at a level matching its kind.
func (s *PostgresTodoListStore) logFailure(log *slog.Logger, err error, operation, listID string) error {
	mapped := MapError(err, operation)
	if store.IsNotFoundError(mapped) {
		log.Debug("todo list not found",
			slog.String("list_id", listID),
			slog.String("operation", operation))
		return mapped
	}
	if IsCheckConstraintViolation(err) {
		log.Warn("todo list rejected by check constraint",
			slog.String("list_id", listID),
			slog.String("operation", operation),
			slog.String("error", redact.Error(err)))
		return mapped
	}

	log.Error("todo list operation failed",
		slog.String("list_id", listID),
		slog.String("operation", operation),
		slog.String("error", redact.Error(err)))
	return mapped
}

// scanList reads an (id, name, items) row into a ToDoList.
func scanList(row *sql.Row) (*domain.ToDoList, error) {
	var (
		list  domain.ToDoList
		items []byte
	)
	if err := row.Scan(&list.ID, &list.Name, &items); err != nil {
		return nil, err
	}

	decoded, err := decodeItems(items)
	if err != nil {
		return nil, err
	}
	list.Items = decoded
	return &list, nil
}

// decodeItems unmarshals the JSONB items column. NULL and empty input
// decode to an empty, non-nil slice.
func decodeItems(raw []byte) ([]domain.ToDoItem, error) {
	items := []domain.ToDoItem{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if items == nil {
		items = []domain.ToDoItem{}
	}
	return items, nil
}

// parseID converts a list ID to a UUID. Malformed IDs can never match a row.
func parseID(id string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}
	return parsed, true
}
