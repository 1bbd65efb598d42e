package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-lists-api/internal/domain"
	"github.com/phrazzld/todo-lists-api/internal/platform/logger"
	"github.com/phrazzld/todo-lists-api/internal/store"
)

const testListID = "0b7c8f1e-3f0e-4d57-9a59-0a1f6f0c9e11"

func newMockStore(t *testing.T) (*PostgresTodoListStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewPostgresTodoListStore(db, nil), mock
}

func listRows(items string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "items"}).
		AddRow(testListID, "Groceries", []byte(items))
}

func TestCreate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO todo_lists (id, name, items)")).
		WithArgs(sqlmock.AnyArg(), "Groceries").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := s.Create(context.Background(), "Groceries")
	require.NoError(t, err)

	_, ok := parseID(id)
	assert.True(t, ok, "id %q should be a UUID", id)
}

func TestCreate_InsertFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO todo_lists")).
		WillReturnError(errors.New("connection reset by peer"))

	_, err := s.Create(context.Background(), "Groceries")
	assert.ErrorIs(t, err, store.ErrPersistence)
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id::text, name, items")).
			WithArgs(testListID).
			WillReturnRows(listRows(`[{"id":"a","label":"Milk","checked_state":true}]`))

		list, err := s.GetByID(context.Background(), testListID)
		require.NoError(t, err)
		assert.Equal(t, &domain.ToDoList{
			ID:    testListID,
			Name:  "Groceries",
			Items: []domain.ToDoItem{{ID: "a", Label: "Milk", CheckedState: true}},
		}, list)
	})

	t.Run("missing", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id::text, name, items")).
			WithArgs(testListID).
			WillReturnError(sql.ErrNoRows)

		_, err := s.GetByID(context.Background(), testListID)
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "removed", affected: 1, want: true},
		{name: "absent", affected: 0, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newMockStore(t)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todo_lists")).
				WithArgs(testListID).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			deleted, err := s.Delete(context.Background(), testListID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, deleted)
		})
	}
}

func TestCreateItem(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SET items = items || jsonb_build_array")).
		WithArgs(testListID, sqlmock.AnyArg(), "Milk").
		WillReturnRows(listRows(`[{"id":"generated","label":"Milk","checked_state":false}]`))

	list, err := s.CreateItem(context.Background(), testListID, "Milk")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Milk", list.Items[0].Label)
	assert.False(t, list.Items[0].CheckedState)
}

func TestCreateItem_MissingList(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE todo_lists")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "items"}))

	_, err := s.CreateItem(context.Background(), testListID, "Milk")
	assert.ErrorIs(t, err, store.ErrListNotFound)
}

func TestCreateItem_CheckViolationLogsWarning(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	log, logBuf := logger.GetTestLogger(t)
	s := NewPostgresTodoListStore(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("jsonb_build_array")).
		WillReturnError(&pgconn.PgError{Code: checkViolationCode, ConstraintName: "todo_lists_items_check"})

	_, err = s.CreateItem(context.Background(), testListID, "Milk")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, store.IsPersistenceError(err))
	logger.AssertLogContains(t, logBuf, "todo list rejected by check constraint")
	logger.AssertLogField(t, logBuf, "level", "WARN")
	assert.NotContains(t, logBuf.String(), "todo list operation failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteItem(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("IS DISTINCT FROM $2::text")).
		WithArgs(testListID, "a").
		WillReturnRows(listRows(`[]`))

	list, err := s.DeleteItem(context.Background(), testListID, "a")
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.NotNil(t, list.Items)
}

func TestSetCheckedState(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("jsonb_set(elem, '{checked_state}', to_jsonb($3::boolean))")).
		WithArgs(testListID, "a", true).
		WillReturnRows(listRows(`[{"id":"a","label":"Milk","checked_state":true}]`))

	list, err := s.SetCheckedState(context.Background(), testListID, "a", true)
	require.NoError(t, err)
	assert.True(t, list.Item("a").CheckedState)
}

func TestListSummaries(t *testing.T) {
	s, mock := newMockStore(t)

	for range 2 {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id::text, name, jsonb_array_length(items)")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "count"}).
				AddRow(testListID, "Groceries", int64(3)).
				AddRow("6f0c9e11-3f0e-4d57-9a59-0a1f0b7c8f1e", "Chores", int64(0)))
	}

	seq := s.ListSummaries(context.Background())

	// Ranging twice re-runs the query.
	for range 2 {
		summaries, err := store.CollectSummaries(seq)
		require.NoError(t, err)
		assert.Equal(t, []domain.ListSummary{
			{ID: testListID, Name: "Groceries", ItemCount: 3},
			{ID: "6f0c9e11-3f0e-4d57-9a59-0a1f0b7c8f1e", Name: "Chores", ItemCount: 0},
		}, summaries)
	}
}

func TestListSummaries_QueryFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("jsonb_array_length")).
		WillReturnError(errors.New("server closed the connection unexpectedly"))

	var errs int
	for summary, err := range s.ListSummaries(context.Background()) {
		assert.Nil(t, summary)
		assert.ErrorIs(t, err, store.ErrPersistence)
		errs++
	}
	assert.Equal(t, 1, errs)
}

func TestListSummaries_ScanFailureIsLogged(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	log, logBuf := logger.GetTestLogger(t)
	s := NewPostgresTodoListStore(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("jsonb_array_length")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "count"}).
			AddRow(testListID, "Groceries", "not-a-number"))

	var errs int
	for summary, err := range s.ListSummaries(context.Background()) {
		assert.Nil(t, summary)
		assert.ErrorIs(t, err, store.ErrPersistence)
		errs++
	}
	assert.Equal(t, 1, errs)
	logger.AssertLogContains(t, logBuf, "failed to scan list summary")
	logger.AssertLogField(t, logBuf, "level", "ERROR")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("SELECT 1")).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, s.Ping(context.Background()))

	mock.ExpectExec(regexp.QuoteMeta("SELECT 1")).WillReturnError(errors.New("dial tcp: refused"))
	assert.ErrorIs(t, s.Ping(context.Background()), store.ErrPersistence)
}
