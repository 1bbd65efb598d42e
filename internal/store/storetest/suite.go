package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/phrazzld/todo-lists-api/internal/domain"
	"github.com/phrazzld/todo-lists-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture describes how to exercise one backend.
type Fixture struct {
	// NewStore returns a store ready for use. It may share state across calls.
	NewStore func(t *testing.T) store.TodoListStore
	// UnknownID is well formed for the backend but never assigned to a list.
	UnknownID string
	// MalformedID can never be parsed as an ID by the backend.
	MalformedID string
}

// RunTodoListStoreSuite runs the full conformance suite against the fixture.
func RunTodoListStoreSuite(t *testing.T, f Fixture) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s store.TodoListStore, f Fixture)
	}{
		{"CreateThenGet", testCreateThenGet},
		{"CreateRejectsBlankName", testCreateRejectsBlankName},
		{"CreateItemAppends", testCreateItemAppends},
		{"SetCheckedStateIsIdempotent", testSetCheckedStateIsIdempotent},
		{"SetCheckedStateUnknownItem", testSetCheckedStateUnknownItem},
		{"DeleteItem", testDeleteItem},
		{"DeleteUnknownItemLeavesListUnchanged", testDeleteUnknownItem},
		{"DeleteListRemovesIt", testDeleteList},
		{"UnknownList", testUnknownList},
		{"MalformedIDs", testMalformedIDs},
		{"ListSummariesIsRestartable", testListSummaries},
		{"ConcurrentCreateItemLosesNothing", testConcurrentCreateItem},
		{"GroceriesWalkthrough", testGroceriesWalkthrough},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, f.NewStore(t), f)
		})
	}
}

func mustCreate(t *testing.T, s store.TodoListStore, name string) string {
	t.Helper()
	id, err := s.Create(context.Background(), name)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	t.Cleanup(func() {
		_, _ = s.Delete(context.Background(), id)
	})
	return id
}

func testCreateThenGet(t *testing.T, s store.TodoListStore, _ Fixture) {
	ctx := context.Background()
	id := mustCreate(t, s, "Groceries")

	list, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, list.ID)
	assert.Equal(t, "Groceries", list.Name)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
}

func testCreateRejectsBlankName(t *testing.T, s store.TodoListStore, _ Fixture) {
	_, err := s.Create(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func testCreateItemAppends(t *testing.T, s store.TodoListStore, _ Fixture) {
	ctx := context.Background()
	id := mustCreate(t, s, "Chores")

	first, err := s.CreateItem(ctx, id, "Dishes")
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	second, err := s.CreateItem(ctx, id, "Laundry")
	require.NoError(t, err)
	require.Len(t, second.Items, 2)

	assert.Equal(t, "Dishes", second.Items[0].Label)
	assert.Equal(t, "Laundry", second.Items[1].Label)
	assert.False(t, second.Items[1].CheckedState)
	assert.NotEqual(t, second.Items[0].ID, second.Items[1].ID)

	_, err = s.CreateItem(ctx, id, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func testSetCheckedStateIsIdempotent(t *testing.T, s store.TodoListStore, _ Fixture) {
	ctx := context.Background()
	id := mustCreate(t, s, "Errands")

	list, err := s.CreateItem(ctx, id, "Post office")
	require.NoError(t, err)
	_, err = s.CreateItem(ctx, id, "Bank")
	require.NoError(t, err)
	itemID := list.Items[0].ID

	once, err := s.SetCheckedState(ctx, id, itemID, true)
	require.NoError(t, err)
	twice, err := s.SetCheckedState(ctx, id, itemID, true)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.True(t, twice.Item(itemID).CheckedState)
	assert.False(t, twice.Items[1].CheckedState, "other items must be untouched")

	cleared, err := s.SetCheckedState(ctx, id, itemID, false)
	require.NoError(t, err)
	assert.False(t, cleared.Item(itemID).CheckedState)
}

func testSetCheckedStateUnknownItem(t *testing.T, s store.TodoListStore, _ Fixture) {
	ctx := context.Background()
	id := mustCreate(t, s, "Errands")

	before, err := s.CreateItem(ctx, id, "Bank")
	require.NoError(t, err)

	after, err := s.SetCheckedState(ctx, id, "no-such-item", true)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func testDeleteItem(t *testing.T, s store.TodoListStore, _ Fixture) {
	ctx := context.Background()
	id := mustCreate(t, s, "Packing")

	_, err := s.CreateItem(ctx, id, "Passport")
	require.NoError(t, err)
	list, err := s.CreateItem(ctx, id, "Charger")
	require.NoError(t, err)

	updated, err := s.DeleteItem(ctx, id, list.Items[0].ID)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Charger", updated.Items[0].Label)
}

func testDeleteUnknownItem(t *testing.T, s store.TodoListStore, _ Fixture) {
	ctx := context.Background()
	id := mustCreate(t, s, "Packing")

	before, err := s.CreateItem(ctx, id, "Passport")
	require.NoError(t, err)

	after, err := s.DeleteItem(ctx, id, "no-such-item")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func testDeleteList(t *testing.T, s store.TodoListStore, _ Fixture) {
	ctx := context.Background()
	id, err := s.Create(ctx, "Temporary")
	require.NoError(t, err)

	deleted, err := s.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	again, err := s.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, again)

	_, err = s.GetByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrListNotFound)

	summaries, err := store.CollectSummaries(s.ListSummaries(ctx))
	require.NoError(t, err)
	for _, summary := range summaries {
		assert.NotEqual(t, id, summary.ID)
	}
}

func testUnknownList(t *testing.T, s store.TodoListStore, f Fixture) {
	ctx := context.Background()

	_, err := s.GetByID(ctx, f.UnknownID)
	assert.ErrorIs(t, err, store.ErrListNotFound)

	_, err = s.CreateItem(ctx, f.UnknownID, "Milk")
	assert.ErrorIs(t, err, store.ErrListNotFound)

	_, err = s.DeleteItem(ctx, f.UnknownID, "item")
	assert.ErrorIs(t, err, store.ErrListNotFound)

	_, err = s.SetCheckedState(ctx, f.UnknownID, "item", true)
	assert.ErrorIs(t, err, store.ErrListNotFound)

	deleted, err := s.Delete(ctx, f.UnknownID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func testMalformedIDs(t *testing.T, s store.TodoListStore, f Fixture) {
	ctx := context.Background()

	for _, id := range []string{f.MalformedID, "", "not-an-id"} {
		_, err := s.GetByID(ctx, id)
		assert.ErrorIs(t, err, store.ErrNotFound, "get %q", id)

		deleted, err := s.Delete(ctx, id)
		assert.NoError(t, err, "delete %q", id)
		assert.False(t, deleted, "delete %q", id)

		_, err = s.CreateItem(ctx, id, "Milk")
		assert.ErrorIs(t, err, store.ErrNotFound, "create item %q", id)
	}
}

func testListSummaries(t *testing.T, s store.TodoListStore, _ Fixture) {
	ctx := context.Background()
	a := mustCreate(t, s, "Summary A")
	b := mustCreate(t, s, "Summary B")

	_, err := s.CreateItem(ctx, b, "one")
	require.NoError(t, err)
	_, err = s.CreateItem(ctx, b, "two")
	require.NoError(t, err)

	seq := s.ListSummaries(ctx)

	collect := func() map[string]domain.ListSummary {
		found := make(map[string]domain.ListSummary)
		for summary, err := range seq {
			require.NoError(t, err)
			if summary.ID == a || summary.ID == b {
				found[summary.ID] = *summary
			}
		}
		return found
	}

	first := collect()
	assert.Equal(t, domain.ListSummary{ID: a, Name: "Summary A", ItemCount: 0}, first[a])
	assert.Equal(t, domain.ListSummary{ID: b, Name: "Summary B", ItemCount: 2}, first[b])

	// The same sequence re-queries and observes new state.
	_, err = s.CreateItem(ctx, a, "late")
	require.NoError(t, err)
	second := collect()
	assert.Equal(t, 1, second[a].ItemCount)
}

func testConcurrentCreateItem(t *testing.T, s store.TodoListStore, _ Fixture) {
	ctx := context.Background()
	id := mustCreate(t, s, "Busy")

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := s.CreateItem(ctx, id, fmt.Sprintf("item %d", n)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	list, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, list.Items, workers)
}

func testGroceriesWalkthrough(t *testing.T, s store.TodoListStore, _ Fixture) {
	ctx := context.Background()

	id, err := s.Create(ctx, "Groceries")
	require.NoError(t, err)

	list, err := s.CreateItem(ctx, id, "Milk")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Milk", list.Items[0].Label)
	assert.False(t, list.Items[0].CheckedState)
	itemID := list.Items[0].ID

	list, err = s.SetCheckedState(ctx, id, itemID, true)
	require.NoError(t, err)
	assert.True(t, list.Items[0].CheckedState)

	list, err = s.DeleteItem(ctx, id, itemID)
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	deleted, err := s.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrListNotFound)
}
