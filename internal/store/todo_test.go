package store

import (
	"errors"
	"iter"
	"testing"

	"github.com/phrazzld/todo-lists-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqOf(summaries []domain.ListSummary, tail error) iter.Seq2[*domain.ListSummary, error] {
	return func(yield func(*domain.ListSummary, error) bool) {
		for i := range summaries {
			if !yield(&summaries[i], nil) {
				return
			}
		}
		if tail != nil {
			yield(nil, tail)
		}
	}
}

func TestCollectSummaries(t *testing.T) {
	t.Run("empty sequence yields empty slice", func(t *testing.T) {
		got, err := CollectSummaries(seqOf(nil, nil))
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("collects in order", func(t *testing.T) {
		in := []domain.ListSummary{
			{ID: "1", Name: "Groceries", ItemCount: 2},
			{ID: "2", Name: "Chores", ItemCount: 0},
		}
		got, err := CollectSummaries(seqOf(in, nil))
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("stops at error", func(t *testing.T) {
		boom := errors.New("cursor failed")
		got, err := CollectSummaries(seqOf([]domain.ListSummary{{ID: "1"}}, boom))
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})
}
