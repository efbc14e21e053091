//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"pricing-panel/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagesOf serves fixed pages and records every requested page number.
func pagesOf(pages [][]int, requested *[]int) queries.PageFetcher[int] {
	return func(_ context.Context, pageNo, _ int) ([]int, bool, error) {
		*requested = append(*requested, pageNo)
		if pageNo > len(pages) {
			return nil, false, nil
		}
		return pages[pageNo-1], pageNo < len(pages), nil
	}
}

func TestCollectPages(t *testing.T) {
	ctx := context.Background()

	t.Run("concatenates pages in order starting at 1", func(t *testing.T) {
		var requested []int
		got, err := queries.CollectPages(ctx, pagesOf([][]int{{1, 2}, {3, 4}, {5}}, &requested), 2, 10)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
		assert.Equal(t, []int{1, 2, 3}, requested)
	})

	t.Run("single page without has_next makes one request", func(t *testing.T) {
		var requested []int
		got, err := queries.CollectPages(ctx, pagesOf([][]int{{1}}, &requested), 2, 10)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, got)
		assert.Equal(t, []int{1}, requested)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		var requested []int
		got, err := queries.CollectPages(ctx, pagesOf([][]int{{}}, &requested), 2, 10)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("passes page size to the fetcher", func(t *testing.T) {
		var sizes []int
		fetch := func(_ context.Context, _, pageSize int) ([]int, bool, error) {
			sizes = append(sizes, pageSize)
			return nil, false, nil
		}
		_, err := queries.CollectPages(ctx, fetch, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []int{queries.DefaultPageSize}, sizes)
	})

	t.Run("error on a later page discards partial results", func(t *testing.T) {
		boom := errors.New("page 2 failed")
		fetch := func(_ context.Context, pageNo, _ int) ([]int, bool, error) {
			if pageNo == 2 {
				return nil, false, boom
			}
			return []int{pageNo}, true, nil
		}
		got, err := queries.CollectPages(ctx, fetch, 1, 10)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})

	t.Run("upstream that never stops hits the page cap", func(t *testing.T) {
		calls := 0
		fetch := func(_ context.Context, pageNo, _ int) ([]int, bool, error) {
			calls++
			return []int{pageNo}, true, nil
		}
		got, err := queries.CollectPages(ctx, fetch, 1, 3)
		assert.ErrorIs(t, err, queries.ErrPageLimitExceeded)
		assert.Nil(t, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("cancelled context stops before fetching", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		var requested []int
		got, err := queries.CollectPages(cctx, pagesOf([][]int{{1}}, &requested), 1, 10)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)
		assert.Empty(t, requested)
	})
}
