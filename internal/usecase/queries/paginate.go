package queries

import (
	"context"

	"pricing-panel/internal/pkg/errs"
)

const (
	DefaultPageSize = 100
	DefaultMaxPages = 500
)

// ErrPageLimitExceeded means the upstream kept reporting more pages past the
// configured cap. Callers treat it as a broken upstream contract.
var ErrPageLimitExceeded = errs.New("page limit exceeded while upstream still reports more pages")

// PageFetcher returns one page of items and whether the upstream has another one.
type PageFetcher[T any] func(ctx context.Context, pageNo, pageSize int) (items []T, hasNext bool, err error)

// CollectPages walks pages starting at 1 until the upstream stops reporting
// more. Any error discards what was collected so far.
func CollectPages[T any](ctx context.Context, fetch PageFetcher[T], pageSize, maxPages int) ([]T, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	var all []T
	for pageNo := 1; ; pageNo++ {
		if pageNo > maxPages {
			return nil, ErrPageLimitExceeded
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items, hasNext, err := fetch(ctx, pageNo, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if !hasNext {
			break
		}
	}

	if all == nil {
		all = []T{}
	}
	return all, nil
}
