package queries

import (
	"context"

	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase/shared"
)

var ErrPricingTableUnavailable = errs.New("pricing table unavailable")

// PricingStatus is the whole pricing table plus its last row.
type PricingStatus struct {
	Latest *pricing.Suggestion
	All    []*pricing.Suggestion
}

type PricingQueries interface {
	GetStatus(ctx context.Context) (*PricingStatus, error)
}

type pricingQueriesImpl struct {
	store shared.PriceSuggestionStore
}

func NewPricingQueries(store shared.PriceSuggestionStore) PricingQueries {
	return &pricingQueriesImpl{store: store}
}

func (q *pricingQueriesImpl) GetStatus(ctx context.Context) (*PricingStatus, error) {
	rows, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrPricingTableUnavailable)
	}
	if rows == nil {
		rows = []*pricing.Suggestion{}
	}
	return &PricingStatus{Latest: pricing.Latest(rows), All: rows}, nil
}
