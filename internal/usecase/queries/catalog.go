package queries

import (
	"context"

	"pricing-panel/internal/domain/catalog"
	"pricing-panel/internal/infra"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/errs"
)

var ErrCatalogUnavailable = errs.New("catalog listing failed")

type CatalogPageReader interface {
	FetchPage(ctx context.Context, scope catalog.Scope, pageNo, pageSize int) (*catalog.Page, error)
}

type CatalogQueries interface {
	// ListProducts returns every product of scope in page order.
	ListProducts(ctx context.Context, scope catalog.Scope) ([]catalog.Product, error)
}

type catalogQueriesImpl struct {
	reader   CatalogPageReader
	pageSize int
	maxPages int
}

func NewCatalogQueries(reader CatalogPageReader, cfg config.PlatformConfig) CatalogQueries {
	return &catalogQueriesImpl{
		reader:   reader,
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
	}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, scope catalog.Scope) ([]catalog.Product, error) {
	fetch := func(ctx context.Context, pageNo, pageSize int) ([]catalog.Product, bool, error) {
		page, err := q.reader.FetchPage(ctx, scope, pageNo, pageSize)
		if err != nil {
			return nil, false, err
		}
		if page == nil {
			return nil, false, nil
		}
		return page.Items, page.Page.HasNext, nil
	}

	products, err := CollectPages(ctx, fetch, q.pageSize, q.maxPages)
	if err != nil {
		switch {
		case errs.Is(err, ErrPageLimitExceeded), infra.IsKind(err, infra.KindContractViolation):
			return nil, errs.Mark(err, errs.ErrUpstreamContractViolated)
		default:
			return nil, errs.Mark(err, ErrCatalogUnavailable)
		}
	}
	return products, nil
}
