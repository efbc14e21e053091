//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"pricing-panel/internal/domain/catalog"
	"pricing-panel/internal/infra"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase/queries"
	"pricing-panel/tests/common/builder"
	queriesmock "pricing-panel/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogQueries_ListProducts(t *testing.T) {
	cfg := config.NewTestConfig().Platform
	cfg.PageSize = 2
	cfg.MaxPages = 3
	scope, err := catalog.NewCompanyScope("1001")
	require.NoError(t, err)

	t.Run("walks every page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockCatalogPageReader(ctrl)
		pages := builder.NewPages(5, 2)

		for i, p := range pages {
			reader.EXPECT().FetchPage(gomock.Any(), scope, i+1, 2).Return(p, nil)
		}

		got, err := queries.NewCatalogQueries(reader, cfg).ListProducts(context.Background(), scope)
		require.NoError(t, err)
		require.Len(t, got, 5)
		for i, p := range got {
			assert.Equal(t, int64(i+1), p.UID)
		}
	})

	t.Run("nil page ends the walk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockCatalogPageReader(ctrl)
		reader.EXPECT().FetchPage(gomock.Any(), scope, 1, 2).Return(nil, nil)

		got, err := queries.NewCatalogQueries(reader, cfg).ListProducts(context.Background(), scope)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	testCases := []struct {
		name     string
		setup    func(reader *queriesmock.MockCatalogPageReader)
		errIs    error
		errIsNot error
	}{
		{
			name: "transport failure",
			setup: func(reader *queriesmock.MockCatalogPageReader) {
				reader.EXPECT().FetchPage(gomock.Any(), scope, 1, 2).Return(builder.NewPages(4, 2)[0], nil)
				reader.EXPECT().FetchPage(gomock.Any(), scope, 2, 2).
					Return(nil, infra.RepositoryError{Kind: infra.KindUpstreamFailure})
			},
			errIs:    queries.ErrCatalogUnavailable,
			errIsNot: errs.ErrUpstreamContractViolated,
		},
		{
			name: "malformed upstream page",
			setup: func(reader *queriesmock.MockCatalogPageReader) {
				reader.EXPECT().FetchPage(gomock.Any(), scope, 1, 2).
					Return(nil, infra.RepositoryError{Kind: infra.KindContractViolation})
			},
			errIs:    errs.ErrUpstreamContractViolated,
			errIsNot: queries.ErrCatalogUnavailable,
		},
		{
			name: "has_next never clears",
			setup: func(reader *queriesmock.MockCatalogPageReader) {
				page := &catalog.Page{Items: []catalog.Product{builder.NewProduct(1)}, Page: catalog.PageInfo{HasNext: true}}
				reader.EXPECT().FetchPage(gomock.Any(), scope, gomock.Any(), 2).Return(page, nil).Times(3)
			},
			errIs:    errs.ErrUpstreamContractViolated,
			errIsNot: queries.ErrCatalogUnavailable,
		},
		{
			name: "unclassified error",
			setup: func(reader *queriesmock.MockCatalogPageReader) {
				reader.EXPECT().FetchPage(gomock.Any(), scope, 1, 2).Return(nil, errors.New("boom"))
			},
			errIs: queries.ErrCatalogUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := queriesmock.NewMockCatalogPageReader(ctrl)
			tc.setup(reader)

			got, err := queries.NewCatalogQueries(reader, cfg).ListProducts(context.Background(), scope)
			assert.Nil(t, got)
			assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			if tc.errIsNot != nil {
				assert.False(t, errs.Is(err, tc.errIsNot), "unexpected %v in %v", tc.errIsNot, err)
			}
		})
	}
}
