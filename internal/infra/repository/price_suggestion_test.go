//go:build unit

package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/infra"
	"pricing-panel/internal/infra/repository"
	"pricing-panel/internal/infra/tablestore"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/pkg/pgconv"
	"pricing-panel/internal/usecase/shared"
	"pricing-panel/tests/common/builder"
	repositorymock "pricing-panel/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pricingTable = tablestore.TableMeta{Schema: "public", Name: "pricing_suggestions"}

// mockPool hands out mockTx values and records how they ended.
type mockPool struct {
	tx       *mockTx
	beginErr error
}

func (m *mockPool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockPool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockPool) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("mockPool.QueryRow was called unexpectedly. Use the queries mock instead.")
}

func (m *mockPool) Begin(context.Context) (pgx.Tx, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	m.tx = &mockTx{}
	return m.tx, nil
}

type mockTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (m *mockTx) Commit(context.Context) error {
	m.committed = true
	return nil
}

func (m *mockTx) Rollback(context.Context) error {
	if m.committed {
		return pgx.ErrTxClosed
	}
	m.rolledBack = true
	return nil
}

func newRepo(t *testing.T) (*repository.PriceSuggestionRepository, *repositorymock.MockPriceSuggestionQueries, *mockPool) {
	t.Helper()
	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockPriceSuggestionQueries(ctrl)
	pool := &mockPool{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return repository.NewPriceSuggestionRepository(queries, pool, config.NewTestConfig().TableStore, logger), queries, pool
}

// =============================================================================
// ListAll Tests
// =============================================================================

func TestRepository_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows converted in order", func(t *testing.T) {
		repo, queries, pool := newRepo(t)
		first := builder.NewSuggestionBuilder()
		second := builder.NewSuggestionBuilder().WithSuggestedPrice("430.50")

		queries.EXPECT().ResolveTable(gomock.Any(), pool, "pricing_suggestions").Return(pricingTable, nil)
		queries.EXPECT().ListSuggestions(gomock.Any(), pool, pricingTable).
			Return([]tablestore.SuggestionRow{first.BuildRow(), second.BuildRow()}, nil)

		got, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, pricing.StatusPending, got[0].Status)
		assert.True(t, decimal.RequireFromString("430.50").Equal(got[1].SuggestedPrice))
		assert.Equal(t, "SKU-1001", *got[1].ProductID)
	})

	t.Run("nullable columns", func(t *testing.T) {
		repo, queries, pool := newRepo(t)
		row := tablestore.SuggestionRow{
			ID:             pgconv.UUIDToPgtype(uuid.New()),
			SuggestedPrice: pgconv.NumericFromDecimal(decimal.NewFromInt(10)),
		}
		queries.EXPECT().ResolveTable(gomock.Any(), pool, gomock.Any()).Return(pricingTable, nil)
		queries.EXPECT().ListSuggestions(gomock.Any(), pool, pricingTable).Return([]tablestore.SuggestionRow{row}, nil)

		got, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].ProductID)
		assert.True(t, got[0].CurrentPrice.IsZero())
		assert.Equal(t, pricing.Status(""), got[0].Status)
	})

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockPriceSuggestionQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "error: pricing table missing",
			setupMock: func(q *repositorymock.MockPriceSuggestionQueries) {
				q.EXPECT().ResolveTable(gomock.Any(), gomock.Any(), gomock.Any()).Return(tablestore.TableMeta{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: catalog lookup fails",
			setupMock: func(q *repositorymock.MockPriceSuggestionQueries) {
				q.EXPECT().ResolveTable(gomock.Any(), gomock.Any(), gomock.Any()).Return(tablestore.TableMeta{}, errors.New("connection refused"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: select fails",
			setupMock: func(q *repositorymock.MockPriceSuggestionQueries) {
				q.EXPECT().ResolveTable(gomock.Any(), gomock.Any(), gomock.Any()).Return(pricingTable, nil)
				q.EXPECT().ListSuggestions(gomock.Any(), gomock.Any(), pricingTable).Return(nil, errors.New("timeout"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: NaN price",
			setupMock: func(q *repositorymock.MockPriceSuggestionQueries) {
				row := builder.NewSuggestionBuilder().BuildRow()
				row.SuggestedPrice = pgtype.Numeric{NaN: true, Valid: true}
				q.EXPECT().ResolveTable(gomock.Any(), gomock.Any(), gomock.Any()).Return(pricingTable, nil)
				q.EXPECT().ListSuggestions(gomock.Any(), gomock.Any(), pricingTable).Return([]tablestore.SuggestionRow{row}, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, queries, _ := newRepo(t)
			tc.setupMock(queries)

			got, err := repo.ListAll(ctx)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
		})
	}
}

// =============================================================================
// WithinTx Tests
// =============================================================================

func TestRepository_WithinTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success: statements run on the transaction and commit", func(t *testing.T) {
		repo, queries, pool := newRepo(t)
		id := uuid.New()
		price := decimal.RequireFromString("449.50")
		pendingRow := builder.NewSuggestionBuilder().WithID(id).BuildRow()

		queries.EXPECT().ResolveTable(gomock.Any(), gomock.Any(), "pricing_suggestions").
			DoAndReturn(func(_ context.Context, db tablestore.DBTX, _ string) (tablestore.TableMeta, error) {
				assert.Same(t, pool.tx, db)
				return pricingTable, nil
			})
		queries.EXPECT().ListSuggestionsByStatusForUpdate(gomock.Any(), gomock.Any(), pricingTable, "PENDING").
			Return([]tablestore.SuggestionRow{pendingRow}, nil)
		queries.EXPECT().UpdateSuggestedPrice(gomock.Any(), gomock.Any(), pricingTable, tablestore.UpdateSuggestedPriceParams{
			ID:             pgconv.UUIDToPgtype(id),
			SuggestedPrice: pgconv.NumericFromDecimal(price),
		}).Return(int64(1), nil)
		queries.EXPECT().DeleteSuggestion(gomock.Any(), gomock.Any(), pricingTable, pgconv.UUIDToPgtype(id)).Return(int64(1), nil)

		err := repo.WithinTx(ctx, func(ctx context.Context, tx shared.PriceSuggestionTx) error {
			pending, err := tx.ListPendingForUpdate(ctx)
			require.NoError(t, err)
			require.Len(t, pending, 1)

			n, err := tx.UpdateSuggestedPrice(ctx, pending[0].ID, price)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)

			n, err = tx.DeleteByID(ctx, pending[0].ID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, pool.tx.committed)
	})

	t.Run("error: callback failure rolls back", func(t *testing.T) {
		repo, queries, pool := newRepo(t)
		queries.EXPECT().ResolveTable(gomock.Any(), gomock.Any(), gomock.Any()).Return(pricingTable, nil)
		queries.EXPECT().DeleteSuggestion(gomock.Any(), gomock.Any(), pricingTable, gomock.Any()).
			Return(int64(0), errors.New("lock timeout"))

		err := repo.WithinTx(ctx, func(ctx context.Context, tx shared.PriceSuggestionTx) error {
			_, err := tx.DeleteByID(ctx, uuid.New())
			return err
		})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, pool.tx.committed)
		assert.True(t, pool.tx.rolledBack)
	})

	t.Run("error: domain error passes through", func(t *testing.T) {
		repo, queries, _ := newRepo(t)
		queries.EXPECT().ResolveTable(gomock.Any(), gomock.Any(), gomock.Any()).Return(pricingTable, nil)

		err := repo.WithinTx(ctx, func(context.Context, shared.PriceSuggestionTx) error {
			return pricing.ErrNoPendingSuggestion
		})
		assert.ErrorIs(t, err, pricing.ErrNoPendingSuggestion)
	})

	t.Run("error: begin fails", func(t *testing.T) {
		repo, _, pool := newRepo(t)
		pool.beginErr = errors.New("too many connections")

		err := repo.WithinTx(ctx, func(context.Context, shared.PriceSuggestionTx) error {
			t.Fatal("callback must not run")
			return nil
		})
		assert.True(t, errs.Is(err, tablestore.ErrTransactionBegin))
	})
}
