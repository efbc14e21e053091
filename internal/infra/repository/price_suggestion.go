package repository

import (
	"context"
	"log/slog"
	"time"

	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/infra"
	"pricing-panel/internal/infra/repository/converter"
	"pricing-panel/internal/infra/tablestore"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/pgconv"
	"pricing-panel/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PriceSuggestionQueries interface {
	ResolveTable(ctx context.Context, db tablestore.DBTX, name string) (tablestore.TableMeta, error)
	ListSuggestions(ctx context.Context, db tablestore.DBTX, table tablestore.TableMeta) ([]tablestore.SuggestionRow, error)
	ListSuggestionsByStatusForUpdate(ctx context.Context, db tablestore.DBTX, table tablestore.TableMeta, status string) ([]tablestore.SuggestionRow, error)
	DeleteSuggestion(ctx context.Context, db tablestore.DBTX, table tablestore.TableMeta, id pgtype.UUID) (int64, error)
	UpdateSuggestedPrice(ctx context.Context, db tablestore.DBTX, table tablestore.TableMeta, arg tablestore.UpdateSuggestedPriceParams) (int64, error)
}

type PriceSuggestionRepository struct {
	queries PriceSuggestionQueries
	db      tablestore.Pool
	table   string
	timeout time.Duration
	logger  *slog.Logger
}

func NewPriceSuggestionRepository(queries PriceSuggestionQueries, db tablestore.Pool, cfg config.TableStoreConfig, logger *slog.Logger) *PriceSuggestionRepository {
	return &PriceSuggestionRepository{
		queries: queries,
		db:      db,
		table:   cfg.PricingTable,
		timeout: cfg.QueryTimeout,
		logger:  logger,
	}
}

var _ shared.PriceSuggestionStore = (*PriceSuggestionRepository)(nil)

func (r *PriceSuggestionRepository) ListAll(ctx context.Context) ([]*pricing.Suggestion, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	table, err := r.resolve(ctx, r.db)
	if err != nil {
		return nil, err
	}
	rows, err := r.queries.ListSuggestions(ctx, r.db, table)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list price suggestions", err)
	}
	out, err := converter.SuggestionsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode price suggestions", err)
	}
	return out, nil
}

func (r *PriceSuggestionRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx shared.PriceSuggestionTx) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return tablestore.WithDefaultRetry(ctx, r.db, func(tx pgx.Tx) error {
		table, err := r.resolve(ctx, tx)
		if err != nil {
			return err
		}
		return fn(ctx, &priceSuggestionTx{repo: r, db: tx, table: table})
	})
}

func (r *PriceSuggestionRepository) resolve(ctx context.Context, db tablestore.DBTX) (tablestore.TableMeta, error) {
	table, err := r.queries.ResolveTable(ctx, db, r.table)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return tablestore.TableMeta{}, infra.WrapRepoErr(r.logger, infra.KindNotFound, "pricing table not found", err)
		}
		return tablestore.TableMeta{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to resolve pricing table", err)
	}
	return table, nil
}

func (r *PriceSuggestionRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

type priceSuggestionTx struct {
	repo  *PriceSuggestionRepository
	db    tablestore.DBTX
	table tablestore.TableMeta
}

func (t *priceSuggestionTx) ListPendingForUpdate(ctx context.Context) ([]*pricing.Suggestion, error) {
	rows, err := t.repo.queries.ListSuggestionsByStatusForUpdate(ctx, t.db, t.table, pricing.StatusPending.String())
	if err != nil {
		return nil, infra.WrapRepoErr(t.repo.logger, infra.KindDBFailure, "failed to list pending price suggestions", err)
	}
	out, err := converter.SuggestionsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(t.repo.logger, infra.KindDBFailure, "failed to decode price suggestions", err)
	}
	return out, nil
}

func (t *priceSuggestionTx) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := t.repo.queries.DeleteSuggestion(ctx, t.db, t.table, pgconv.UUIDToPgtype(id))
	if err != nil {
		return 0, infra.WrapRepoErr(t.repo.logger, infra.KindDBFailure, "failed to delete price suggestion", err)
	}
	return n, nil
}

func (t *priceSuggestionTx) UpdateSuggestedPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (int64, error) {
	n, err := t.repo.queries.UpdateSuggestedPrice(ctx, t.db, t.table, tablestore.UpdateSuggestedPriceParams{
		ID:             pgconv.UUIDToPgtype(id),
		SuggestedPrice: pgconv.NumericFromDecimal(price),
	})
	if err != nil {
		return 0, infra.WrapRepoErr(t.repo.logger, infra.KindDBFailure, "failed to update suggested price", err)
	}
	return n, nil
}
