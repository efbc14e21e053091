package components

import (
	"pricing-panel/internal/infra/platform"
	"pricing-panel/internal/infra/repository"
	"pricing-panel/internal/infra/tablestore"
	"pricing-panel/internal/infra/workflow"
	"pricing-panel/internal/usecase/queries"
	"pricing-panel/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewTableQueries,
			fx.As(new(repository.PriceSuggestionQueries)),
		),
		NewTablePool,
		fx.Annotate(
			repository.NewPriceSuggestionRepository,
			fx.As(new(shared.PriceSuggestionStore)),
		),
		fx.Annotate(
			platform.NewCatalogClient,
			fx.As(new(queries.CatalogPageReader)),
		),
		fx.Annotate(
			workflow.NewGateway,
			fx.As(new(shared.WorkflowGateway)),
		),
	),
)

func NewTableQueries(_ *pgxpool.Pool) *tablestore.Queries {
	return tablestore.New()
}

func NewTablePool(pool *pgxpool.Pool) tablestore.Pool {
	return pool
}
