package components

import (
	"time"

	"pricing-panel/internal/pkg/clock"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/usecase"
	"pricing-panel/internal/usecase/commands"
	"pricing-panel/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseServicesModule,
)

// "Today" in prompts is the merchant's date, so the clock follows the log time zone.
var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) clock.Clock {
		return clock.NewRealClockIn(time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset))
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewPricingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPriceDecisionCommands,
		commands.NewPromotionCommands,
	),
)

var usecaseServicesModule = fx.Module("usecase/services",
	fx.Provide(
		usecase.NewPromotionSuggester,
		usecase.NewWebhookEvents,
		usecase.NewPricingOptimizer,
	),
)
