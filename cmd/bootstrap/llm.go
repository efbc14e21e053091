package bootstrap

import (
	"context"
	"log/slog"

	"pricing-panel/internal/infra/llm"
	"pricing-panel/internal/infra/mcpsearch"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/usecase/shared"

	"go.uber.org/fx"
	"google.golang.org/genai"
)

var LLMModule = fx.Module("llm",
	fx.Provide(
		func(cfg config.LLMConfig) (*genai.Client, error) {
			return llm.NewGenAIClient(context.Background(), cfg)
		},
		fx.Annotate(
			llm.NewGeminiGenerator,
			fx.As(new(shared.TextGenerator)),
		),
		fx.Annotate(
			mcpsearch.NewNegotiator,
			fx.As(new(shared.SearchToolNegotiator)),
		),
	),
	fx.Invoke(func(cfg config.SearchConfig, logger *slog.Logger) {
		if !cfg.Enabled() {
			logger.Info("search tool not configured, promotions use knowledge-only prompts")
		}
	}),
)
