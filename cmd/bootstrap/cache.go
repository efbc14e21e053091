package bootstrap

import (
	"context"
	"log/slog"

	"pricing-panel/internal/infra/cache"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewPromotionCache,
	),
)

// NewPromotionCache returns a no-op cache when REDIS_URL is not set.
func NewPromotionCache(lc fx.Lifecycle, cfg config.CacheConfig, logger *slog.Logger) (shared.PromotionCache, error) {
	if !cfg.Enabled() {
		logger.Info("promotion cache disabled")
		return cache.Noop{}, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	pc := cache.NewPromotionCache(client, cfg)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("promotion cache stats", "stats", pc.Snapshot())
			return client.Close()
		},
	})
	return pc, nil
}
