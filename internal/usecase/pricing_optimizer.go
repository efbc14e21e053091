package usecase

import (
	"context"
	"log/slog"

	"pricing-panel/internal/domain/pricing"
)

type PricingOptimizer interface {
	OptimizeBatch(ctx context.Context, items []pricing.ProductMetrics) ([]pricing.OptimizedPrice, error)
}

type pricingOptimizerImpl struct {
	optimizer *pricing.Optimizer
	logger    *slog.Logger
}

func NewPricingOptimizer(logger *slog.Logger) PricingOptimizer {
	return &pricingOptimizerImpl{optimizer: pricing.NewOptimizer(), logger: logger}
}

func (uc *pricingOptimizerImpl) OptimizeBatch(ctx context.Context, items []pricing.ProductMetrics) ([]pricing.OptimizedPrice, error) {
	out, err := uc.optimizer.OptimizeBatch(items)
	if err != nil {
		return nil, err
	}

	guarded := 0
	for _, p := range out {
		if p.Reason != pricing.ReasonRuleBased {
			guarded++
		}
	}
	uc.logger.InfoContext(ctx, "optimized price batch", "products", len(out), "margin_guarded", guarded)
	return out, nil
}
