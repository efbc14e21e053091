//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingOptimizer_OptimizeBatch(t *testing.T) {
	uc := usecase.NewPricingOptimizer(discardLogger())
	items := []pricing.ProductMetrics{
		{
			SKU:             "A",
			CurrentPrice:    decimal.NewFromInt(120),
			CompetitorPrice: decimal.NewFromInt(100),
			CostPrice:       decimal.NewFromInt(50),
			UnitsSold:       3,
		},
		{
			SKU:             "B",
			CurrentPrice:    decimal.NewFromInt(120),
			CompetitorPrice: decimal.NewFromInt(100),
			CostPrice:       decimal.NewFromInt(99),
			UnitsSold:       50,
		},
	}

	got, err := uc.OptimizeBatch(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, pricing.ReasonRuleBased, got[0].Reason)
	assert.Equal(t, pricing.ReasonRuleBased+pricing.ReasonMarginGuard, got[1].Reason)

	_, err = uc.OptimizeBatch(context.Background(), nil)
	assert.ErrorIs(t, err, pricing.ErrEmptyBatch)
}
