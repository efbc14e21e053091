package pricing

import (
	"pricing-panel/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyBatch              = errs.New("at least one product is required")
	ErrInvalidCompetitorPrice  = errs.New("competitor price must be greater than zero")
	ErrInvalidCostPrice        = errs.New("cost price must not be negative")
	ErrInvalidInventoryMetrics = errs.New("stock and sales counts must not be negative")
)

const (
	ReasonRuleBased   = "Rule-based Fallback"
	ReasonMarginGuard = " (Margin Guard)"

	// units sold above which the margin floor is enforced
	marginGuardMinUnitsSold = 10
)

var (
	competitorUndercut = decimal.RequireFromString("0.98")
	minMarginFactor    = decimal.RequireFromString("1.05")
)

type ProductMetrics struct {
	SKU             string
	CurrentPrice    decimal.Decimal
	CompetitorPrice decimal.Decimal
	CostPrice       decimal.Decimal
	StockLevel      int
	UnitsSold       int
	UnitsOrdered    int
}

func (m ProductMetrics) Validate() error {
	if !m.CompetitorPrice.IsPositive() {
		return errs.Wrapf(ErrInvalidCompetitorPrice, "sku %q", m.SKU)
	}
	if m.CostPrice.IsNegative() {
		return errs.Wrapf(ErrInvalidCostPrice, "sku %q", m.SKU)
	}
	if m.StockLevel < 0 || m.UnitsSold < 0 || m.UnitsOrdered < 0 {
		return errs.Wrapf(ErrInvalidInventoryMetrics, "sku %q", m.SKU)
	}
	return nil
}

type OptimizedPrice struct {
	SKU            string
	OptimizedPrice decimal.Decimal
	OriginalPrice  decimal.Decimal
	Reason         string
}

// Optimizer prices a product at a small undercut of the competitor, never
// dropping a well-selling product below its margin floor.
type Optimizer struct{}

func NewOptimizer() *Optimizer {
	return &Optimizer{}
}

func (o *Optimizer) Optimize(m ProductMetrics) OptimizedPrice {
	reason := ReasonRuleBased
	price := m.CompetitorPrice.Mul(competitorUndercut)

	floor := m.CostPrice.Mul(minMarginFactor)
	if m.UnitsSold > marginGuardMinUnitsSold && price.LessThan(floor) {
		price = floor
		reason += ReasonMarginGuard
	}

	return OptimizedPrice{
		SKU:            m.SKU,
		OptimizedPrice: price.Round(2),
		OriginalPrice:  m.CurrentPrice,
		Reason:         reason,
	}
}

func (o *Optimizer) OptimizeBatch(items []ProductMetrics) ([]OptimizedPrice, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
	}
	out := make([]OptimizedPrice, 0, len(items))
	for _, it := range items {
		out = append(out, o.Optimize(it))
	}
	return out, nil
}
