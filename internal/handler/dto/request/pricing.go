package request

import (
	"strings"

	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidSuggestionID = errs.New("id must be a UUID")

// DenyPriceRequest targets one suggestion by id; without id the single PENDING row is used.
type DenyPriceRequest struct {
	ID *string `json:"id,omitempty"`
}

func (r DenyPriceRequest) Target() (*uuid.UUID, error) {
	return parseTarget(r.ID)
}

// EditPriceRequest accepts new_price as a JSON number or a numeric string.
type EditPriceRequest struct {
	NewPrice *decimal.Decimal `json:"new_price" binding:"required"`
	ID       *string          `json:"id,omitempty"`
}

func (r EditPriceRequest) Target() (*uuid.UUID, error) {
	return parseTarget(r.ID)
}

func (r EditPriceRequest) ToDomain() (pricing.Price, error) {
	if r.NewPrice == nil {
		return pricing.Price{}, pricing.ErrInvalidPrice
	}
	return pricing.NewPrice(*r.NewPrice)
}

func parseTarget(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSuggestionID)
	}
	return &id, nil
}

type ProductMetricsRequest struct {
	SKU             string          `json:"sku" binding:"required"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	CompetitorPrice decimal.Decimal `json:"competitor_price"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	StockLevel      int             `json:"stock_level"`
	UnitsSold       int             `json:"units_sold"`
	UnitsOrdered    int             `json:"units_ordered"`
}

type OptimizeBatchRequest struct {
	Products []ProductMetricsRequest `json:"products" binding:"required,min=1,dive"`
}

func (r OptimizeBatchRequest) ToDomain() []pricing.ProductMetrics {
	out := make([]pricing.ProductMetrics, len(r.Products))
	for i, p := range r.Products {
		out[i] = pricing.ProductMetrics{
			SKU:             p.SKU,
			CurrentPrice:    p.CurrentPrice,
			CompetitorPrice: p.CompetitorPrice,
			CostPrice:       p.CostPrice,
			StockLevel:      p.StockLevel,
			UnitsSold:       p.UnitsSold,
			UnitsOrdered:    p.UnitsOrdered,
		}
	}
	return out
}
