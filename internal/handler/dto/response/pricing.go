package response

import (
	"encoding/json"

	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/usecase/commands"
	"pricing-panel/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PriceSuggestionResponse struct {
	ID             string      `json:"id"`
	ProductID      *string     `json:"product_id"`
	CurrentPrice   json.Number `json:"current_price"`
	SuggestedPrice json.Number `json:"suggested_price"`
	Status         string      `json:"status"`
	CreatedAt      string      `json:"created_at"`
}

type PricingStatusResponse struct {
	Latest *PriceSuggestionResponse   `json:"latest"`
	All    []*PriceSuggestionResponse `json:"all"`
}

func FromPricingStatus(s *queries.PricingStatus) *PricingStatusResponse {
	res := &PricingStatusResponse{All: make([]*PriceSuggestionResponse, len(s.All))}
	for i, row := range s.All {
		res.All[i] = FromSuggestion(row)
	}
	if s.Latest != nil {
		res.Latest = FromSuggestion(s.Latest)
	}
	return res
}

func FromSuggestion(s *pricing.Suggestion) *PriceSuggestionResponse {
	res := &PriceSuggestionResponse{
		ID:             s.ID.String(),
		ProductID:      s.ProductID,
		CurrentPrice:   number(s.CurrentPrice),
		SuggestedPrice: number(s.SuggestedPrice),
		Status:         s.Status.String(),
	}
	if !s.CreatedAt.IsZero() {
		res.CreatedAt = s.CreatedAt.UTC().Format(timeLayout)
	}
	return res
}

type DenyPriceResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Deleted int64  `json:"deleted"`
}

func FromDenyResult(r *commands.DenyResult) *DenyPriceResponse {
	return &DenyPriceResponse{Success: true, ID: r.ID.String(), Deleted: r.Deleted}
}

type EditPriceResponse struct {
	Success          bool            `json:"success"`
	ID               string          `json:"id"`
	Updated          int64           `json:"updated"`
	WorkflowResponse json.RawMessage `json:"workflow_response"`
}

func FromEditResult(r *commands.EditResult) *EditPriceResponse {
	return &EditPriceResponse{
		Success:          true,
		ID:               r.ID.String(),
		Updated:          r.Updated,
		WorkflowResponse: r.Workflow,
	}
}

type OptimizedPriceResponse struct {
	SKU            string      `json:"sku"`
	OptimizedPrice json.Number `json:"optimized_price"`
	OriginalPrice  json.Number `json:"original_price"`
	Reason         string      `json:"reason"`
}

type OptimizeBatchResponse struct {
	OptimizedProducts []OptimizedPriceResponse `json:"optimized_products"`
}

func FromOptimizedPrices(items []pricing.OptimizedPrice) *OptimizeBatchResponse {
	res := &OptimizeBatchResponse{OptimizedProducts: make([]OptimizedPriceResponse, len(items))}
	for i, it := range items {
		res.OptimizedProducts[i] = OptimizedPriceResponse{
			SKU:            it.SKU,
			OptimizedPrice: number(it.OptimizedPrice),
			OriginalPrice:  number(it.OriginalPrice),
			Reason:         it.Reason,
		}
	}
	return res
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
