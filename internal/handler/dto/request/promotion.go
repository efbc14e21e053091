package request

import (
	"encoding/json"
	"strings"

	"pricing-panel/internal/domain/promotion"
	"pricing-panel/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidCurrentPrice = errs.New("current_price must be a number")

type SuggestPromotionQuery struct {
	ProductName     string `form:"product_name" binding:"required"`
	ProductCategory string `form:"product_category"`
	CurrentPrice    string `form:"current_price"`
}

func (q SuggestPromotionQuery) ToDomain() (promotion.Request, error) {
	var price *decimal.Decimal
	if raw := strings.TrimSpace(q.CurrentPrice); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return promotion.Request{}, errs.Mark(err, ErrInvalidCurrentPrice)
		}
		price = &d
	}
	return promotion.NewRequest(q.ProductName, q.ProductCategory, price)
}

// PublishPromotionRequest carries the scheme exactly as the panel built it.
type PublishPromotionRequest struct {
	Promotion json.RawMessage `json:"promotion"`
}
