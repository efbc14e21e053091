//go:build unit || e2e

package builder

import (
	"encoding/json"
	"fmt"
	"time"

	"pricing-panel/internal/domain/promotion"
)

type PromotionBuilder struct {
	Product     string
	Schemes     []promotion.Scheme
	Mode        promotion.Mode
	AIModel     string
	GeneratedAt time.Time
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		Product:     "Cotton Kurta",
		Schemes:     NewSchemes(3),
		Mode:        promotion.ModeKnowledgeOnly,
		AIModel:     "gemini-2.5-flash",
		GeneratedAt: time.Date(2025, 10, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) BuildResult() *promotion.Result {
	schemes := make([]promotion.Scheme, len(b.Schemes))
	copy(schemes, b.Schemes)
	return &promotion.Result{
		Product:     b.Product,
		GeneratedAt: b.GeneratedAt,
		Schemes:     schemes,
		Mode:        b.Mode,
		AIModel:     b.AIModel,
	}
}

// ModelJSON is the schemes encoded the way the model is asked to answer.
func (b *PromotionBuilder) ModelJSON() string {
	out, _ := json.Marshal(b.Schemes)
	return string(out)
}

func NewSchemes(n int) []promotion.Scheme {
	schemes := make([]promotion.Scheme, n)
	for i := range schemes {
		schemes[i] = NewScheme(fmt.Sprintf("Festive Offer %d", i+1), float64(10*(i+1)))
	}
	return schemes
}

func NewScheme(name string, discount float64) promotion.Scheme {
	return promotion.Scheme{
		SchemeName:         promotion.Text(name),
		DiscountPercentage: promotion.NumberOf(discount),
		DiscountType:       "percentage",
		DurationDays:       promotion.NumberOf(7),
		TargetSegment:      "returning customers",
		Reason:             "demand peaks before the festival",
		CompetitorAnalysis: "competitors discount 10-15%",
		SeasonalFactor:     "festival season",
	}
}
