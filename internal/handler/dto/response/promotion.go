package response

import (
	"time"

	"pricing-panel/internal/domain/promotion"

	"github.com/jinzhu/copier"
)

const timeLayout = time.RFC3339

type PromotionSchemeResponse struct {
	SchemeName         string           `json:"scheme_name"`
	DiscountPercentage promotion.Number `json:"discount_percentage"`
	DiscountType       string           `json:"discount_type"`
	DurationDays       promotion.Number `json:"duration_days"`
	TargetSegment      string           `json:"target_segment"`
	Reason             string           `json:"reason"`
	CompetitorAnalysis string           `json:"competitor_analysis"`
	SeasonalFactor     string           `json:"seasonal_factor"`
}

type PromotionResponse struct {
	Product     string                    `json:"product"`
	GeneratedAt string                    `json:"generated_at"`
	Schemes     []PromotionSchemeResponse `json:"promotion_scheme"`
	Mode        string                    `json:"mode"`
	AIModel     string                    `json:"ai_model"`
}

var copyOptions = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, _ := src.(time.Time)
				return t.Format(timeLayout), nil
			},
		},
		{
			SrcType: promotion.Text(""),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, _ := src.(promotion.Text)
				return t.String(), nil
			},
		},
		{
			SrcType: promotion.Mode(""),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				m, _ := src.(promotion.Mode)
				return m.String(), nil
			},
		},
	},
}

func FromPromotionResult(r *promotion.Result) (*PromotionResponse, error) {
	res := &PromotionResponse{}
	if err := copier.CopyWithOption(res, r, copyOptions); err != nil {
		return nil, err
	}
	if res.Schemes == nil {
		res.Schemes = []PromotionSchemeResponse{}
	}
	return res, nil
}
