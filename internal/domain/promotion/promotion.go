package promotion

import (
	"strings"
	"time"

	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

const DefaultCategory = "General"

var (
	ErrProductNameRequired = errs.New("product name is required")
	ErrNegativePrice       = errs.New("current price must not be negative")
)

type Mode string

const (
	ModeSearchAugmented Mode = "search_augmented"
	ModeKnowledgeOnly   Mode = "knowledge_only"
)

func (m Mode) String() string {
	return string(m)
}

// Scheme is one promotional discount proposal produced by the model. Field
// contents are not validated; they are shown to the user as received.
type Scheme struct {
	SchemeName         Text   `json:"scheme_name"`
	DiscountPercentage Number `json:"discount_percentage"`
	DiscountType       Text   `json:"discount_type"`
	DurationDays       Number `json:"duration_days"`
	TargetSegment      Text   `json:"target_segment"`
	Reason             Text   `json:"reason"`
	CompetitorAnalysis Text   `json:"competitor_analysis"`
	SeasonalFactor     Text   `json:"seasonal_factor"`
}

type Request struct {
	ProductName  string
	Category     string
	CurrentPrice decimal.Decimal
}

// NewRequest trims its inputs and applies the category and price defaults.
func NewRequest(name, category string, price *decimal.Decimal) (Request, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Request{}, ErrProductNameRequired
	}
	category = patch.OrDefault(strings.TrimSpace(category), DefaultCategory)
	p := patch.Coalesce(price, decimal.Zero)
	if p.IsNegative() {
		return Request{}, ErrNegativePrice
	}
	return Request{ProductName: name, Category: category, CurrentPrice: p}, nil
}

// CacheKey identifies equivalent requests regardless of letter case and spacing.
func (r Request) CacheKey() string {
	return ProductKey(r.ProductName) + ":" + normalize(r.Category) + ":" + r.CurrentPrice.StringFixed(2)
}

// ProductKey is the cache key prefix shared by every request for one product name.
func ProductKey(name string) string {
	return normalize(name)
}

// keyPartEscaper keeps ":" free for separating key parts.
var keyPartEscaper = strings.NewReplacer("%", "%25", ":", "%3A")

func normalize(s string) string {
	return keyPartEscaper.Replace(strings.Join(strings.Fields(strings.ToLower(s)), "-"))
}

type Result struct {
	Product     string    `json:"product"`
	GeneratedAt time.Time `json:"generated_at"`
	Schemes     []Scheme  `json:"promotion_scheme"`
	Mode        Mode      `json:"mode"`
	AIModel     string    `json:"ai_model"`
}
