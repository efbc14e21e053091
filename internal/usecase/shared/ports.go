package shared

import (
	"context"
	"encoding/json"

	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceSuggestionStore is the pricing table in the external table store.
type PriceSuggestionStore interface {
	ListAll(ctx context.Context) ([]*pricing.Suggestion, error)
	// WithinTx runs fn in one store transaction; rows read through tx stay locked until it ends.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx PriceSuggestionTx) error) error
}

type PriceSuggestionTx interface {
	ListPendingForUpdate(ctx context.Context) ([]*pricing.Suggestion, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	UpdateSuggestedPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (int64, error)
}

type Workflow string

const (
	WorkflowPriceAcceptance Workflow = "price_acceptance"
	WorkflowPromotion       Workflow = "promotion"
)

// WorkflowReply is the raw JSON the workflow endpoint answered with.
type WorkflowReply struct {
	StatusCode int
	Body       json.RawMessage
}

type WorkflowGateway interface {
	Execute(ctx context.Context, wf Workflow, payload any) (*WorkflowReply, error)
}

// PromotionCache stores generated promotion results. Implementations must treat
// backend failures as misses; errors are returned only for logging.
type PromotionCache interface {
	Get(ctx context.Context, key string) (*promotion.Result, bool, error)
	Set(ctx context.Context, key string, result *promotion.Result) error
	DeleteProduct(ctx context.Context, productName string) error
}
