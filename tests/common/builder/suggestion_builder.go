//go:build unit || e2e

package builder

import (
	"time"

	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/infra/tablestore"
	"pricing-panel/internal/pkg/pgconv"
	"pricing-panel/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type SuggestionBuilder struct {
	ID             uuid.UUID
	ProductID      *string
	CurrentPrice   decimal.Decimal
	SuggestedPrice decimal.Decimal
	Status         pricing.Status
	CreatedAt      time.Time
}

func NewSuggestionBuilder() *SuggestionBuilder {
	return &SuggestionBuilder{
		ID:             uuid.New(),
		ProductID:      ptr.To("SKU-1001"),
		CurrentPrice:   decimal.RequireFromString("499.00"),
		SuggestedPrice: decimal.RequireFromString("459.00"),
		Status:         pricing.StatusPending,
		CreatedAt:      time.Date(2025, 10, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *SuggestionBuilder) With(mutate func(*SuggestionBuilder)) *SuggestionBuilder {
	mutate(b)
	return b
}

func (b *SuggestionBuilder) WithID(id uuid.UUID) *SuggestionBuilder {
	b.ID = id
	return b
}

func (b *SuggestionBuilder) WithStatus(s pricing.Status) *SuggestionBuilder {
	b.Status = s
	return b
}

func (b *SuggestionBuilder) WithSuggestedPrice(p string) *SuggestionBuilder {
	b.SuggestedPrice = decimal.RequireFromString(p)
	return b
}

func (b *SuggestionBuilder) WithCreatedAt(t time.Time) *SuggestionBuilder {
	b.CreatedAt = t
	return b
}

// Build methods
func (b *SuggestionBuilder) BuildDomain() *pricing.Suggestion {
	return &pricing.Suggestion{
		ID:             b.ID,
		ProductID:      b.ProductID,
		CurrentPrice:   b.CurrentPrice,
		SuggestedPrice: b.SuggestedPrice,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
}

func (b *SuggestionBuilder) BuildRow() tablestore.SuggestionRow {
	row := tablestore.SuggestionRow{
		ID:             pgconv.UUIDToPgtype(b.ID),
		CurrentPrice:   pgconv.NumericFromDecimal(b.CurrentPrice),
		SuggestedPrice: pgconv.NumericFromDecimal(b.SuggestedPrice),
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.ProductID != nil {
		row.ProductID = pgtype.Text{String: *b.ProductID, Valid: true}
	}
	if b.Status != "" {
		row.Status = pgtype.Text{String: b.Status.String(), Valid: true}
	}
	return row
}

func (b *SuggestionBuilder) BuildInsertParams() tablestore.InsertSuggestionParams {
	row := b.BuildRow()
	return tablestore.InsertSuggestionParams{
		ID:             row.ID,
		ProductID:      row.ProductID,
		CurrentPrice:   row.CurrentPrice,
		SuggestedPrice: row.SuggestedPrice,
		Status:         row.Status,
		CreatedAt:      row.CreatedAt,
	}
}
