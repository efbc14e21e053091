package pricing

import (
	"time"

	"pricing-panel/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice          = errs.New("price must be greater than zero")
	ErrNoPendingSuggestion   = errs.New("no pending price suggestion")
	ErrAmbiguousPendingState = errs.New("more than one pending price suggestion")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

// Suggestion is a row of the pricing table. Rows are written by the external
// recommendation job; this service only reads, re-prices or removes them.
type Suggestion struct {
	ID             uuid.UUID
	ProductID      *string
	CurrentPrice   decimal.Decimal
	SuggestedPrice decimal.Decimal
	Status         Status
	CreatedAt      time.Time
}

type Price struct {
	value decimal.Decimal
}

func NewPrice(v decimal.Decimal) (Price, error) {
	if !v.IsPositive() {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: v.Round(2)}, nil
}

func (p Price) Decimal() decimal.Decimal {
	return p.value
}

func (p Price) String() string {
	return p.value.StringFixed(2)
}

// ResolvePendingTarget picks the row an id-less deny/edit applies to. It
// refuses to guess when the table holds zero or several PENDING rows.
func ResolvePendingTarget(rows []*Suggestion) (uuid.UUID, error) {
	var target uuid.UUID
	found := 0
	for _, r := range rows {
		if r == nil || !r.Status.IsPending() {
			continue
		}
		found++
		target = r.ID
	}
	switch found {
	case 0:
		return uuid.Nil, ErrNoPendingSuggestion
	case 1:
		return target, nil
	default:
		return uuid.Nil, ErrAmbiguousPendingState
	}
}

// Latest returns the last row of the sequence, or nil when empty.
func Latest(rows []*Suggestion) *Suggestion {
	if len(rows) == 0 {
		return nil
	}
	return rows[len(rows)-1]
}
