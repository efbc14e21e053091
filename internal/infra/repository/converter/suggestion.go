package converter

import (
	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/infra/tablestore"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/pkg/pgconv"
)

func SuggestionFromRow(row tablestore.SuggestionRow) (*pricing.Suggestion, error) {
	current, err := pgconv.DecimalFromNumeric(row.CurrentPrice)
	if err != nil {
		return nil, errs.Wrap(err, "current_price")
	}
	suggested, err := pgconv.DecimalFromNumeric(row.SuggestedPrice)
	if err != nil {
		return nil, errs.Wrap(err, "suggested_price")
	}
	return &pricing.Suggestion{
		ID:             pgconv.UUIDFromPgtype(row.ID),
		ProductID:      pgconv.StringPtrFromPgtype(row.ProductID),
		CurrentPrice:   current,
		SuggestedPrice: suggested,
		Status:         pricing.Status(pgconv.StringFromPgtype(row.Status)),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func SuggestionsFromRows(rows []tablestore.SuggestionRow) ([]*pricing.Suggestion, error) {
	out := make([]*pricing.Suggestion, 0, len(rows))
	for _, r := range rows {
		s, err := SuggestionFromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
