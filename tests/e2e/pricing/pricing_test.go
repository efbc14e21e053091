//go:build e2e

package pricing_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"pricing-panel/internal/domain/pricing"
	resdto "pricing-panel/internal/handler/dto/response"
	"pricing-panel/tests/common/builder"
	"pricing-panel/tests/common/dbtest"
	"pricing-panel/tests/common/httptest"
	"pricing-panel/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productsURL         = "/api/products"
	applicationURL      = "/api/products/application/app-1"
	pricingStatusURL    = "/api/products/pricing-status"
	acceptURL           = "/api/products/accept-price-update"
	denyURL             = "/api/products/deny-price-update"
	editURL             = "/api/products/edit-price-update"
	publishURL          = "/api/products/publish-promotion"
	suggestPromotionURL = "/api/products/suggest-promotion"
	optimizeBatchURL    = "/api/pricing/optimize-batch"
)

var companyHeader = map[string]string{"x-company-id": "1001"}

type PricingSuite struct {
	e2e.SharedSuite
}

func (s *PricingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPricingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PricingSuite))
}

func (s *PricingSuite) seed(b *builder.SuggestionBuilder) uuid.UUID {
	return dbtest.CreateTestSuggestion(s.T(), s.DB, b)
}

func decimalEqual(t *testing.T, want string, got json.Number) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(decimal.RequireFromString(string(got))),
		"want %s, got %s", want, got)
}

// =============================================================================
// TestPricingStatus
// =============================================================================

func (s *PricingSuite) TestPricingStatus() {
	s.Run("Normal case: empty table returns no rows and no latest", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pricingStatusURL, nil, "")

		var res resdto.PricingStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Empty(t, res.All)
		assert.Nil(t, res.Latest)
		assert.JSONEq(t, `{"latest":null,"all":[]}`, w.Body.String())
	})

	s.Run("Normal case: rows come back oldest first and latest is the newest", func() {
		t := s.T()

		base := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
		older := s.seed(builder.NewSuggestionBuilder().WithCreatedAt(base).WithStatus(pricing.StatusApproved))
		newer := s.seed(builder.NewSuggestionBuilder().WithCreatedAt(base.Add(time.Hour)).WithSuggestedPrice("449.50"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pricingStatusURL, nil, "")

		var res resdto.PricingStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.All, 2)
		assert.Equal(t, older.String(), res.All[0].ID)
		assert.Equal(t, newer.String(), res.All[1].ID)
		require.NotNil(t, res.Latest)
		assert.Equal(t, newer.String(), res.Latest.ID)
		assert.Equal(t, "PENDING", res.Latest.Status)
		decimalEqual(t, "449.50", res.Latest.SuggestedPrice)
		decimalEqual(t, "499.00", res.Latest.CurrentPrice)
		assert.Equal(t, "2025-10-01T10:00:00Z", res.Latest.CreatedAt)
	})
}

// =============================================================================
// TestDenyPriceUpdate
// =============================================================================

func (s *PricingSuite) TestDenyPriceUpdate() {
	s.Run("Normal case: the single pending suggestion is deleted", func() {
		t := s.T()

		id := s.seed(builder.NewSuggestionBuilder())
		s.seed(builder.NewSuggestionBuilder().WithStatus(pricing.StatusApproved))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, denyURL, nil, "")

		var res resdto.DenyPriceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		if diff := cmp.Diff(resdto.DenyPriceResponse{Success: true, ID: id.String(), Deleted: 1}, res); diff != "" {
			t.Errorf("deny response mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, dbtest.CountSuggestions(t, s.DB))
	})

	s.Run("Normal case: an explicit id is deleted even when several are pending", func() {
		t := s.T()

		target := s.seed(builder.NewSuggestionBuilder())
		s.seed(builder.NewSuggestionBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, denyURL, map[string]string{"id": target.String()}, "")

		var res resdto.DenyPriceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, target.String(), res.ID)
		assert.Equal(t, int64(1), res.Deleted)
		assert.Equal(t, 1, dbtest.CountSuggestions(t, s.DB))
	})

	s.Run("Normal case: an unknown id deletes nothing", func() {
		t := s.T()

		s.seed(builder.NewSuggestionBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, denyURL, map[string]string{"id": uuid.NewString()}, "")

		var res resdto.DenyPriceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, int64(0), res.Deleted)
		assert.Equal(t, 1, dbtest.CountSuggestions(t, s.DB))
	})

	s.Run("Error case: no pending suggestion", func() {
		t := s.T()

		s.seed(builder.NewSuggestionBuilder().WithStatus(pricing.StatusApproved))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, denyURL, nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No pending price suggestion")
		assert.Equal(t, 1, dbtest.CountSuggestions(t, s.DB))
	})

	s.Run("Error case: more than one pending suggestion without id", func() {
		t := s.T()

		s.seed(builder.NewSuggestionBuilder())
		s.seed(builder.NewSuggestionBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, denyURL, nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "pass an id")
		assert.Equal(t, 2, dbtest.CountSuggestions(t, s.DB))
	})

	s.Run("Error case: id is not a UUID", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, denyURL, map[string]string{"id": "row-1"}, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "id must be a UUID")
	})
}

// =============================================================================
// TestEditPriceUpdate
// =============================================================================

func (s *PricingSuite) TestEditPriceUpdate() {
	s.Run("Normal case: price is stored and the acceptance workflow runs", func() {
		t := s.T()

		id := s.seed(builder.NewSuggestionBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, editURL, map[string]any{"new_price": 429}, "")

		var res resdto.EditPriceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.True(t, res.Success)
		assert.Equal(t, id.String(), res.ID)
		assert.Equal(t, int64(1), res.Updated)
		assert.JSONEq(t, `{"status":"queued"}`, string(res.WorkflowResponse))

		assert.True(t, decimal.RequireFromString("429").Equal(
			decimal.RequireFromString(dbtest.SuggestedPriceOf(t, s.DB, id))))

		calls := s.Upstream.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "/webhook/accept-price", calls[0].Path)
	})

	s.Run("Normal case: numeric string price with explicit id", func() {
		t := s.T()

		id := s.seed(builder.NewSuggestionBuilder())
		s.seed(builder.NewSuggestionBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, editURL,
			map[string]any{"new_price": "399.99", "id": id.String()}, "")

		var res resdto.EditPriceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, int64(1), res.Updated)
		assert.True(t, decimal.RequireFromString("399.99").Equal(
			decimal.RequireFromString(dbtest.SuggestedPriceOf(t, s.DB, id))))
	})

	s.Run("Error case: non-positive price leaves the table untouched", func() {
		t := s.T()

		id := s.seed(builder.NewSuggestionBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, editURL, map[string]any{"new_price": 0}, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "new_price must be greater than zero")
		assert.True(t, decimal.RequireFromString("459").Equal(
			decimal.RequireFromString(dbtest.SuggestedPriceOf(t, s.DB, id))))
		assert.Empty(t, s.Upstream.Calls())
	})

	s.Run("Error case: missing price", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, editURL, map[string]any{}, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "New price is required")
	})

	s.Run("Error case: no pending suggestion skips the workflow", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, editURL, map[string]any{"new_price": 10}, "")

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No pending price suggestion")
		assert.Empty(t, s.Upstream.Calls())
	})
}

// =============================================================================
// TestAcceptPriceUpdate / TestPublishPromotion
// =============================================================================

func (s *PricingSuite) TestAcceptPriceUpdate() {
	s.Run("Normal case: workflow response is relayed", func() {
		t := s.T()

		s.Upstream.SetWorkflowReply(`{"status":"accepted","updated":3}`)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, acceptURL, nil, "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		assert.JSONEq(t, `{"status":"accepted","updated":3}`, w.Body.String())

		calls := s.Upstream.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "/webhook/accept-price", calls[0].Path)
		assert.JSONEq(t, `{}`, string(calls[0].Body))
	})
}

func (s *PricingSuite) TestPublishPromotion() {
	s.Run("Normal case: promotion is forwarded unchanged", func() {
		t := s.T()

		promo := builder.NewScheme("Diwali Dhamaka", 20)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, publishURL, map[string]any{"promotion": promo}, "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"status":"queued"}`, w.Body.String())

		want, err := json.Marshal(promo)
		require.NoError(t, err)
		calls := s.Upstream.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "/webhook/publish-promotion", calls[0].Path)
		assert.JSONEq(t, string(want), string(calls[0].Body))
	})

	s.Run("Error case: missing promotion", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, publishURL, map[string]any{}, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "promotion is required")
		assert.Empty(t, s.Upstream.Calls())
	})
}

// =============================================================================
// TestListProducts
// =============================================================================

func (s *PricingSuite) TestListProducts() {
	s.Run("Normal case: every catalog page is collected in order", func() {
		t := s.T()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, productsURL, nil, companyHeader)

		var res resdto.ProductListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Items, 5)
		for i, p := range res.Items {
			if diff := cmp.Diff(builder.NewProduct(int64(i+1)), p); diff != "" {
				t.Errorf("product %d mismatch (-want +got):\n%s", i, diff)
			}
		}
	})

	s.Run("Normal case: application listing with an empty catalog", func() {
		t := s.T()

		s.Upstream.SetProductTotal(0)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, applicationURL, nil, companyHeader)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"items":[]}`, w.Body.String())
	})

	s.Run("Error case: company header missing", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "x-company-id header is required")
	})
}

// =============================================================================
// TestSuggestPromotion / TestOptimizeBatch
// =============================================================================

func (s *PricingSuite) TestSuggestPromotion() {
	s.Run("Normal case: knowledge-only schemes when search is not configured", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			suggestPromotionURL+"?product_name=Cotton%20Kurta&product_category=ethnic&current_price=499", nil, "")

		var res resdto.PromotionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "Cotton Kurta", res.Product)
		assert.Equal(t, "knowledge_only", res.Mode)
		assert.Equal(t, "gemini-2.5-flash", res.AIModel)
		require.Len(t, res.Schemes, 3)
		assert.Equal(t, "Festive Offer 1", res.Schemes[0].SchemeName)
		_, err := time.Parse(time.RFC3339, res.GeneratedAt)
		assert.NoError(t, err)
	})

	s.Run("Error case: product_name missing", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, suggestPromotionURL, nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "product_name is required")
	})
}

func (s *PricingSuite) TestOptimizeBatch() {
	s.Run("Normal case: rule-based prices for each product", func() {
		t := s.T()

		body := map[string]any{"products": []map[string]any{
			{"sku": "SKU-1", "current_price": 120, "competitor_price": 100, "cost_price": 50, "stock_level": 10, "units_sold": 5},
		}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, optimizeBatchURL, body, "")

		var res resdto.OptimizeBatchResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.OptimizedProducts, 1)
		assert.Equal(t, "SKU-1", res.OptimizedProducts[0].SKU)
		decimalEqual(t, "98", res.OptimizedProducts[0].OptimizedPrice)
		decimalEqual(t, "120", res.OptimizedProducts[0].OriginalPrice)
	})
}
