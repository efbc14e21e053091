package api

import (
	"net/http"

	"pricing-panel/internal/domain/catalog"
	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/domain/promotion"
	reqdto "pricing-panel/internal/handler/dto/request"
	"pricing-panel/internal/handler/httperr"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase"
	"pricing-panel/internal/usecase/commands"
	"pricing-panel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// First match wins. Upstream causes are logged by the error pipeline and never
// shown to the client.
var errorMappings = []errorMapping{
	{catalog.ErrCompanyRequired, http.StatusBadRequest, "x-company-id header is required"},
	{catalog.ErrApplicationRequired, http.StatusBadRequest, "application_id is required"},
	{promotion.ErrProductNameRequired, http.StatusBadRequest, "product_name is required"},
	{promotion.ErrNegativePrice, http.StatusBadRequest, "current_price must not be negative"},
	{reqdto.ErrInvalidCurrentPrice, http.StatusBadRequest, "current_price must be a number"},
	{reqdto.ErrInvalidSuggestionID, http.StatusBadRequest, "id must be a UUID"},
	{pricing.ErrInvalidPrice, http.StatusBadRequest, "new_price must be greater than zero"},
	{pricing.ErrEmptyBatch, http.StatusBadRequest, "at least one product is required"},
	{pricing.ErrInvalidCompetitorPrice, http.StatusBadRequest, "competitor_price must be greater than zero"},
	{pricing.ErrInvalidCostPrice, http.StatusBadRequest, "cost_price must not be negative"},
	{pricing.ErrInvalidInventoryMetrics, http.StatusBadRequest, "stock and sales counts must not be negative"},
	{commands.ErrPromotionRequired, http.StatusBadRequest, "promotion is required"},
	{pricing.ErrNoPendingSuggestion, http.StatusNotFound, "No pending price suggestion"},
	{pricing.ErrAmbiguousPendingState, http.StatusConflict, "More than one pending price suggestion, pass an id"},
	{errs.ErrUpstreamContractViolated, http.StatusInternalServerError, "Catalog service returned an invalid response"},
	{queries.ErrCatalogUnavailable, http.StatusInternalServerError, "Failed to fetch products"},
	{queries.ErrPricingTableUnavailable, http.StatusInternalServerError, "Failed to fetch pricing status"},
	{commands.ErrStoreFailed, http.StatusInternalServerError, "Failed to update pricing table"},
	{commands.ErrWorkflowFailed, http.StatusInternalServerError, "Failed to trigger workflow"},
	{usecase.ErrMalformedModelOutput, http.StatusInternalServerError, "AI response could not be parsed"},
	{usecase.ErrGenerationFailed, http.StatusInternalServerError, "Failed to generate promotion"},
}

func abortWithMappedError(c *gin.Context, err error, fallback string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}
