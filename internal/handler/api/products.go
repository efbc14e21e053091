package api

import (
	"errors"
	"io"
	"net/http"

	"pricing-panel/internal/domain/catalog"
	reqdto "pricing-panel/internal/handler/dto/request"
	resdto "pricing-panel/internal/handler/dto/response"
	"pricing-panel/internal/handler/httperr"
	"pricing-panel/internal/handler/middleware"
	"pricing-panel/internal/usecase"
	"pricing-panel/internal/usecase/commands"
	"pricing-panel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalog   queries.CatalogQueries
	pricing   queries.PricingQueries
	decisions commands.PriceDecisionCommands
	promos    commands.PromotionCommands
	suggester usecase.PromotionSuggester
}

func NewProductHandler(
	catalogQueries queries.CatalogQueries,
	pricingQueries queries.PricingQueries,
	decisions commands.PriceDecisionCommands,
	promos commands.PromotionCommands,
	suggester usecase.PromotionSuggester,
) *ProductHandler {
	return &ProductHandler{
		catalog:   catalogQueries,
		pricing:   pricingQueries,
		decisions: decisions,
		promos:    promos,
		suggester: suggester,
	}
}

// @Summary List company products
// @Description Walks every catalog page of the company and returns all products
// @Tags products
// @Produce json
// @Param x-company-id header string true "Company ID"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)
	scope, err := catalog.NewCompanyScope(companyID)
	if err != nil {
		abortWithMappedError(c, err, "Invalid request")
		return
	}
	h.listScope(c, scope)
}

// @Summary List application products
// @Tags products
// @Produce json
// @Param x-company-id header string true "Company ID"
// @Param application_id path string true "Application ID"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/products/application/{application_id} [get]
func (h *ProductHandler) ListApplicationProducts(c *gin.Context) {
	companyID, _ := middleware.GetCompanyID(c)
	scope, err := catalog.NewApplicationScope(companyID, c.Param("application_id"))
	if err != nil {
		abortWithMappedError(c, err, "Invalid request")
		return
	}
	h.listScope(c, scope)
}

func (h *ProductHandler) listScope(c *gin.Context, scope catalog.Scope) {
	products, err := h.catalog.ListProducts(c.Request.Context(), scope)
	if err != nil {
		abortWithMappedError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(products))
}

// @Summary Pricing status
// @Description Returns every row of the pricing table and the last one as latest
// @Tags pricing
// @Produce json
// @Success 200 {object} resdto.PricingStatusResponse
// @Failure 500 {object} httperr.Response
// @Router /api/products/pricing-status [get]
func (h *ProductHandler) PricingStatus(c *gin.Context) {
	status, err := h.pricing.GetStatus(c.Request.Context())
	if err != nil {
		abortWithMappedError(c, err, "Failed to fetch pricing status")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingStatus(status))
}

// @Summary Suggest promotions
// @Description Asks the model for promotional discount schemes, using web search when configured
// @Tags promotions
// @Produce json
// @Param product_name query string true "Product name"
// @Param product_category query string false "Product category"
// @Param current_price query number false "Current price"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/products/suggest-promotion [get]
func (h *ProductHandler) SuggestPromotion(c *gin.Context) {
	var q reqdto.SuggestPromotionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "product_name is required", nil)
		return
	}
	req, err := q.ToDomain()
	if err != nil {
		abortWithMappedError(c, err, "Invalid request")
		return
	}

	result, err := h.suggester.Suggest(c.Request.Context(), req)
	if err != nil {
		abortWithMappedError(c, err, "Failed to generate promotion")
		return
	}
	res, err := resdto.FromPromotionResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to generate promotion", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Accept price update
// @Description Triggers the acceptance workflow and relays its response
// @Tags pricing
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} httperr.Response
// @Router /api/products/accept-price-update [post]
func (h *ProductHandler) AcceptPriceUpdate(c *gin.Context) {
	result, err := h.decisions.Accept(c.Request.Context())
	if err != nil {
		abortWithMappedError(c, err, "Failed to trigger workflow")
		return
	}
	c.JSON(http.StatusOK, result.Workflow)
}

// @Summary Deny price update
// @Description Deletes the suggestion with id, or the single pending one
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.DenyPriceRequest false "Target suggestion"
// @Success 200 {object} resdto.DenyPriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/products/deny-price-update [post]
func (h *ProductHandler) DenyPriceUpdate(c *gin.Context) {
	var req reqdto.DenyPriceRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	target, err := req.Target()
	if err != nil {
		abortWithMappedError(c, err, "Invalid request")
		return
	}

	result, err := h.decisions.Deny(c.Request.Context(), target)
	if err != nil {
		abortWithMappedError(c, err, "Failed to deny price update")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDenyResult(result))
}

// @Summary Edit price update
// @Description Sets a new suggested price, then triggers the acceptance workflow
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.EditPriceRequest true "New price and optional target"
// @Success 200 {object} resdto.EditPriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/products/edit-price-update [post]
func (h *ProductHandler) EditPriceUpdate(c *gin.Context) {
	var req reqdto.EditPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "New price is required", nil)
		return
	}
	price, err := req.ToDomain()
	if err != nil {
		abortWithMappedError(c, err, "Invalid request")
		return
	}
	target, err := req.Target()
	if err != nil {
		abortWithMappedError(c, err, "Invalid request")
		return
	}

	result, err := h.decisions.Edit(c.Request.Context(), target, price)
	if err != nil {
		abortWithMappedError(c, err, "Failed to edit price update")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEditResult(result))
}

// @Summary Publish promotion
// @Description Forwards the promotion as is to the promotion workflow and relays its response
// @Tags promotions
// @Accept json
// @Produce json
// @Param request body reqdto.PublishPromotionRequest true "Promotion"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/products/publish-promotion [post]
func (h *ProductHandler) PublishPromotion(c *gin.Context) {
	var req reqdto.PublishPromotionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.promos.Publish(c.Request.Context(), req.Promotion)
	if err != nil {
		abortWithMappedError(c, err, "Failed to publish promotion")
		return
	}
	c.JSON(http.StatusOK, result.Workflow)
}

// bindOptionalJSON treats an empty body as an empty object.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
