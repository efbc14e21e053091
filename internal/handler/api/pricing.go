package api

import (
	"net/http"

	reqdto "pricing-panel/internal/handler/dto/request"
	resdto "pricing-panel/internal/handler/dto/response"
	"pricing-panel/internal/handler/httperr"
	"pricing-panel/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	optimizer usecase.PricingOptimizer
}

func NewPricingHandler(optimizer usecase.PricingOptimizer) *PricingHandler {
	return &PricingHandler{optimizer: optimizer}
}

// @Summary Optimize prices
// @Description Rule-based batch pricing against competitor and cost prices
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.OptimizeBatchRequest true "Products"
// @Success 200 {object} resdto.OptimizeBatchResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pricing/optimize-batch [post]
func (h *PricingHandler) OptimizeBatch(c *gin.Context) {
	var req reqdto.OptimizeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	out, err := h.optimizer.OptimizeBatch(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithMappedError(c, err, "Failed to optimize prices")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOptimizedPrices(out))
}
