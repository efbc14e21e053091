package api

import (
	"log/slog"
	"net/http"

	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase"

	"github.com/gin-gonic/gin"
)

const HeaderWebhookSignature = "x-fp-signature"

type WebhookHandler struct {
	events usecase.WebhookEvents
}

func NewWebhookHandler(events usecase.WebhookEvents) *WebhookHandler {
	return &WebhookHandler{events: events}
}

// @Summary Platform webhook
// @Description Verifies and dispatches a platform event by name
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]bool
// @Failure 401 {object} map[string]bool
// @Failure 500 {object} map[string]bool
// @Router /api/webhook-events [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	event, err := h.events.Process(c.Request.Context(), body, c.GetHeader(HeaderWebhookSignature))
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrInvalidSignature):
			h.fail(c, http.StatusUnauthorized, err)
		case errs.Is(err, usecase.ErrMalformedEvent):
			h.fail(c, http.StatusBadRequest, err)
		default:
			slog.Error("Error processing webhook", "event", event, "error", err.Error())
			h.fail(c, http.StatusInternalServerError, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WebhookHandler) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"success": false})
}
