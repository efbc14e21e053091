package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"

	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase/shared"
)

const EventProductDelete = "company/product/delete"

var (
	ErrInvalidSignature = errs.New("webhook signature mismatch")
	ErrMalformedEvent   = errs.New("webhook body is not a valid event")
	ErrEventHandler     = errs.New("webhook handler failed")
)

type WebhookEventInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Version  string `json:"version"`
}

// WebhookEvent is the envelope the platform posts for every subscribed event.
type WebhookEvent struct {
	Event     WebhookEventInfo `json:"event"`
	CompanyID json.Number      `json:"company_id"`
	Payload   json.RawMessage  `json:"payload"`
}

// Key is the registry name of the event, e.g. "company/product/delete".
func (e WebhookEvent) Key() string {
	return e.Event.Category + "/" + e.Event.Name + "/" + e.Event.Type
}

type WebhookHandlerFunc func(ctx context.Context, evt WebhookEvent) error

type WebhookEvents interface {
	// Process verifies and dispatches one raw delivery. Unregistered events are acknowledged.
	Process(ctx context.Context, body []byte, signature string) (string, error)
}

type webhookEventsImpl struct {
	secret   []byte
	handlers map[string]WebhookHandlerFunc
	cache    shared.PromotionCache
	logger   *slog.Logger
}

func NewWebhookEvents(cfg config.WebhookConfig, cache shared.PromotionCache, logger *slog.Logger) WebhookEvents {
	w := &webhookEventsImpl{
		secret:   []byte(cfg.Secret),
		handlers: map[string]WebhookHandlerFunc{},
		cache:    cache,
		logger:   logger,
	}
	w.handlers[EventProductDelete] = w.onProductDelete
	return w
}

func (w *webhookEventsImpl) Process(ctx context.Context, body []byte, signature string) (string, error) {
	if len(w.secret) > 0 && !w.validSignature(body, signature) {
		return "", ErrInvalidSignature
	}

	var evt WebhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return "", errs.Mark(err, ErrMalformedEvent)
	}
	key := evt.Key()
	w.logger.Info("webhook event received", "event", key, "company_id", evt.CompanyID.String())

	handler, ok := w.handlers[key]
	if !ok {
		w.logger.Info("no handler registered for webhook event", "event", key)
		return key, nil
	}
	if err := handler(ctx, evt); err != nil {
		w.logger.Error("webhook event processing failed", "event", key, "error", err.Error())
		return key, errs.Mark(err, ErrEventHandler)
	}
	return key, nil
}

func (w *webhookEventsImpl) validSignature(body []byte, signature string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) == 0 {
		return false
	}
	mac := hmac.New(sha256.New, w.secret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

type productDeletePayload struct {
	Product struct {
		UID  json.Number `json:"uid"`
		Name string      `json:"name"`
	} `json:"product"`
}

// onProductDelete drops cached promotions for the deleted product.
func (w *webhookEventsImpl) onProductDelete(ctx context.Context, evt WebhookEvent) error {
	var p productDeletePayload
	if len(evt.Payload) > 0 {
		if err := json.Unmarshal(evt.Payload, &p); err != nil {
			return errs.Wrap(err, "decode product delete payload")
		}
	}
	w.logger.Info("product deleted", "uid", p.Product.UID.String(), "name", p.Product.Name)
	if p.Product.Name == "" {
		return nil
	}
	return w.cache.DeleteProduct(ctx, p.Product.Name)
}
