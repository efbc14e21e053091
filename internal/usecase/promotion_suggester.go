package usecase

import (
	"context"
	"log/slog"

	"pricing-panel/internal/domain/promotion"
	"pricing-panel/internal/pkg/clock"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase/prompts"
	"pricing-panel/internal/usecase/shared"
)

var (
	ErrGenerationFailed     = errs.New("promotion generation failed")
	ErrMalformedModelOutput = errs.New("model returned malformed promotion JSON")
)

type PromotionSuggester interface {
	Suggest(ctx context.Context, req promotion.Request) (*promotion.Result, error)
}

// suggestionTemperature is the sampling temperature of every promotion request.
const suggestionTemperature float32 = 0.7

type promotionSuggesterImpl struct {
	negotiator shared.SearchToolNegotiator
	generator  shared.TextGenerator
	cache      shared.PromotionCache
	clock      clock.Clock
	logger     *slog.Logger
}

func NewPromotionSuggester(
	negotiator shared.SearchToolNegotiator,
	generator shared.TextGenerator,
	cache shared.PromotionCache,
	clk clock.Clock,
	logger *slog.Logger,
) PromotionSuggester {
	return &promotionSuggesterImpl{
		negotiator: negotiator,
		generator:  generator,
		cache:      cache,
		clock:      clk,
		logger:     logger,
	}
}

// Suggest makes exactly one model call. The search tool is attached only when
// negotiation succeeds; otherwise the knowledge-only prompt is used.
func (uc *promotionSuggesterImpl) Suggest(ctx context.Context, req promotion.Request) (*promotion.Result, error) {
	key := req.CacheKey()
	if cached, ok, err := uc.cache.Get(ctx, key); err != nil {
		uc.logger.Warn("promotion cache read failed", "key", key, "error", err.Error())
	} else if ok {
		uc.logger.Info("promotion served from cache", "product", req.ProductName)
		return cached, nil
	}

	now := uc.clock.Now()

	capability := uc.negotiator.Negotiate(ctx)
	defer func() {
		if err := capability.Close(); err != nil {
			uc.logger.Warn("search tool session close failed", "error", err.Error())
		}
	}()

	mode := promotion.ModeKnowledgeOnly
	genReq := shared.GenerationRequest{Temperature: suggestionTemperature, JSONOnly: true}
	if session, ok := capability.Session(); ok {
		mode = promotion.ModeSearchAugmented
		genReq.Tools = session.Tools()
	} else {
		uc.logger.Info("generating promotion without search tool", "reason", capability.Reason())
	}

	msgs, err := prompts.RenderPromotion(ctx, mode, req, clock.HumanDate(now))
	if err != nil {
		return nil, errs.Mark(err, ErrGenerationFailed)
	}
	genReq.Messages = msgs

	text, err := uc.generator.Generate(ctx, genReq)
	if err != nil {
		uc.logger.Error("promotion generation failed", "mode", mode.String(), "error", err.Error())
		return nil, errs.Mark(err, ErrGenerationFailed)
	}

	schemes, err := promotion.ParseSchemes(text)
	if err != nil {
		uc.logger.Error("promotion output rejected", "mode", mode.String(), "error", err.Error())
		return nil, errs.Mark(err, ErrMalformedModelOutput)
	}

	result := &promotion.Result{
		Product:     req.ProductName,
		GeneratedAt: now,
		Schemes:     schemes,
		Mode:        mode,
		AIModel:     uc.generator.ModelName(),
	}
	if err := uc.cache.Set(ctx, key, result); err != nil {
		uc.logger.Warn("promotion cache write failed", "key", key, "error", err.Error())
	}
	return result, nil
}
