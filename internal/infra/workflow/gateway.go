package workflow

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"pricing-panel/internal/infra"
	"pricing-panel/internal/infra/upstream"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase/shared"
)

var ErrUnknownWorkflow = errs.New("unknown workflow")

var emptyObject = json.RawMessage(`{}`)

// Gateway posts payloads to the merchant's automation webhooks.
type Gateway struct {
	http   *upstream.Client
	urls   map[shared.Workflow]string
	logger *slog.Logger
}

func NewGateway(cfg config.WorkflowConfig, httpClient *http.Client, logger *slog.Logger) *Gateway {
	return &Gateway{
		http: upstream.NewClient(httpClient, cfg.Timeout),
		urls: map[shared.Workflow]string{
			shared.WorkflowPriceAcceptance: cfg.AcceptURL,
			shared.WorkflowPromotion:       cfg.PromotionURL,
		},
		logger: logger,
	}
}

var _ shared.WorkflowGateway = (*Gateway)(nil)

func (g *Gateway) Execute(ctx context.Context, wf shared.Workflow, payload any) (*shared.WorkflowReply, error) {
	target, ok := g.urls[wf]
	if !ok || target == "" {
		return nil, errs.Wrapf(ErrUnknownWorkflow, "%s", wf)
	}
	if payload == nil {
		payload = emptyObject
	}

	resp, err := g.http.DoJSON(ctx, http.MethodPost, target, nil, payload)
	if err != nil {
		return nil, infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure, "workflow "+string(wf)+" failed", err)
	}

	g.logger.Info("workflow triggered", "workflow", string(wf), "status", resp.StatusCode)
	return &shared.WorkflowReply{StatusCode: resp.StatusCode, Body: relayBody(resp.Body)}, nil
}

// relayBody keeps JSON replies as they are and wraps anything else as a JSON string.
func relayBody(body []byte) json.RawMessage {
	if len(body) == 0 {
		return emptyObject
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, err := json.Marshal(string(body))
	if err != nil {
		return emptyObject
	}
	return quoted
}
