package commands

import (
	"bytes"
	"context"
	"encoding/json"

	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase/shared"
)

var ErrPromotionRequired = errs.New("promotion is required")

type PublishResult struct {
	StatusCode int
	Workflow   json.RawMessage
}

type PromotionCommands interface {
	// Publish forwards promotion to the promotion workflow without inspecting it.
	Publish(ctx context.Context, promotion json.RawMessage) (*PublishResult, error)
}

type promotionCommandsImpl struct {
	workflow shared.WorkflowGateway
}

func NewPromotionCommands(workflow shared.WorkflowGateway) PromotionCommands {
	return &promotionCommandsImpl{workflow: workflow}
}

func (uc *promotionCommandsImpl) Publish(ctx context.Context, promotion json.RawMessage) (*PublishResult, error) {
	trimmed := bytes.TrimSpace(promotion)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrPromotionRequired
	}

	reply, err := uc.workflow.Execute(ctx, shared.WorkflowPromotion, json.RawMessage(trimmed))
	if err != nil {
		return nil, errs.Mark(err, ErrWorkflowFailed)
	}
	return &PublishResult{StatusCode: reply.StatusCode, Workflow: reply.Body}, nil
}
