package commands

import (
	"context"
	"encoding/json"

	"pricing-panel/internal/domain/pricing"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrWorkflowFailed = errs.New("workflow trigger failed")
	ErrStoreFailed    = errs.New("pricing table update failed")
)

type DenyResult struct {
	ID      uuid.UUID
	Deleted int64
}

type EditResult struct {
	ID       uuid.UUID
	Updated  int64
	Workflow json.RawMessage
}

type AcceptResult struct {
	Workflow json.RawMessage
}

type PriceDecisionCommands interface {
	Accept(ctx context.Context) (*AcceptResult, error)
	// Deny removes the suggestion with id, or the single PENDING row when id is nil.
	Deny(ctx context.Context, id *uuid.UUID) (*DenyResult, error)
	// Edit re-prices the target row and then always triggers the acceptance workflow.
	Edit(ctx context.Context, id *uuid.UUID, price pricing.Price) (*EditResult, error)
}

type priceDecisionImpl struct {
	store    shared.PriceSuggestionStore
	workflow shared.WorkflowGateway
}

func NewPriceDecisionCommands(store shared.PriceSuggestionStore, workflow shared.WorkflowGateway) PriceDecisionCommands {
	return &priceDecisionImpl{store: store, workflow: workflow}
}

func (uc *priceDecisionImpl) Accept(ctx context.Context) (*AcceptResult, error) {
	reply, err := uc.trigger(ctx)
	if err != nil {
		return nil, err
	}
	return &AcceptResult{Workflow: reply}, nil
}

func (uc *priceDecisionImpl) Deny(ctx context.Context, id *uuid.UUID) (*DenyResult, error) {
	var res DenyResult
	err := uc.store.WithinTx(ctx, func(ctx context.Context, tx shared.PriceSuggestionTx) error {
		target, err := resolveTarget(ctx, tx, id)
		if err != nil {
			return err
		}
		n, err := tx.DeleteByID(ctx, target)
		if err != nil {
			return err
		}
		res = DenyResult{ID: target, Deleted: n}
		return nil
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return &res, nil
}

func (uc *priceDecisionImpl) Edit(ctx context.Context, id *uuid.UUID, price pricing.Price) (*EditResult, error) {
	var res EditResult
	err := uc.store.WithinTx(ctx, func(ctx context.Context, tx shared.PriceSuggestionTx) error {
		target, err := resolveTarget(ctx, tx, id)
		if err != nil {
			return err
		}
		n, err := tx.UpdateSuggestedPrice(ctx, target, price.Decimal())
		if err != nil {
			return err
		}
		res = EditResult{ID: target, Updated: n}
		return nil
	})
	if err != nil {
		return nil, storeErr(err)
	}

	reply, err := uc.trigger(ctx)
	if err != nil {
		return nil, err
	}
	res.Workflow = reply
	return &res, nil
}

func (uc *priceDecisionImpl) trigger(ctx context.Context) (json.RawMessage, error) {
	reply, err := uc.workflow.Execute(ctx, shared.WorkflowPriceAcceptance, nil)
	if err != nil {
		return nil, errs.Mark(err, ErrWorkflowFailed)
	}
	return reply.Body, nil
}

func resolveTarget(ctx context.Context, tx shared.PriceSuggestionTx, id *uuid.UUID) (uuid.UUID, error) {
	if id != nil {
		return *id, nil
	}
	pending, err := tx.ListPendingForUpdate(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return pricing.ResolvePendingTarget(pending)
}

// storeErr keeps target-resolution errors as they are and tags everything else.
func storeErr(err error) error {
	if errs.Is(err, pricing.ErrNoPendingSuggestion) || errs.Is(err, pricing.ErrAmbiguousPendingState) {
		return err
	}
	return errs.Mark(err, ErrStoreFailed)
}
