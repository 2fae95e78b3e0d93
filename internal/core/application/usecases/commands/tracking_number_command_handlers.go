package commands

import (
	"context"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/pkg/errs"
)

// AddTrackingNumberCommandHandler appends tracking numbers to orders.
type AddTrackingNumberCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

func NewAddTrackingNumberCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) AddTrackingNumberCommandHandler {
	return AddTrackingNumberCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h *AddTrackingNumberCommandHandler) Handle(ctx context.Context, cmd AddTrackingNumberCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return changeTracking(ctx, h.uowFactory, cmd.Editor().ID(), cmd.OrderID(),
		func(o *order.Order) error { return o.AddTrackingNumber(cmd.Number()) },
		func(o *order.Order) bool { return h.policy.CanAssignTracking(cmd.Editor(), o) },
	)
}

// RemoveTrackingNumberCommandHandler removes tracking numbers from orders.
type RemoveTrackingNumberCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

func NewRemoveTrackingNumberCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) RemoveTrackingNumberCommandHandler {
	return RemoveTrackingNumberCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h *RemoveTrackingNumberCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveTrackingNumberCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return changeTracking(ctx, h.uowFactory, cmd.Editor().ID(), cmd.OrderID(),
		func(o *order.Order) error { return o.RemoveTrackingNumber(cmd.Index()) },
		func(o *order.Order) bool { return h.policy.CanAssignTracking(cmd.Editor(), o) },
	)
}

// changeTracking runs change on one order inside a unit of work once allowed approves it.
func changeTracking(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	editorID, orderID string,
	change func(*order.Order) error,
	allowed func(*order.Order) bool,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !allowed(existing) {
		return nil, errs.NewForbiddenError("change tracking numbers of order "+existing.ID(), editorID)
	}

	if err = change(existing); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
