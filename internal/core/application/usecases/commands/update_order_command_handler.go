package commands

import (
	"context"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies partial updates to existing orders.
// The identifier, owner and creation time of an order never change.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle loads the order, checks the editor may change it, merges the patch
// and stores the result. Checks run in that order, so a missing order is
// reported as not found even to a principal who could not edit it.
// Nothing is written unless every step succeeds.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !h.policy.CanEditOrder(cmd.Editor(), existing) {
		return nil, errs.NewForbiddenError("edit order "+existing.ID(), cmd.Editor().ID())
	}

	if err = existing.Apply(cmd.Patch()); err != nil {
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
