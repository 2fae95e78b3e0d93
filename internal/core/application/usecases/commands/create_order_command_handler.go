package commands

import (
	"context"
	"strings"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/pkg/errs"
)

// CreateOrderCommandHandler places new orders.
// New orders start Pending with no tracking numbers and an estimate of
// creation time plus the configured lead time.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy, kernel.NewSystemClock(), order.DefaultLeadTime)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrForbidden) {
//	    // submitter may not order for that client
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	clock      kernel.Clock
	leadTime   time.Duration
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// A non-positive leadTime falls back to order.DefaultLeadTime.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
	clock kernel.Clock,
	leadTime time.Duration,
) CreateOrderCommandHandler {
	if leadTime <= 0 {
		leadTime = order.DefaultLeadTime
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clock,
		leadTime:   leadTime,
	}
}

// Handle checks the policy, validates the payload, then stores the new order.
// Clients that leave the client id empty order for themselves.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	submitter := cmd.Submitter()
	target := strings.TrimSpace(cmd.Payload().ClientID)
	if !h.policy.CanCreateOrderFor(submitter, target) {
		return nil, errs.NewForbiddenError("create an order for client "+target, submitter.ID())
	}

	payload, err := order.ValidateNewOrder(cmd.Payload(), submitter.Role())
	if err != nil {
		return nil, err
	}
	ownerID := payload.ClientID
	if ownerID == "" {
		ownerID = submitter.ID()
	}
	specs, err := payload.Specifications.Build()
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(id, ownerID, payload.ProjectName, specs, payload.Notes, h.clock.Now(), h.leadTime)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
