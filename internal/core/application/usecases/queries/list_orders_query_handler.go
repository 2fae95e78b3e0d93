package queries

import (
	"context"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
)

// ListOrdersQueryHandler returns the orders visible to a principal.
// Admins get the whole collection; clients get their own orders.
type ListOrdersQueryHandler struct {
	reader OrderReader
	policy services.AccessPolicy
}

func NewListOrdersQueryHandler(reader OrderReader, policy services.AccessPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader, policy: policy}
}

// Handle returns copies of the visible orders, most recent first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	return h.policy.VisibleOrders(query.Viewer(), orders), nil
}
