package queries

import (
	"context"
	"errors"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/pkg/errs"
)

// GetOrderQueryHandler returns one order if the viewer may see it.
type GetOrderQueryHandler struct {
	reader OrderReader
	policy services.AccessPolicy
}

func NewGetOrderQueryHandler(reader OrderReader, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader, policy: policy}
}

// Handle reports an order the viewer may not see as not found, so clients
// cannot probe for other clients' order ids.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if !h.policy.CanViewOrder(query.Viewer(), o) {
		return nil, errs.NewObjectNotFoundErrorWithCause("order", query.OrderID(),
			errors.New("not visible to principal "+query.Viewer().ID()))
	}

	return o, nil
}
