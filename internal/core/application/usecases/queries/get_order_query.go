package queries

import (
	"errors"
	"strings"

	"printflow/internal/core/domain/model/principal"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery asks for a single order, as shown on the order tracker.
type GetOrderQuery struct {
	viewer  principal.Principal
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(viewer principal.Principal, orderID string) (GetOrderQuery, error) {
	orderID = strings.TrimSpace(orderID)
	var idErr error
	if orderID == "" {
		idErr = errs.NewValueIsRequiredError("order id")
	}
	if err := errors.Join(viewer.Validate(), idErr); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{viewer: viewer, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Viewer() principal.Principal {
	return q.viewer
}

func (q GetOrderQuery) OrderID() string {
	return q.orderID
}
