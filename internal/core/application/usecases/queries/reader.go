// Package queries contains read-only operations over orders.
// Query handlers read committed state directly and never open a unit of work.
package queries

import (
	"context"

	"printflow/internal/core/domain/model/order"
)

// OrderReader is the read side of the order store.
type OrderReader interface {
	Get(ctx context.Context, id string) (*order.Order, error)
	List(ctx context.Context) ([]*order.Order, error)
}
