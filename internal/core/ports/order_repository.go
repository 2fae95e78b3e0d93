// Package ports defines the contracts between the order core and the
// adapters that store orders and know about users.
package ports

import (
	"context"

	"printflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted, so there is no Remove.
type OrderRepository interface {
	// NextID reserves a fresh order identifier. Identifiers come from a
	// strictly increasing counter and are never handed out twice, even when
	// the order that reserved one is never added.
	NextID(ctx context.Context) (string, error)

	// Add stores a new order in front of the collection (most recent first).
	// The order must be valid and its id must not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces an existing order in place, keeping its position.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id string) (*order.Order, error)

	// List returns every order, most recently created first.
	List(ctx context.Context) ([]*order.Order, error)
}
