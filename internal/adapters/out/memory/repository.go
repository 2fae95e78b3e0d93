package memory

import (
	"context"
	"fmt"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on top of a UnitOfWork.
type OrderRepository struct {
	uow *UnitOfWork
}

// NextID reserves the next identifier from the store's counter.
// A reserved id is burned even if the transaction rolls back.
func (r *OrderRepository) NextID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.uow.store.reserveID(), nil
}

// Add stages a new order. It fails if the id is already in use.
func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if r.exists(aggregate.ID()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("order %s already exists", aggregate.ID()))
	}

	return r.uow.stage(write{kind: writeAdd, order: aggregate.Clone()})
}

// Update stages a replacement for an existing order.
func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.exists(aggregate.ID()) {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return r.uow.stage(write{kind: writeUpdate, order: aggregate.Clone()})
}

// Get returns a copy of the order as this unit of work sees it.
func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w, ok := r.uow.staged(id); ok {
		return w.order.Clone(), nil
	}

	return r.uow.store.Get(ctx, id)
}

// List returns copies of all orders as this unit of work sees them,
// most recent first.
func (r *OrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	stored, err := r.uow.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(r.uow.writes) == 0 {
		return stored, nil
	}

	added := make([]*order.Order, 0)
	for _, w := range r.uow.writes {
		if w.kind == writeAdd {
			added = append([]*order.Order{w.order}, added...)
		}
	}

	out := make([]*order.Order, 0, len(added)+len(stored))
	for _, o := range added {
		latest, _ := r.uow.staged(o.ID())
		out = append(out, latest.order.Clone())
	}
	for _, o := range stored {
		if latest, ok := r.uow.staged(o.ID()); ok {
			o = latest.order.Clone()
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderRepository) exists(id string) bool {
	if _, ok := r.uow.staged(id); ok {
		return true
	}
	return r.uow.store.contains(id)
}
