package memory

import (
	"context"
	"errors"

	"printflow/internal/core/ports"
)

// ErrInvalidTransaction is returned by Commit and Rollback when no
// transaction is active.
var ErrInvalidTransaction = errors.New("invalid transaction: no transaction in progress")

// UnitOfWorkFactory creates UnitOfWork instances over one Store.
// Each business operation gets a fresh unit of work with its own staged writes.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory whose units of work commit into store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork with no active transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages order writes and applies them to the Store on Commit.
// Reads through its repository see the staged writes on top of the store.
// Without an active transaction, repository writes go straight to the store.
//
// Example usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("failed to begin transaction: %w", err)
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
type UnitOfWork struct {
	store  *Store
	active bool
	writes []write
}

// Begin starts a transaction. Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.active {
		return nil
	}

	uow.active = true
	uow.writes = nil
	return nil
}

// Commit applies every staged write to the store at once.
// If any write is rejected, none are applied. The transaction ends either way.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrInvalidTransaction
	}

	writes := uow.writes
	uow.active = false
	uow.writes = nil

	if err := ctx.Err(); err != nil {
		return err
	}
	return uow.store.apply(writes)
}

// Rollback discards staged writes and ends the transaction.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrInvalidTransaction
	}

	uow.active = false
	uow.writes = nil
	return nil
}

// OrderRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) stage(w write) error {
	if !uow.active {
		return uow.store.apply([]write{w})
	}
	uow.writes = append(uow.writes, w)
	return nil
}

// staged returns the latest staged version of id, if any.
func (uow *UnitOfWork) staged(id string) (write, bool) {
	for i := len(uow.writes) - 1; i >= 0; i-- {
		if uow.writes[i].order.ID() == id {
			return uow.writes[i], true
		}
	}
	return write{}, false
}
