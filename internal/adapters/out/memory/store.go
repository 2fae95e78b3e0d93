// Package memory provides the in-memory adapters of the print portal: the
// order store with its unit of work, the client directory and the mocked
// credential store.
//
// Usage Patterns:
//
//	store := memory.NewStore(1000)
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	repo := uow.OrderRepository()
//	id, _ := repo.NextID(ctx)
//	// build the order, then
//	if err := repo.Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Orders handed in and out are cloned, so nothing outside the store can
// mutate the collection except through a committed unit of work.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
)

// DefaultIDOffset makes the first order identifier "1001".
const DefaultIDOffset = 1000

type writeKind int

const (
	writeAdd writeKind = iota + 1
	writeUpdate
)

type write struct {
	kind  writeKind
	order *order.Order
}

// Store owns the order collection for the lifetime of the process.
// It keeps orders most recent first and hands out identifiers from a
// strictly increasing counter.
type Store struct {
	mu     sync.RWMutex
	ids    []string
	orders map[string]*order.Order
	lastID int
}

// NewStore creates an empty store whose first identifier is idOffset+1.
func NewStore(idOffset int) *Store {
	return &Store{
		ids:    make([]string, 0),
		orders: make(map[string]*order.Order),
		lastID: idOffset,
	}
}

// Get returns a copy of the order with the given id.
func (s *Store) Get(ctx context.Context, id string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o.Clone(), nil
}

// List returns copies of all orders, most recent first.
func (s *Store) List(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*order.Order, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.orders[id].Clone())
	}
	return out, nil
}

// Len returns the number of stored orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *Store) reserveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	return strconv.Itoa(s.lastID)
}

func (s *Store) contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.orders[id]
	return ok
}

// apply checks the whole batch first and only then writes it, so a batch
// is either stored completely or not at all.
func (s *Store) apply(writes []write) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := make(map[string]bool)
	for _, w := range writes {
		id := w.order.ID()
		_, stored := s.orders[id]
		switch w.kind {
		case writeAdd:
			if stored || added[id] {
				return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("order %s already exists", id))
			}
			added[id] = true
		case writeUpdate:
			if !stored && !added[id] {
				return errs.NewObjectNotFoundError("order", id)
			}
		}
	}

	for _, w := range writes {
		id := w.order.ID()
		if w.kind == writeAdd {
			s.ids = append([]string{id}, s.ids...)
			s.advanceCounter(id)
		}
		s.orders[id] = w.order.Clone()
	}
	return nil
}

// advanceCounter keeps restored numeric ids from ever being handed out again.
func (s *Store) advanceCounter(id string) {
	n, err := strconv.Atoi(id)
	if err == nil && n > s.lastID {
		s.lastID = n
	}
}
