package queries

import (
	"errors"

	"printflow/internal/core/domain/model/principal"
	"printflow/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery asks for every order a principal may see, most recent first.
//
// Example:
//
//	query, err := NewListOrdersQuery(current)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	viewer principal.Principal

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(viewer principal.Principal) (ListOrdersQuery, error) {
	if err := viewer.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{viewer: viewer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Viewer() principal.Principal {
	return q.viewer
}
