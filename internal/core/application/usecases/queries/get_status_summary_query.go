package queries

import (
	"errors"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/principal"
	"printflow/internal/pkg/guard"
)

var ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
	"GetStatusSummaryQuery must be created via NewGetStatusSummaryQuery constructor",
)

// GetStatusSummaryQuery asks for order counts per status over the orders a
// principal may see, as on the admin dashboard.
type GetStatusSummaryQuery struct {
	viewer principal.Principal

	guard guard.ConstructorGuard
}

func NewGetStatusSummaryQuery(viewer principal.Principal) (GetStatusSummaryQuery, error) {
	if err := viewer.Validate(); err != nil {
		return GetStatusSummaryQuery{}, err
	}
	return GetStatusSummaryQuery{viewer: viewer, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}

func (q GetStatusSummaryQuery) Viewer() principal.Principal {
	return q.viewer
}

// StatusCount is one dashboard tile.
type StatusCount struct {
	Status order.Status
	Label  string
	Count  int
}

// GetStatusSummaryQueryResponse holds the total and one entry per pipeline
// status, in pipeline order, including statuses with no orders.
type GetStatusSummaryQueryResponse struct {
	Total    int
	ByStatus []StatusCount
}

// Count returns the number of orders in status s.
func (r GetStatusSummaryQueryResponse) Count(s order.Status) int {
	for _, c := range r.ByStatus {
		if c.Status == s {
			return c.Count
		}
	}
	return 0
}
