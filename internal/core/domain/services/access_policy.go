package services

import (
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/principal"
	"printflow/internal/core/ports"
)

// AccessPolicy decides what a principal may see and change.
// All checks are pure; a principal that was not built through
// principal.NewPrincipal is denied everything.
//
// Example usage:
//
//	policy := services.NewAccessPolicy(clients)
//	visible := policy.VisibleOrders(current, all)
//	if !policy.CanEditOrder(current, o) {
//	    return errs.NewForbiddenError("edit order "+o.ID(), current.ID())
//	}
type AccessPolicy struct {
	clients ports.ClientDirectory
}

// NewAccessPolicy creates a policy that validates admin order targets
// against clients.
func NewAccessPolicy(clients ports.ClientDirectory) AccessPolicy {
	return AccessPolicy{clients: clients}
}

// VisibleOrders returns the orders p may see, keeping their order.
// Admins see everything; clients see the orders they own.
func (AccessPolicy) VisibleOrders(p principal.Principal, orders []*order.Order) []*order.Order {
	if p.Validate() != nil {
		return []*order.Order{}
	}
	if p.IsAdmin() {
		visible := make([]*order.Order, len(orders))
		copy(visible, orders)
		return visible
	}

	visible := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.OwnerID() == p.ID() {
			visible = append(visible, o)
		}
	}
	return visible
}

// CanViewOrder reports whether o is part of p's visible set.
func (AccessPolicy) CanViewOrder(p principal.Principal, o *order.Order) bool {
	if p.Validate() != nil || o == nil {
		return false
	}
	return p.IsAdmin() || o.OwnerID() == p.ID()
}

// CanCreateOrderFor reports whether p may place an order owned by targetClientID.
//
// An admin may order for any client in the directory. An empty target is
// let through so that order validation can report the missing client id.
// A client may only order for themselves, either by naming their own id or
// by leaving the target empty.
func (a AccessPolicy) CanCreateOrderFor(p principal.Principal, targetClientID string) bool {
	if p.Validate() != nil {
		return false
	}
	switch p.Role() {
	case principal.Admin:
		if targetClientID == "" {
			return true
		}
		_, ok := a.clients.Client(targetClientID)
		return ok
	case principal.Client:
		return targetClientID == "" || targetClientID == p.ID()
	default:
		return false
	}
}

// CanEditOrder reports whether p may update o. Only admins edit orders.
func (AccessPolicy) CanEditOrder(p principal.Principal, o *order.Order) bool {
	return p.Validate() == nil && o != nil && p.IsAdmin()
}

// CanAssignTracking reports whether p may add or remove tracking numbers on o.
// Tracking follows the same admin-only rule as other edits.
func (a AccessPolicy) CanAssignTracking(p principal.Principal, o *order.Order) bool {
	return a.CanEditOrder(p, o)
}
