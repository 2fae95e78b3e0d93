package commands

import (
	"errors"
	"strings"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/principal"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is a partial update of one order by a principal.
//
// Example:
//
//	printing := order.Printing
//	cmd, err := NewUpdateOrderCommand(admin, "1003", order.Patch{Status: &printing})
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	editor  principal.Principal
	orderID string
	patch   order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand requires a constructed editor and an order id.
func NewUpdateOrderCommand(editor principal.Principal, orderID string, patch order.Patch) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEditor(editor),
		cmd.setOrderID(orderID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Editor() principal.Principal {
	return c.editor
}

func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c *UpdateOrderCommand) setEditor(p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.editor = p
	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}
