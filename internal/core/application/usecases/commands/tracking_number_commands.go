package commands

import (
	"errors"
	"strings"

	"printflow/internal/core/domain/model/principal"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var (
	ErrAddTrackingNumberCommandIsNotConstructed = errors.New(
		"AddTrackingNumberCommand must be created via NewAddTrackingNumberCommand constructor",
	)
	ErrRemoveTrackingNumberCommandIsNotConstructed = errors.New(
		"RemoveTrackingNumberCommand must be created via NewRemoveTrackingNumberCommand constructor",
	)
)

// AddTrackingNumberCommand appends one shipment tracking number to an order.
type AddTrackingNumberCommand struct { //nolint:recvcheck //using for validation
	editor  principal.Principal
	orderID string
	number  string

	guard guard.ConstructorGuard
}

// NewAddTrackingNumberCommand rejects blank tracking numbers up front.
func NewAddTrackingNumberCommand(editor principal.Principal, orderID, number string) (AddTrackingNumberCommand, error) {
	cmd := AddTrackingNumberCommand{
		guard: guard.NewConstructorGuard(),
	}

	number = strings.TrimSpace(number)
	var numberErr error
	if number == "" {
		numberErr = errs.NewValueIsRequiredError("tracking number")
	}
	cmd.number = number

	if err := errors.Join(
		validateEditor(editor),
		validateOrderID(orderID),
		numberErr,
	); err != nil {
		return AddTrackingNumberCommand{}, err
	}
	cmd.editor = editor
	cmd.orderID = strings.TrimSpace(orderID)

	return cmd, nil
}

func (c AddTrackingNumberCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingNumberCommandIsNotConstructed)
}

func (c AddTrackingNumberCommand) Editor() principal.Principal {
	return c.editor
}

func (c AddTrackingNumberCommand) OrderID() string {
	return c.orderID
}

func (c AddTrackingNumberCommand) Number() string {
	return c.number
}

// RemoveTrackingNumberCommand deletes the tracking number at a position.
type RemoveTrackingNumberCommand struct { //nolint:recvcheck //using for validation
	editor  principal.Principal
	orderID string
	index   int

	guard guard.ConstructorGuard
}

// NewRemoveTrackingNumberCommand rejects negative positions; the upper
// bound is checked against the order itself.
func NewRemoveTrackingNumberCommand(editor principal.Principal, orderID string, index int) (RemoveTrackingNumberCommand, error) {
	cmd := RemoveTrackingNumberCommand{
		index: index,
		guard: guard.NewConstructorGuard(),
	}

	var indexErr error
	if index < 0 {
		indexErr = errs.NewValueIsOutOfRangeError("tracking number index", index, 0, "number of tracking numbers - 1")
	}

	if err := errors.Join(
		validateEditor(editor),
		validateOrderID(orderID),
		indexErr,
	); err != nil {
		return RemoveTrackingNumberCommand{}, err
	}
	cmd.editor = editor
	cmd.orderID = strings.TrimSpace(orderID)

	return cmd, nil
}

func (c RemoveTrackingNumberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTrackingNumberCommandIsNotConstructed)
}

func (c RemoveTrackingNumberCommand) Editor() principal.Principal {
	return c.editor
}

func (c RemoveTrackingNumberCommand) OrderID() string {
	return c.orderID
}

func (c RemoveTrackingNumberCommand) Index() int {
	return c.index
}

func validateEditor(p principal.Principal) error {
	return p.Validate()
}

func validateOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	return nil
}
