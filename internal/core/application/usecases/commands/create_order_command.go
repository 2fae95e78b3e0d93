package commands

import (
	"errors"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/principal"
	"printflow/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a New-Order request submitted by a principal.
// The payload is checked by the handler, after the access policy.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(admin, order.NewOrderPayload{
//	    ProjectName: "Flyers Q1",
//	    Specifications: order.SpecificationsInput{
//	        Type: "Flyers", Size: "Standard", Quantity: 250, PaperType: "Glossy", Color: true,
//	    },
//	    ClientID: "2",
//	})
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	submitter principal.Principal
	payload   order.NewOrderPayload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand requires a constructed submitter.
func NewCreateOrderCommand(submitter principal.Principal, payload order.NewOrderPayload) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setSubmitter(submitter); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Submitter() principal.Principal {
	return c.submitter
}

func (c CreateOrderCommand) Payload() order.NewOrderPayload {
	return c.payload
}

func (c *CreateOrderCommand) setSubmitter(p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.submitter = p
	return nil
}
