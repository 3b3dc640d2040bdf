package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrCreateShortfallOrderCommandIsNotConstructed = errors.New(
	"CreateShortfallOrderCommand must be created via NewCreateShortfallOrderCommand constructor",
)

// CreateShortfallOrderCommand triggers shortfall planning for one customer
// order: a purchase order covering exactly the quantities current stock is
// missing.
//
// Example:
//
//	cmd, err := NewCreateShortfallOrderCommand(1001)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCreateShortfallOrderCommandHandler(uowFactory)
//	po, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if po.Lines().Len() == 0 {
//	    // nothing is short; the order was not persisted
//	}
type CreateShortfallOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber int

	guard guard.ConstructorGuard
}

// NewCreateShortfallOrderCommand creates a command to plan the shortfall of
// the given customer order. The order number must be positive.
func NewCreateShortfallOrderCommand(orderNumber int) (CreateShortfallOrderCommand, error) {
	command := CreateShortfallOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderNumber(orderNumber); err != nil {
		return CreateShortfallOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShortfallOrderCommandIsNotConstructed if validation fails.
func (c CreateShortfallOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateShortfallOrderCommandIsNotConstructed)
}

// OrderNumber returns the number of the customer order to plan against.
func (c CreateShortfallOrderCommand) OrderNumber() int {
	return c.orderNumber
}

func (c *CreateShortfallOrderCommand) setOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return ErrOrderNumberIsInvalid
	}

	c.orderNumber = orderNumber
	return nil
}
