package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrCreateRestockOrderCommandIsNotConstructed = errors.New(
	"CreateRestockOrderCommand must be created via NewCreateRestockOrderCommand constructor",
)

// CreateRestockOrderCommand triggers restock planning over the whole catalog:
// every part with zero stock on hand gets one purchase-order line of the
// default restock quantity.
//
// Example:
//
//	cmd := NewCreateRestockOrderCommand()
//	handler := NewCreateRestockOrderCommandHandler(uowFactory)
//
//	po, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if po == nil {
//	    // every part has stock; no order was created
//	}
type CreateRestockOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewCreateRestockOrderCommand creates a command to trigger restock planning.
// This is a parameterless command that scans the full catalog.
func NewCreateRestockOrderCommand() CreateRestockOrderCommand {
	command := CreateRestockOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRestockOrderCommandIsNotConstructed if validation fails.
func (c *CreateRestockOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestockOrderCommandIsNotConstructed)
}
