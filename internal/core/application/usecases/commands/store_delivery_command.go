package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrStoreDeliveryCommandIsNotConstructed = errors.New(
	"StoreDeliveryCommand must be created via NewStoreDeliveryCommand constructor",
)

// StoreDeliveryCommand represents a request to place one delivery's stock into
// the storage grid: top up existing cells of each product, open new cells for
// the rest and flip the delivery's placed flag, all in one transaction.
//
// Example:
//
//	cmd, err := NewStoreDeliveryCommand(3001)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewStoreDeliveryCommandHandler(uowFactory)
//	touched, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, warehouse.ErrGridCapacityExhausted) {
//	    // grid is full; nothing was persisted
//	}
type StoreDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber int

	guard guard.ConstructorGuard
}

// NewStoreDeliveryCommand creates a command to place the given delivery.
// The order number must be positive.
func NewStoreDeliveryCommand(orderNumber int) (StoreDeliveryCommand, error) {
	command := StoreDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderNumber(orderNumber); err != nil {
		return StoreDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStoreDeliveryCommandIsNotConstructed if validation fails.
func (c StoreDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStoreDeliveryCommandIsNotConstructed)
}

// OrderNumber returns the number of the delivery to place.
func (c StoreDeliveryCommand) OrderNumber() int {
	return c.orderNumber
}

func (c *StoreDeliveryCommand) setOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return ErrOrderNumberIsInvalid
	}

	c.orderNumber = orderNumber
	return nil
}
