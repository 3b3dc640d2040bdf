package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrFulfillOrderCommandIsNotConstructed = errors.New(
		"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
	)

	// ErrOrderCannotBeFilled indicates that current stock does not cover every
	// line of the order. The grid is left untouched.
	ErrOrderCannotBeFilled = errors.New("order cannot be filled from current stock")
)

// FulfillOrderCommand represents a request to fulfill one customer order from
// the storage grid: check feasibility, build the pick list, drain the cells
// and flip the order's fulfilled flag, all in one transaction.
//
// Example:
//
//	cmd, err := NewFulfillOrderCommand(1001)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewFulfillOrderCommandHandler(uowFactory)
//	pickList, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("fulfillment failed: %w", err)
//	}
//	for _, item := range pickList {
//	    fmt.Printf("take %d of product %d from %s\n",
//	        item.Batch.Quantity(), item.Batch.ProductCode(), item.Location)
//	}
type FulfillOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber int

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand creates a command to fulfill the given customer order.
// The order number must be positive.
func NewFulfillOrderCommand(orderNumber int) (FulfillOrderCommand, error) {
	command := FulfillOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderNumber(orderNumber); err != nil {
		return FulfillOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFulfillOrderCommandIsNotConstructed if validation fails.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// OrderNumber returns the number of the order to fulfill.
func (c FulfillOrderCommand) OrderNumber() int {
	return c.orderNumber
}

func (c *FulfillOrderCommand) setOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return ErrOrderNumberIsInvalid
	}

	c.orderNumber = orderNumber
	return nil
}
