package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateCustomerOrderCommandIsNotConstructed = errors.New(
		"CreateCustomerOrderCommand must be created via NewCreateCustomerOrderCommand constructor",
	)
	ErrOrderNumberIsInvalid  = errors.New("order number must be greater than 0")
	ErrCustomerCodeIsInvalid = errors.New("customer code must be greater than 0")
)

// OrderLine is one requested (product, quantity) pair of an incoming order.
// Lines for the same product are merged by the order when attached.
type OrderLine struct {
	ProductCode int
	Quantity    int
}

// CreateCustomerOrderCommand represents a request to register a new customer
// order with its line items. An order with no lines is valid; it is trivially
// fillable.
//
// Example:
//
//	cmd, err := NewCreateCustomerOrderCommand(1001, 7, []OrderLine{{ProductCode: 42, Quantity: 10}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateCustomerOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateCustomerOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber  int
	customerCode int
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateCustomerOrderCommand creates a command to register a customer order.
// Validates that the order number and customer code are positive and that every
// line carries a positive product code and quantity.
func NewCreateCustomerOrderCommand(
	orderNumber int, customerCode int, lines []OrderLine,
) (CreateCustomerOrderCommand, error) {
	command := CreateCustomerOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setCustomerCode(customerCode),
		command.setLines(lines),
	); err != nil {
		return CreateCustomerOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCustomerOrderCommandIsNotConstructed if validation fails.
func (c CreateCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerOrderCommandIsNotConstructed)
}

// OrderNumber returns the unique number for the order.
func (c CreateCustomerOrderCommand) OrderNumber() int {
	return c.orderNumber
}

// CustomerCode returns the code of the ordering customer.
func (c CreateCustomerOrderCommand) CustomerCode() int {
	return c.customerCode
}

// Lines returns the requested order lines.
func (c CreateCustomerOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateCustomerOrderCommand) setOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return ErrOrderNumberIsInvalid
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateCustomerOrderCommand) setCustomerCode(customerCode int) error {
	if customerCode <= 0 {
		return ErrCustomerCodeIsInvalid
	}

	c.customerCode = customerCode
	return nil
}

func (c *CreateCustomerOrderCommand) setLines(lines []OrderLine) error {
	for _, line := range lines {
		if line.ProductCode <= 0 {
			return fmt.Errorf("product code %d must be greater than 0", line.ProductCode)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("quantity %d for product %d must be greater than 0",
				line.Quantity, line.ProductCode)
		}
	}

	c.lines = lines
	return nil
}
