package order

import (
	"fmt"
	"time"

	"warehouse/internal/pkg/errs"
)

// CustomerOrder is demand against stock: a customer asking for quantities of
// products. It carries a customer reference on top of the shared header.
// The fulfilled flag is set by the caller once a pick list has been built and
// applied for the order.
type CustomerOrder struct {
	Header

	// customerCode references the ordering customer
	customerCode int
}

// NewCustomerOrder creates an unfulfilled customer order with no lines.
// Line items are attached afterwards via AddBatch.
func NewCustomerOrder(orderNumber int, customerCode int, placedAt time.Time) (*CustomerOrder, error) {
	return RestoreCustomerOrder(orderNumber, customerCode, placedAt, false)
}

// RestoreCustomerOrder reconstructs a customer order from persistent storage,
// including its fulfillment state. Line items are attached separately, the way
// they are loaded: header first, then lines.
func RestoreCustomerOrder(
	orderNumber int, customerCode int, placedAt time.Time, fulfilled bool,
) (*CustomerOrder, error) {
	header, err := newHeader(orderNumber, placedAt, fulfilled)
	if err != nil {
		return nil, err
	}

	if customerCode <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"customerCode",
			fmt.Errorf("%d is not greater than 0", customerCode),
		)
	}

	return &CustomerOrder{
		Header:       header,
		customerCode: customerCode,
	}, nil
}

// CustomerCode returns the code of the ordering customer.
func (o *CustomerOrder) CustomerCode() int {
	return o.customerCode
}

// IsEqual compares two customer orders by order number.
func (o *CustomerOrder) IsEqual(other *CustomerOrder) bool {
	return other != nil && o.orderNumber == other.orderNumber
}

// Validate checks if the customer order was properly constructed.
func (o *CustomerOrder) Validate() error {
	if o == nil {
		return ErrHeaderIsNotConstructed
	}
	return o.Header.Validate()
}

// String returns a human-readable representation of the customer order.
func (o *CustomerOrder) String() string {
	state := "not fulfilled"
	if o.fulfilled {
		state = "fulfilled"
	}
	return fmt.Sprintf("customer order %d for customer %d %s, lines %s",
		o.orderNumber, o.customerCode, state, o.lines)
}
