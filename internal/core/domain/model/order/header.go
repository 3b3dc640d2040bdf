package order

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	// ErrHeaderIsNotConstructed indicates that an order header was not created
	// through one of the package constructors.
	ErrHeaderIsNotConstructed = errors.New("order header must be created via a constructor")

	// ErrAlreadyFulfilled indicates an attempt to fulfill an order twice.
	// The fulfilled flag transitions from false to true exactly once.
	ErrAlreadyFulfilled = errors.New("order is already fulfilled")
)

// Header is the shared shape of every order variant: identity, timestamp,
// fulfillment flag and the owned order-line collection. Order headers are pure
// data holders consumed by the storage grid's algorithms; they never touch
// persistence themselves.
//
// The fulfilled flag is initially false and is flipped by the caller exactly
// once, after the corresponding grid operation has succeeded.
type Header struct {
	// orderNumber uniquely identifies the order; immutable
	orderNumber int

	// placedAt is when the order was created
	placedAt time.Time

	// fulfilled records whether the order has been completed
	fulfilled bool

	// lines is the order-line collection owned by this header
	lines *stock.BatchList

	// guard ensures the header was properly constructed
	guard guard.ConstructorGuard
}

// newHeader creates a header with an empty line collection.
func newHeader(orderNumber int, placedAt time.Time, fulfilled bool) (Header, error) {
	header := Header{
		fulfilled: fulfilled,
		lines:     stock.NewBatchList(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(header.setOrderNumber(orderNumber), header.setPlacedAt(placedAt)); err != nil {
		return Header{}, err
	}

	return header, nil
}

// OrderNumber returns the unique order number.
func (h *Header) OrderNumber() int {
	return h.orderNumber
}

// PlacedAt returns the order creation timestamp.
func (h *Header) PlacedAt() time.Time {
	return h.placedAt
}

// IsFulfilled reports whether the order has been completed.
// For deliveries this means the stock has been placed into the grid.
func (h *Header) IsFulfilled() bool {
	return h.fulfilled
}

// MarkFulfilled flips the fulfilled flag. The transition happens exactly once;
// a second call returns ErrAlreadyFulfilled.
func (h *Header) MarkFulfilled() error {
	if h.fulfilled {
		return ErrAlreadyFulfilled
	}

	h.fulfilled = true
	return nil
}

// Lines returns the order-line collection owned by this header.
func (h *Header) Lines() *stock.BatchList {
	return h.lines
}

// AddBatch merges a batch into the order's line collection.
// Repeated additions for the same product code sum their quantities.
func (h *Header) AddBatch(batch *stock.Batch) error {
	return h.lines.Add(batch)
}

// Validate checks if the header was properly constructed.
func (h *Header) Validate() error {
	if h == nil {
		return ErrHeaderIsNotConstructed
	}
	return h.guard.Validate(ErrHeaderIsNotConstructed)
}

func (h *Header) setOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%d is not greater than 0", orderNumber),
		)
	}

	h.orderNumber = orderNumber
	return nil
}

func (h *Header) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}

	h.placedAt = placedAt
	return nil
}
