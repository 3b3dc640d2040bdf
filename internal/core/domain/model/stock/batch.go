package stock

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	// ErrBatchIsNotConstructed indicates that a Batch was not created through
	// the NewBatch constructor function.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

	// ErrReduceExceedsQuantity indicates an attempt to reduce a batch below zero.
	// Quantities are never negative; callers must pick at most what is available.
	ErrReduceExceedsQuantity = errors.New("cannot reduce batch below zero quantity")
)

// Batch is a quantity of one product identified by its product code.
// It is the atomic unit of stock: grid cells, order lines and pick-list entries
// all carry batches. The product code is immutable; the quantity is mutated in
// place by the allocation and placement algorithms.
//
// Invariant: quantity is always >= 0. A batch whose quantity reaches zero must
// be removed from wherever it is held; the storage grid clears cells instead of
// keeping zero-quantity batches.
type Batch struct {
	// productCode identifies the product this batch holds
	productCode int

	// quantity is the number of units in the batch, always >= 0
	quantity int

	// guard ensures the batch was properly constructed
	guard guard.ConstructorGuard
}

// NewBatch creates a Batch for the given product code and quantity.
// The product code must be positive and the quantity non-negative.
func NewBatch(productCode int, quantity int) (*Batch, error) {
	batch := &Batch{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(batch.setProductCode(productCode), batch.setQuantity(quantity)); err != nil {
		return nil, err
	}

	return batch, nil
}

// ProductCode returns the product code of the batch.
func (b *Batch) ProductCode() int {
	return b.productCode
}

// Quantity returns the current number of units in the batch.
func (b *Batch) Quantity() int {
	return b.quantity
}

// Increase adds the given number of units to the batch.
// The amount must be positive.
func (b *Batch) Increase(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is not greater than 0", amount),
		)
	}

	b.quantity += amount
	return nil
}

// Reduce removes the given number of units from the batch.
// The amount must be positive and must not exceed the current quantity;
// batches never go negative.
func (b *Batch) Reduce(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is not greater than 0", amount),
		)
	}

	if amount > b.quantity {
		return ErrReduceExceedsQuantity
	}

	b.quantity -= amount
	return nil
}

// IsEmpty reports whether the batch holds zero units.
func (b *Batch) IsEmpty() bool {
	return b.quantity == 0
}

// String returns a human-readable representation of the batch.
func (b *Batch) String() string {
	return fmt.Sprintf("Batch(product %d, quantity %d)", b.productCode, b.quantity)
}

// Validate checks if the Batch was properly constructed via NewBatch.
func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}
	return b.guard.Validate(ErrBatchIsNotConstructed)
}

func (b *Batch) setProductCode(productCode int) error {
	if productCode <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"productCode",
			fmt.Errorf("%d is not greater than 0", productCode),
		)
	}

	b.productCode = productCode
	return nil
}

func (b *Batch) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	b.quantity = quantity
	return nil
}
