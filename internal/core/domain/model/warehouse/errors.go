package warehouse

import (
	"errors"
	"fmt"
)

var (
	// ErrGridIsNotConstructed indicates that a StorageGrid was not created
	// through the NewStorageGrid constructor function.
	ErrGridIsNotConstructed = errors.New("StorageGrid must be created via NewStorageGrid constructor")

	// ErrInsufficientStock indicates that pick-list allocation ran out of stock
	// for at least one order line. Checking CanBeFilled first prevents this.
	ErrInsufficientStock = errors.New("insufficient stock for order line")

	// ErrGridCapacityExhausted indicates that delivery placement ran out of
	// room and part of the delivered quantity could not be stored.
	ErrGridCapacityExhausted = errors.New("storage grid capacity exhausted")

	// ErrCellIsOccupied indicates an attempt to load a batch into a cell that
	// already holds one.
	ErrCellIsOccupied = errors.New("grid cell already holds a batch")
)

// InsufficientStockError reports how many units of a product were missing when
// a pick list drained every matching cell and still came up short. The partial
// pick list built so far is returned alongside it.
type InsufficientStockError struct {
	ProductCode int
	Missing     int
}

// NewInsufficientStockError creates a new InsufficientStockError.
func NewInsufficientStockError(productCode int, missing int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductCode: productCode,
		Missing:     missing,
	}
}

// Error implements the error interface.
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %d is short %d units",
		ErrInsufficientStock, e.ProductCode, e.Missing)
}

// Unwrap supports errors.Is checks against ErrInsufficientStock.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// CapacityExhaustedError reports the quantity of a product left unstored when
// delivery placement found no more room. The locations actually touched are
// returned alongside it; the caller decides whether to fail the whole
// operation or store the placed part.
type CapacityExhaustedError struct {
	ProductCode int
	Leftover    int
}

// NewCapacityExhaustedError creates a new CapacityExhaustedError.
func NewCapacityExhaustedError(productCode int, leftover int) *CapacityExhaustedError {
	return &CapacityExhaustedError{
		ProductCode: productCode,
		Leftover:    leftover,
	}
}

// Error implements the error interface.
func (e *CapacityExhaustedError) Error() string {
	return fmt.Sprintf("%s: %d units of product %d left unstored",
		ErrGridCapacityExhausted, e.Leftover, e.ProductCode)
}

// Unwrap supports errors.Is checks against ErrGridCapacityExhausted.
func (e *CapacityExhaustedError) Unwrap() error {
	return ErrGridCapacityExhausted
}
