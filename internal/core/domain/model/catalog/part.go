package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrPartIsNotConstructed indicates that a Part was not created through the
// NewPart constructor function.
var ErrPartIsNotConstructed = errors.New("Part must be created via NewPart constructor")

// Part is one sellable product in the catalog: an identifying part code plus
// descriptive attributes and a unit price. Parts are immutable reference data;
// stock levels live in the storage grid, keyed by the same part code.
type Part struct {
	// partCode identifies the part; matches the product code used by batches
	partCode int

	// partType classifies the part; resolved against the part_types reference table
	partType string

	// manufacturer names the producer of the part
	manufacturer string

	// description is the human-readable part name
	description string

	// price is the unit price used for order costing
	price decimal.Decimal

	// guard ensures the part was properly constructed
	guard guard.ConstructorGuard
}

// NewPart creates a Part. The part code must be positive and the price must
// not be negative; the descriptive attributes may be empty.
func NewPart(
	partCode int, partType string, manufacturer string, description string, price decimal.Decimal,
) (*Part, error) {
	part := &Part{
		partType:     partType,
		manufacturer: manufacturer,
		description:  description,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(part.setPartCode(partCode), part.setPrice(price)); err != nil {
		return nil, err
	}

	return part, nil
}

// PartCode returns the identifying code of the part.
func (p *Part) PartCode() int {
	return p.partCode
}

// PartType returns the type classification of the part.
func (p *Part) PartType() string {
	return p.partType
}

// Manufacturer returns the producer of the part.
func (p *Part) Manufacturer() string {
	return p.manufacturer
}

// Description returns the human-readable part name.
func (p *Part) Description() string {
	return p.description
}

// Price returns the unit price of the part.
func (p *Part) Price() decimal.Decimal {
	return p.price
}

// String returns a human-readable representation of the part.
func (p *Part) String() string {
	return fmt.Sprintf("Part(%d, %s, %s)", p.partCode, p.description, p.price)
}

// Validate checks if the Part was properly constructed via NewPart.
func (p *Part) Validate() error {
	if p == nil {
		return ErrPartIsNotConstructed
	}
	return p.guard.Validate(ErrPartIsNotConstructed)
}

func (p *Part) setPartCode(partCode int) error {
	if partCode <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"partCode",
			fmt.Errorf("%d is not greater than 0", partCode),
		)
	}

	p.partCode = partCode
	return nil
}

func (p *Part) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", price),
		)
	}

	p.price = price
	return nil
}
