package catalog

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
)

// Catalog is the full set of sellable parts, keyed by part code.
// It is consumed read-only: restock planning walks it to find parts that are
// out of stock, and order costing multiplies line quantities by its prices.
//
// The zero value is not usable; create catalogs via NewCatalog.
type Catalog struct {
	byCode map[int]*Part
}

// NewCatalog builds a catalog from the given parts.
// Duplicate part codes are rejected.
func NewCatalog(parts ...*Part) (*Catalog, error) {
	catalog := &Catalog{
		byCode: make(map[int]*Part, len(parts)),
	}

	for _, part := range parts {
		if err := part.Validate(); err != nil {
			return nil, err
		}

		if _, ok := catalog.byCode[part.PartCode()]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"parts",
				fmt.Errorf("duplicate part code %d", part.PartCode()),
			)
		}

		catalog.byCode[part.PartCode()] = part
	}

	return catalog, nil
}

// Get returns the part with the given code, or false if the catalog does not
// know it.
func (c *Catalog) Get(partCode int) (*Part, bool) {
	part, ok := c.byCode[partCode]
	return part, ok
}

// Parts returns all parts in ascending part-code order.
func (c *Catalog) Parts() []*Part {
	codes := c.Codes()

	parts := make([]*Part, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, c.byCode[code])
	}
	return parts
}

// Codes returns all part codes in ascending order.
func (c *Catalog) Codes() []int {
	codes := make([]int, 0, len(c.byCode))
	for code := range c.byCode {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Len returns the number of parts in the catalog.
func (c *Catalog) Len() int {
	return len(c.byCode)
}

// Cost computes the total price of the given order lines: the sum of
// quantity times unit price over every line whose product code the catalog
// knows. Unknown product codes contribute nothing; they are normal products
// with an unknown price, not an error.
func (c *Catalog) Cost(lines *stock.BatchList) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines.Batches() {
		part, ok := c.byCode[line.ProductCode()]
		if !ok {
			continue
		}

		total = total.Add(part.Price().Mul(decimal.NewFromInt(int64(line.Quantity()))))
	}
	return total
}
