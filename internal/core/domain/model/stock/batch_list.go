package stock

import (
	"slices"
	"strings"
)

// BatchList is the collection of order lines attached to an order header.
// It holds at most one batch per distinct product code. Adding a batch for a
// product that is already present merges the two by summing their quantities;
// the original behavior of silently overwriting the earlier line lost units
// when loaders attached line items one by one, so merging is the policy here.
//
// Batches are always exposed in ascending product-code order so that planning
// and allocation walk order lines deterministically.
//
// The zero value is not usable; create lists via NewBatchList.
type BatchList struct {
	byProduct map[int]*Batch
}

// NewBatchList creates an empty order-line collection.
func NewBatchList() *BatchList {
	return &BatchList{
		byProduct: make(map[int]*Batch),
	}
}

// Add merges a batch into the list. If a line for the same product code already
// exists, its quantity is increased by the added batch's quantity; otherwise a
// new line is created holding the given batch. Zero-quantity batches create (or
// leave) a zero-quantity line, which downstream operations treat as a no-op.
func (l *BatchList) Add(batch *Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	existing, ok := l.byProduct[batch.ProductCode()]
	if !ok {
		l.byProduct[batch.ProductCode()] = batch
		return nil
	}

	if batch.Quantity() == 0 {
		return nil
	}

	return existing.Increase(batch.Quantity())
}

// Get returns the line for the given product code, or false if none exists.
func (l *BatchList) Get(productCode int) (*Batch, bool) {
	batch, ok := l.byProduct[productCode]
	return batch, ok
}

// Batches returns all lines in ascending product-code order.
func (l *BatchList) Batches() []*Batch {
	codes := make([]int, 0, len(l.byProduct))
	for code := range l.byProduct {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	batches := make([]*Batch, 0, len(codes))
	for _, code := range codes {
		batches = append(batches, l.byProduct[code])
	}
	return batches
}

// Len returns the number of distinct product lines in the list.
func (l *BatchList) Len() int {
	return len(l.byProduct)
}

// IsEmpty reports whether the list holds no lines at all.
func (l *BatchList) IsEmpty() bool {
	return len(l.byProduct) == 0
}

// String returns a human-readable representation of all lines.
func (l *BatchList) String() string {
	parts := make([]string, 0, len(l.byProduct))
	for _, batch := range l.Batches() {
		parts = append(parts, batch.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
