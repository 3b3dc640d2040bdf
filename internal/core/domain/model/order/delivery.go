package order

import (
	"fmt"
	"time"
)

// Delivery is incoming stock waiting to be placed into the grid. Its fulfilled
// flag means "already placed": the caller flips it after the storage grid has
// accepted the delivered batches.
type Delivery struct {
	Header
}

// NewDelivery creates an unplaced delivery with no lines.
func NewDelivery(orderNumber int, placedAt time.Time) (*Delivery, error) {
	return RestoreDelivery(orderNumber, placedAt, false)
}

// RestoreDelivery reconstructs a delivery from persistent storage.
func RestoreDelivery(orderNumber int, placedAt time.Time, placed bool) (*Delivery, error) {
	header, err := newHeader(orderNumber, placedAt, placed)
	if err != nil {
		return nil, err
	}

	return &Delivery{Header: header}, nil
}

// IsPlaced reports whether the delivery's stock has been placed into the grid.
// Alias over the shared fulfilled flag, named for delivery semantics.
func (d *Delivery) IsPlaced() bool {
	return d.IsFulfilled()
}

// MarkPlaced records that the delivery's stock has been placed into the grid.
func (d *Delivery) MarkPlaced() error {
	return d.MarkFulfilled()
}

// IsEqual compares two deliveries by order number.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.orderNumber == other.orderNumber
}

// String returns a human-readable representation of the delivery.
func (d *Delivery) String() string {
	if d.fulfilled {
		return fmt.Sprintf("delivery %d unloaded, lines %s", d.orderNumber, d.lines)
	}
	return fmt.Sprintf("delivery %d to be unloaded, lines %s", d.orderNumber, d.lines)
}
