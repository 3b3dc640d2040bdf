package order

import (
	"fmt"
	"time"
)

// PurchaseOrder is a replenishment request sent to suppliers. It is synthesized
// by the restock and shortfall planning operations or loaded from storage, and
// is fulfilled once the corresponding delivery has arrived.
type PurchaseOrder struct {
	Header
}

// NewPurchaseOrder creates an unfulfilled purchase order with no lines.
func NewPurchaseOrder(orderNumber int, placedAt time.Time) (*PurchaseOrder, error) {
	return RestorePurchaseOrder(orderNumber, placedAt, false)
}

// RestorePurchaseOrder reconstructs a purchase order from persistent storage.
func RestorePurchaseOrder(orderNumber int, placedAt time.Time, fulfilled bool) (*PurchaseOrder, error) {
	header, err := newHeader(orderNumber, placedAt, fulfilled)
	if err != nil {
		return nil, err
	}

	return &PurchaseOrder{Header: header}, nil
}

// IsEqual compares two purchase orders by order number.
func (o *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && o.orderNumber == other.orderNumber
}

// String returns a human-readable representation of the purchase order.
func (o *PurchaseOrder) String() string {
	state := "not fulfilled"
	if o.fulfilled {
		state = "fulfilled"
	}
	return fmt.Sprintf("purchase order %d %s, lines %s", o.orderNumber, state, o.lines)
}
