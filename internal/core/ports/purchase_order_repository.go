package ports

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// PurchaseOrderRepository defines the persistence contract for purchase
// orders synthesized by restock and shortfall planning.
type PurchaseOrderRepository interface {
	// Add persists a new purchase order with its line items.
	Add(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Update persists changes to an existing purchase order.
	Update(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Get retrieves a purchase order by its order number, lines included.
	Get(ctx context.Context, orderNumber int) (*order.PurchaseOrder, error)

	// GetAllUnfulfilled retrieves every purchase order not yet fulfilled,
	// in ascending order-number order.
	GetAllUnfulfilled(ctx context.Context) ([]*order.PurchaseOrder, error)

	// NextOrderNumber returns the next free order number across all order
	// kinds. It seeds the order.Sequence handed to planning operations.
	NextOrderNumber(ctx context.Context) (int, error)
}
