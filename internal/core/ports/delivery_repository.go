package ports

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// DeliveryRepository defines the persistence contract for incoming deliveries.
type DeliveryRepository interface {
	// Add persists a new delivery with its line items.
	Add(ctx context.Context, aggregate *order.Delivery) error

	// Update persists changes to an existing delivery, typically the placed
	// flag transition after the grid accepted the stock.
	Update(ctx context.Context, aggregate *order.Delivery) error

	// Get retrieves a delivery by its order number, lines included.
	Get(ctx context.Context, orderNumber int) (*order.Delivery, error)

	// GetAllUnplaced retrieves every delivery whose stock has not yet been
	// placed into the grid, in ascending order-number order.
	GetAllUnplaced(ctx context.Context) ([]*order.Delivery, error)
}
