package ports

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// CustomerOrderRepository defines the persistence contract for customer
// orders. Orders are loaded header first, line items attached afterwards.
type CustomerOrderRepository interface {
	// Add persists a new customer order with its line items.
	Add(ctx context.Context, aggregate *order.CustomerOrder) error

	// Update persists changes to an existing customer order, typically the
	// fulfilled flag transition after a successful pick.
	Update(ctx context.Context, aggregate *order.CustomerOrder) error

	// Get retrieves a customer order by its order number, lines included.
	Get(ctx context.Context, orderNumber int) (*order.CustomerOrder, error)

	// GetAllUnfulfilled retrieves every customer order not yet fulfilled,
	// in ascending order-number order.
	GetAllUnfulfilled(ctx context.Context) ([]*order.CustomerOrder, error)
}
