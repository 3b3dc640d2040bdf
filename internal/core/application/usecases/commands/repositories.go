// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WarehouseRepoFactory provides access to the grid repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// PartRepoFactory provides access to the catalog repository within a transaction.
	PartRepoFactory interface {
		PartRepository() ports.PartRepository
	}

	// CustomerOrderRepoFactory provides access to the customer-order repository within a transaction.
	CustomerOrderRepoFactory interface {
		CustomerOrderRepository() ports.CustomerOrderRepository
	}

	// PurchaseOrderRepoFactory provides access to the purchase-order repository within a transaction.
	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CustomerOrderUoW manages transactions for customer-order-only operations.
	CustomerOrderUoW interface {
		TxManager
		CustomerOrderRepoFactory
	}

	// CustomerOrderUoWFactory creates new customer-order unit of work instances.
	CustomerOrderUoWFactory interface {
		Create() CustomerOrderUoW
	}

	// FulfillmentUoW manages transactions spanning the grid and customer orders.
	// Used by order fulfillment, which drains the grid and flips the order flag
	// in one transaction.
	FulfillmentUoW interface {
		TxManager
		WarehouseRepoFactory
		CustomerOrderRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// DeliveryUoW manages transactions spanning the grid and deliveries.
	DeliveryUoW interface {
		TxManager
		WarehouseRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// RestockUoW manages transactions for restock planning: reads the grid and
	// the catalog, persists the synthesized purchase order.
	RestockUoW interface {
		TxManager
		WarehouseRepoFactory
		PartRepoFactory
		PurchaseOrderRepoFactory
	}

	// RestockUoWFactory creates new restock unit of work instances.
	RestockUoWFactory interface {
		Create() RestockUoW
	}

	// ShortfallUoW manages transactions for shortfall planning: reads the grid
	// and one customer order, persists the synthesized purchase order.
	ShortfallUoW interface {
		TxManager
		WarehouseRepoFactory
		CustomerOrderRepoFactory
		PurchaseOrderRepoFactory
	}

	// ShortfallUoWFactory creates new shortfall unit of work instances.
	ShortfallUoWFactory interface {
		Create() ShortfallUoW
	}
)
