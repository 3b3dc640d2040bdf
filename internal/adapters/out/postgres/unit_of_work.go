// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for post-transaction processing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, gridConfig)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	grid, err := uow.WarehouseRepository().Load(ctx)
//	if err != nil {
//	    return err
//	}
//	// ... run grid operations ...
//	if err := uow.WarehouseRepository().Save(ctx, grid); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/partrepo"
	"warehouse/internal/adapters/out/postgres/warehouserepo"
	"warehouse/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like event sourcing or the outbox pattern.
type trackedAggregate struct {
	OrderNumber int
	Aggregate   any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. The factory ensures each business operation gets a fresh unit
// of work with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db         *gorm.DB
	gridConfig warehouserepo.Config
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The grid config defines the shape snapshots are rebuilt into.
func NewGormUnitOfWorkFactory(db *gorm.DB, gridConfig warehouserepo.Config) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:         db,
		gridConfig: gridConfig,
	}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and aggregate
// tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		gridConfig:        f.gridConfig,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories obtained from it run inside
// the transaction started by Begin; without an active transaction they use
// the main connection for immediate execution.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	gridConfig        warehouserepo.Config
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance are safe and will not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// WarehouseRepository provides access to grid snapshot persistence within the
// unit of work.
func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn(), uow.gridConfig)
}

// PartRepository provides read access to the catalog within the unit of work.
func (uow *GormUnitOfWork) PartRepository() ports.PartRepository {
	return partrepo.NewGormPartRepository(uow.conn())
}

// CustomerOrderRepository provides access to customer-order persistence
// within the unit of work. Added and updated aggregates are tracked.
func (uow *GormUnitOfWork) CustomerOrderRepository() ports.CustomerOrderRepository {
	return orderrepo.NewGormCustomerOrderRepository(uow.conn(), uow)
}

// PurchaseOrderRepository provides access to purchase-order persistence
// within the unit of work. Added and updated aggregates are tracked.
func (uow *GormUnitOfWork) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return orderrepo.NewGormPurchaseOrderRepository(uow.conn(), uow)
}

// DeliveryRepository provides access to delivery persistence within the unit
// of work. Added and updated aggregates are tracked.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return orderrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by repository implementations when aggregates are added or
// updated; the collected aggregates enable post-transaction processing.
func (uow *GormUnitOfWork) TrackAggregate(orderNumber int, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		OrderNumber: orderNumber,
		Aggregate:   aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
