package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(orderNumber int, aggregate any)
}

// store carries the shared persistence mechanics of the three order kinds:
// header plus line items, discriminated by kind.
type store struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func (s *store) add(ctx context.Context, dto OrderDTO, items []OrderItemDTO) error {
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&items).Error
}

func (s *store) update(ctx context.Context, dto OrderDTO, items []OrderItemDTO) error {
	result := s.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_number = ? AND kind = ?", dto.OrderNumber, dto.Kind).
		Select("customer_code", "placed_at", "fulfilled").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// lines are rewritten wholesale, like the grid snapshot
	err := s.db.WithContext(ctx).
		Where("order_number = ?", dto.OrderNumber).
		Delete(&OrderItemDTO{}).Error
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&items).Error
}

func (s *store) get(ctx context.Context, orderNumber int, kind string) (OrderDTO, []OrderItemDTO, error) {
	var dto OrderDTO
	err := s.db.WithContext(ctx).
		First(&dto, "order_number = ? AND kind = ?", orderNumber, kind).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDTO{}, nil, errs.NewObjectNotFoundError("orderNumber", orderNumber)
		}
		return OrderDTO{}, nil, err
	}

	items, err := s.getItems(ctx, orderNumber)
	if err != nil {
		return OrderDTO{}, nil, err
	}

	return dto, items, nil
}

func (s *store) getItems(ctx context.Context, orderNumber int) ([]OrderItemDTO, error) {
	var items []OrderItemDTO
	err := s.db.WithContext(ctx).
		Order("product_code").
		Find(&items, "order_number = ?", orderNumber).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *store) listUnfulfilled(ctx context.Context, kind string) ([]OrderDTO, error) {
	var dtos []OrderDTO
	err := s.db.WithContext(ctx).
		Order("order_number").
		Find(&dtos, "kind = ? AND NOT fulfilled", kind).Error
	if err != nil {
		return nil, err
	}
	return dtos, nil
}

// GormCustomerOrderRepository implements CustomerOrderRepository using GORM.
type GormCustomerOrderRepository struct {
	store
}

// NewGormCustomerOrderRepository creates a new GORM customer-order repository.
func NewGormCustomerOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerOrderRepository {
	return &GormCustomerOrderRepository{store: store{db: db, tracker: tracker}}
}

// Add saves a new customer order with its lines to the database.
func (r *GormCustomerOrderRepository) Add(ctx context.Context, aggregate *order.CustomerOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := OrderDTO{
		OrderNumber:  aggregate.OrderNumber(),
		Kind:         kindCustomer,
		CustomerCode: aggregate.CustomerCode(),
		PlacedAt:     aggregate.PlacedAt(),
		Fulfilled:    aggregate.IsFulfilled(),
	}
	if err := r.add(ctx, dto, itemsFromLines(aggregate.OrderNumber(), aggregate.Lines())); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

// Update saves an existing customer order to the database.
func (r *GormCustomerOrderRepository) Update(ctx context.Context, aggregate *order.CustomerOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := OrderDTO{
		OrderNumber:  aggregate.OrderNumber(),
		Kind:         kindCustomer,
		CustomerCode: aggregate.CustomerCode(),
		PlacedAt:     aggregate.PlacedAt(),
		Fulfilled:    aggregate.IsFulfilled(),
	}
	if err := r.update(ctx, dto, itemsFromLines(aggregate.OrderNumber(), aggregate.Lines())); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

// Get retrieves a customer order by its order number, lines included.
func (r *GormCustomerOrderRepository) Get(ctx context.Context, orderNumber int) (*order.CustomerOrder, error) {
	dto, items, err := r.get(ctx, orderNumber, kindCustomer)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.RestoreCustomerOrder(dto.OrderNumber, dto.CustomerCode, dto.PlacedAt, dto.Fulfilled)
	if err != nil {
		return nil, err
	}
	if err := attachLines(aggregate, items); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// GetAllUnfulfilled retrieves every customer order not yet fulfilled.
func (r *GormCustomerOrderRepository) GetAllUnfulfilled(ctx context.Context) ([]*order.CustomerOrder, error) {
	dtos, err := r.listUnfulfilled(ctx, kindCustomer)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.CustomerOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, restoreErr := order.RestoreCustomerOrder(
			dto.OrderNumber, dto.CustomerCode, dto.PlacedAt, dto.Fulfilled)
		if restoreErr != nil {
			return nil, restoreErr
		}

		items, itemsErr := r.getItems(ctx, dto.OrderNumber)
		if itemsErr != nil {
			return nil, itemsErr
		}
		if attachErr := attachLines(aggregate, items); attachErr != nil {
			return nil, attachErr
		}

		orders = append(orders, aggregate)
	}

	return orders, nil
}

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM.
type GormPurchaseOrderRepository struct {
	store
}

// NewGormPurchaseOrderRepository creates a new GORM purchase-order repository.
func NewGormPurchaseOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{store: store{db: db, tracker: tracker}}
}

// Add saves a new purchase order with its lines to the database.
func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *order.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := OrderDTO{
		OrderNumber: aggregate.OrderNumber(),
		Kind:        kindPurchase,
		PlacedAt:    aggregate.PlacedAt(),
		Fulfilled:   aggregate.IsFulfilled(),
	}
	if err := r.add(ctx, dto, itemsFromLines(aggregate.OrderNumber(), aggregate.Lines())); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

// Update saves an existing purchase order to the database.
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *order.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := OrderDTO{
		OrderNumber: aggregate.OrderNumber(),
		Kind:        kindPurchase,
		PlacedAt:    aggregate.PlacedAt(),
		Fulfilled:   aggregate.IsFulfilled(),
	}
	if err := r.update(ctx, dto, itemsFromLines(aggregate.OrderNumber(), aggregate.Lines())); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

// Get retrieves a purchase order by its order number, lines included.
func (r *GormPurchaseOrderRepository) Get(ctx context.Context, orderNumber int) (*order.PurchaseOrder, error) {
	dto, items, err := r.get(ctx, orderNumber, kindPurchase)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.RestorePurchaseOrder(dto.OrderNumber, dto.PlacedAt, dto.Fulfilled)
	if err != nil {
		return nil, err
	}
	if err := attachLines(aggregate, items); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// GetAllUnfulfilled retrieves every purchase order not yet fulfilled.
func (r *GormPurchaseOrderRepository) GetAllUnfulfilled(ctx context.Context) ([]*order.PurchaseOrder, error) {
	dtos, err := r.listUnfulfilled(ctx, kindPurchase)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.PurchaseOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, restoreErr := order.RestorePurchaseOrder(dto.OrderNumber, dto.PlacedAt, dto.Fulfilled)
		if restoreErr != nil {
			return nil, restoreErr
		}

		items, itemsErr := r.getItems(ctx, dto.OrderNumber)
		if itemsErr != nil {
			return nil, itemsErr
		}
		if attachErr := attachLines(aggregate, items); attachErr != nil {
			return nil, attachErr
		}

		orders = append(orders, aggregate)
	}

	return orders, nil
}

// NextOrderNumber returns the next free order number across all order kinds.
func (r *GormPurchaseOrderRepository) NextOrderNumber(ctx context.Context) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(order_number), 0) + 1 FROM orders").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	store
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{store: store{db: db, tracker: tracker}}
}

// Add saves a new delivery with its lines to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *order.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := OrderDTO{
		OrderNumber: aggregate.OrderNumber(),
		Kind:        kindDelivery,
		PlacedAt:    aggregate.PlacedAt(),
		Fulfilled:   aggregate.IsPlaced(),
	}
	if err := r.add(ctx, dto, itemsFromLines(aggregate.OrderNumber(), aggregate.Lines())); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *order.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := OrderDTO{
		OrderNumber: aggregate.OrderNumber(),
		Kind:        kindDelivery,
		PlacedAt:    aggregate.PlacedAt(),
		Fulfilled:   aggregate.IsPlaced(),
	}
	if err := r.update(ctx, dto, itemsFromLines(aggregate.OrderNumber(), aggregate.Lines())); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

// Get retrieves a delivery by its order number, lines included.
func (r *GormDeliveryRepository) Get(ctx context.Context, orderNumber int) (*order.Delivery, error) {
	dto, items, err := r.get(ctx, orderNumber, kindDelivery)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.RestoreDelivery(dto.OrderNumber, dto.PlacedAt, dto.Fulfilled)
	if err != nil {
		return nil, err
	}
	if err := attachLines(aggregate, items); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// GetAllUnplaced retrieves every delivery whose stock is not yet in the grid.
func (r *GormDeliveryRepository) GetAllUnplaced(ctx context.Context) ([]*order.Delivery, error) {
	dtos, err := r.listUnfulfilled(ctx, kindDelivery)
	if err != nil {
		return nil, err
	}

	deliveries := make([]*order.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, restoreErr := order.RestoreDelivery(dto.OrderNumber, dto.PlacedAt, dto.Fulfilled)
		if restoreErr != nil {
			return nil, restoreErr
		}

		items, itemsErr := r.getItems(ctx, dto.OrderNumber)
		if itemsErr != nil {
			return nil, itemsErr
		}
		if attachErr := attachLines(aggregate, items); attachErr != nil {
			return nil, attachErr
		}

		deliveries = append(deliveries, aggregate)
	}

	return deliveries, nil
}
