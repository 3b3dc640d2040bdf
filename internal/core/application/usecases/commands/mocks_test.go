package commands_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/warehouse"
	"warehouse/internal/core/ports"
)

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Load(ctx context.Context) (*warehouse.StorageGrid, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.StorageGrid), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, grid *warehouse.StorageGrid) error {
	args := m.Called(ctx, grid)
	return args.Error(0)
}

type MockPartRepository struct{ mock.Mock }

func (m *MockPartRepository) GetAll(ctx context.Context) (*catalog.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Catalog), args.Error(1)
}

type MockCustomerOrderRepository struct{ mock.Mock }

func (m *MockCustomerOrderRepository) Add(ctx context.Context, o *order.CustomerOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCustomerOrderRepository) Update(ctx context.Context, o *order.CustomerOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCustomerOrderRepository) Get(ctx context.Context, orderNumber int) (*order.CustomerOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.CustomerOrder), args.Error(1)
}

func (m *MockCustomerOrderRepository) GetAllUnfulfilled(_ context.Context) ([]*order.CustomerOrder, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, o *order.PurchaseOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Update(_ context.Context, _ *order.PurchaseOrder) error {
	return errors.New("not implemented in mock")
}

func (m *MockPurchaseOrderRepository) Get(_ context.Context, _ int) (*order.PurchaseOrder, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockPurchaseOrderRepository) GetAllUnfulfilled(_ context.Context) ([]*order.PurchaseOrder, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockPurchaseOrderRepository) NextOrderNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(_ context.Context, _ *order.Delivery) error {
	return errors.New("not implemented in mock")
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *order.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, orderNumber int) (*order.Delivery, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllUnplaced(_ context.Context) ([]*order.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}

// MockUoW satisfies every command unit-of-work interface; tests wire up only
// the repository accessors their handler uses.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUoW) PartRepository() ports.PartRepository {
	args := m.Called()
	return args.Get(0).(ports.PartRepository)
}

func (m *MockUoW) CustomerOrderRepository() ports.CustomerOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerOrderRepository)
}

func (m *MockUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockCustomerOrderUoWFactory struct{ mock.Mock }

func (m *MockCustomerOrderUoWFactory) Create() commands.CustomerOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerOrderUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockRestockUoWFactory struct{ mock.Mock }

func (m *MockRestockUoWFactory) Create() commands.RestockUoW {
	args := m.Called()
	return args.Get(0).(commands.RestockUoW)
}

type MockShortfallUoWFactory struct{ mock.Mock }

func (m *MockShortfallUoWFactory) Create() commands.ShortfallUoW {
	args := m.Called()
	return args.Get(0).(commands.ShortfallUoW)
}
