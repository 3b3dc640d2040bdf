package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/warehouse"
)

func catalogWithParts(t *testing.T, codes ...int) *catalog.Catalog {
	t.Helper()
	parts := make([]*catalog.Part, 0, len(codes))
	for _, code := range codes {
		part, err := catalog.NewPart(code, "HD", "Acme", "widget", decimal.New(995, -2))
		require.NoError(t, err)
		parts = append(parts, part)
	}
	cat, err := catalog.NewCatalog(parts...)
	require.NoError(t, err)
	return cat
}

func TestCreateRestockOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateRestockOrderCommand()

	grid := gridWithStock(t, [4]int{0, 0, 20, 5})
	cat := catalogWithParts(t, 10, 20, 30)

	partRepo := new(MockPartRepository)
	gridRepo := new(MockWarehouseRepository)
	poRepo := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartRepository").Return(partRepo).Once(),
		partRepo.On("GetAll", mock.Anything).Return(cat, nil).Once(),
		uow.On("WarehouseRepository").Return(gridRepo).Once(),
		gridRepo.On("Load", mock.Anything).Return(grid, nil).Once(),
		uow.On("PurchaseOrderRepository").Return(poRepo).Once(),
		poRepo.On("NextOrderNumber", mock.Anything).Return(5001, nil).Once(),
		uow.On("PurchaseOrderRepository").Return(poRepo).Once(),
		poRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.PurchaseOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRestockOrderCommandHandler(factory)
	po, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, po)

	assert.Equal(t, 5001, po.OrderNumber())
	assert.Equal(t, 2, po.Lines().Len())
	for _, code := range []int{10, 30} {
		line, ok := po.Lines().Get(code)
		require.True(t, ok)
		assert.Equal(t, warehouse.RestockQuantity, line.Quantity())
	}

	partRepo.AssertExpectations(t)
	gridRepo.AssertExpectations(t)
	poRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateRestockOrderCommandHandler_Handle_NothingToRestock(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateRestockOrderCommand()

	grid := gridWithStock(t, [4]int{0, 0, 10, 5}, [4]int{0, 1, 20, 5})
	cat := catalogWithParts(t, 10, 20)

	partRepo := new(MockPartRepository)
	gridRepo := new(MockWarehouseRepository)
	poRepo := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartRepository").Return(partRepo).Once(),
		partRepo.On("GetAll", mock.Anything).Return(cat, nil).Once(),
		uow.On("WarehouseRepository").Return(gridRepo).Once(),
		gridRepo.On("Load", mock.Anything).Return(grid, nil).Once(),
		uow.On("PurchaseOrderRepository").Return(poRepo).Once(),
		poRepo.On("NextOrderNumber", mock.Anything).Return(5001, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRestockOrderCommandHandler(factory)
	po, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Nil(t, po, "no empty restock order is emitted")

	poRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	partRepo.AssertExpectations(t)
	gridRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRestockOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateRestockOrderCommand{} // not constructed properly
	factory := new(MockRestockUoWFactory)
	h := commands.NewCreateRestockOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
