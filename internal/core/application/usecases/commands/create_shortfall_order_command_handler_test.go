package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"warehouse/internal/core/application/usecases/commands"
)

func TestCreateShortfallOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShortfallOrderCommand(1001)

	grid := gridWithStock(t, [4]int{0, 0, 42, 4})
	customerOrder := customerOrderWithLines(t, 1001, [2]int{42, 10}, [2]int{7, 3})

	orderRepo := new(MockCustomerOrderRepository)
	gridRepo := new(MockWarehouseRepository)
	poRepo := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, 1001).Return(customerOrder, nil).Once(),
		uow.On("WarehouseRepository").Return(gridRepo).Once(),
		gridRepo.On("Load", mock.Anything).Return(grid, nil).Once(),
		uow.On("PurchaseOrderRepository").Return(poRepo).Once(),
		poRepo.On("NextOrderNumber", mock.Anything).Return(5002, nil).Once(),
		uow.On("PurchaseOrderRepository").Return(poRepo).Once(),
		poRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.PurchaseOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShortfallUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShortfallOrderCommandHandler(factory)
	po, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, po)

	assert.Equal(t, 5002, po.OrderNumber())
	assert.Equal(t, 2, po.Lines().Len())

	short42, ok := po.Lines().Get(42)
	require.True(t, ok)
	assert.Equal(t, 6, short42.Quantity())

	short7, ok := po.Lines().Get(7)
	require.True(t, ok)
	assert.Equal(t, 3, short7.Quantity())

	orderRepo.AssertExpectations(t)
	gridRepo.AssertExpectations(t)
	poRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShortfallOrderCommandHandler_Handle_NothingShort(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShortfallOrderCommand(1001)

	grid := gridWithStock(t, [4]int{0, 0, 42, 100})
	customerOrder := customerOrderWithLines(t, 1001, [2]int{42, 10})

	orderRepo := new(MockCustomerOrderRepository)
	gridRepo := new(MockWarehouseRepository)
	poRepo := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, 1001).Return(customerOrder, nil).Once(),
		uow.On("WarehouseRepository").Return(gridRepo).Once(),
		gridRepo.On("Load", mock.Anything).Return(grid, nil).Once(),
		uow.On("PurchaseOrderRepository").Return(poRepo).Once(),
		poRepo.On("NextOrderNumber", mock.Anything).Return(5002, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShortfallUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShortfallOrderCommandHandler(factory)
	po, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, po, "an order is always returned")
	assert.Equal(t, 0, po.Lines().Len())

	poRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	gridRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShortfallOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShortfallOrderCommand{} // not constructed properly
	factory := new(MockShortfallUoWFactory)
	h := commands.NewCreateShortfallOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
