package commands

import (
	"context"

	"warehouse/internal/core/domain/model/warehouse"
)

// FulfillOrderCommandHandler handles the business logic for order fulfillment.
// Loads the grid and the order, verifies feasibility, allocates the pick list
// and persists the drained grid together with the order's fulfilled flag.
type FulfillOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewFulfillOrderCommandHandler creates a handler for order fulfillment.
// Requires a FulfillmentUoWFactory for transactional persistence.
func NewFulfillOrderCommandHandler(uowFactory FulfillmentUoWFactory) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fulfillment command and returns the pick list.
// Fails with ErrOrderCannotBeFilled when stock does not cover the order; the
// grid is only saved after a complete allocation, so a failed run changes
// nothing.
func (h *FulfillOrderCommandHandler) Handle(
	ctx context.Context, cmd FulfillOrderCommand,
) ([]warehouse.PickListItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerOrder, err := uow.CustomerOrderRepository().Get(ctx, cmd.OrderNumber())
	if err != nil {
		return nil, err
	}

	grid, err := uow.WarehouseRepository().Load(ctx)
	if err != nil {
		return nil, err
	}

	if !grid.CanBeFilled(customerOrder.Lines()) {
		return nil, ErrOrderCannotBeFilled
	}

	pickList, err := grid.BuildPickList(customerOrder.Lines())
	if err != nil {
		return nil, err
	}

	if err = customerOrder.MarkFulfilled(); err != nil {
		return nil, err
	}

	if err = uow.WarehouseRepository().Save(ctx, grid); err != nil {
		return nil, err
	}

	if err = uow.CustomerOrderRepository().Update(ctx, customerOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pickList, nil
}
