package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// CreateShortfallOrderCommandHandler handles the business logic for shortfall
// planning. Reads one customer order and the grid, synthesizes a purchase
// order for the missing quantities and persists it when it has lines.
type CreateShortfallOrderCommandHandler struct {
	uowFactory ShortfallUoWFactory
}

// NewCreateShortfallOrderCommandHandler creates a handler for shortfall planning.
// Requires a ShortfallUoWFactory for transactional persistence.
func NewCreateShortfallOrderCommandHandler(uowFactory ShortfallUoWFactory) CreateShortfallOrderCommandHandler {
	return CreateShortfallOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shortfall command and returns the synthesized purchase
// order. The order always exists, possibly with zero lines; callers
// distinguish "nothing to order" by the line count. Only orders with lines
// are persisted.
func (h *CreateShortfallOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateShortfallOrderCommand,
) (*order.PurchaseOrder, error) {
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

	next, err := uow.PurchaseOrderRepository().NextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	seq, err := order.NewSequence(next)
	if err != nil {
		return nil, err
	}

	purchaseOrder, err := grid.PlanPurchase(customerOrder.Lines(), seq)
	if err != nil {
		return nil, err
	}

	if purchaseOrder.Lines().Len() == 0 {
		return purchaseOrder, nil
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, purchaseOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return purchaseOrder, nil
}
