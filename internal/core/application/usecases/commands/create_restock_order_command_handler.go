package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// CreateRestockOrderCommandHandler handles the business logic for restock
// planning. Reads the catalog and the grid, synthesizes a purchase order for
// out-of-stock parts and persists it when it has lines.
type CreateRestockOrderCommandHandler struct {
	uowFactory RestockUoWFactory
}

// NewCreateRestockOrderCommandHandler creates a handler for restock planning.
// Requires a RestockUoWFactory for transactional persistence.
func NewCreateRestockOrderCommandHandler(uowFactory RestockUoWFactory) CreateRestockOrderCommandHandler {
	return CreateRestockOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command and returns the created purchase
// order, or nil when every catalog part has stock on hand. An empty restock
// order is never emitted; the order-number sequence is only consumed when an
// order is actually created.
func (h *CreateRestockOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateRestockOrderCommand,
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

	cat, err := uow.PartRepository().GetAll(ctx)
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

	purchaseOrder, err := grid.PlanRestock(cat, seq)
	if err != nil {
		return nil, err
	}

	if purchaseOrder == nil {
		return nil, nil
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, purchaseOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return purchaseOrder, nil
}
