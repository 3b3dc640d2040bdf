package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
)

// StoreDeliveryCommandHandler handles the business logic for delivery
// placement. Loads the grid and the delivery, runs the bin-packing placement
// and persists the filled grid together with the delivery's placed flag.
type StoreDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStoreDeliveryCommandHandler creates a handler for delivery placement.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewStoreDeliveryCommandHandler(uowFactory DeliveryUoWFactory) StoreDeliveryCommandHandler {
	return StoreDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the placement command and returns the touched locations.
// When the grid runs out of room the error wraps
// warehouse.ErrGridCapacityExhausted with the unstored leftover; the
// transaction is rolled back and nothing is persisted, so the delivery stays
// unplaced in full.
func (h *StoreDeliveryCommandHandler) Handle(
	ctx context.Context, cmd StoreDeliveryCommand,
) ([]kernel.Location, error) {
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

	delivery, err := uow.DeliveryRepository().Get(ctx, cmd.OrderNumber())
	if err != nil {
		return nil, err
	}

	grid, err := uow.WarehouseRepository().Load(ctx)
	if err != nil {
		return nil, err
	}

	touched, err := grid.PlaceDelivery(delivery.Lines())
	if err != nil {
		return touched, err
	}

	if err = delivery.MarkPlaced(); err != nil {
		return nil, err
	}

	if err = uow.WarehouseRepository().Save(ctx, grid); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Update(ctx, delivery); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return touched, nil
}
