package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/stock"
)

// CreateCustomerOrderCommandHandler handles the business logic for registering
// customer orders: header first, then lines, persisted in one transaction.
type CreateCustomerOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewCreateCustomerOrderCommandHandler creates a handler for order registration.
// Requires a CustomerOrderUoWFactory for transactional persistence.
func NewCreateCustomerOrderCommandHandler(uowFactory CustomerOrderUoWFactory) CreateCustomerOrderCommandHandler {
	return CreateCustomerOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order registration command.
// Builds the order aggregate with its lines and persists it; lines for the
// same product are merged by summing quantities.
func (h *CreateCustomerOrderCommandHandler) Handle(ctx context.Context, cmd CreateCustomerOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customerOrder, err := order.NewCustomerOrder(cmd.OrderNumber(), cmd.CustomerCode(), time.Now())
	if err != nil {
		return err
	}

	for _, line := range cmd.Lines() {
		batch, batchErr := stock.NewBatch(line.ProductCode, line.Quantity)
		if batchErr != nil {
			return batchErr
		}
		if addErr := customerOrder.AddBatch(batch); addErr != nil {
			return addErr
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerOrderRepository().Add(ctx, customerOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
