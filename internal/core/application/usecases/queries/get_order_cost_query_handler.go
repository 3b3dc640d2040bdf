package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse/internal/pkg/errs"
)

// GetOrderCostQueryHandler computes order cost directly in the database by
// joining order lines with catalog prices.
type GetOrderCostQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderCostQueryHandler creates a handler for order costing queries.
// Requires a GORM database connection for query execution.
func NewGetOrderCostQueryHandler(db *gorm.DB) GetOrderCostQueryHandler {
	return GetOrderCostQueryHandler{db: db}
}

// Handle executes the costing query. Unknown product codes are priced at
// zero; an order with no lines costs zero. Fails with an ObjectNotFoundError
// when the order itself does not exist.
func (h GetOrderCostQueryHandler) Handle(
	ctx context.Context,
	query GetOrderCostQuery,
) (GetOrderCostQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderCostQueryResponse{}, err
	}

	var exists int
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM orders WHERE order_number = ?
	`, query.OrderNumber()).Scan(&exists).Error
	if err != nil {
		return GetOrderCostQueryResponse{}, err
	}
	if exists == 0 {
		return GetOrderCostQueryResponse{}, errs.NewObjectNotFoundError("orderNumber", query.OrderNumber())
	}

	var rawCost string
	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(oi.quantity * p.price), 0)
		FROM order_items oi
		JOIN parts p ON p.part_code = oi.product_code
		WHERE oi.order_number = ?
	`, query.OrderNumber()).Scan(&rawCost).Error
	if err != nil {
		return GetOrderCostQueryResponse{}, err
	}

	cost, err := decimal.NewFromString(rawCost)
	if err != nil {
		return GetOrderCostQueryResponse{}, err
	}

	return GetOrderCostQueryResponse{
		OrderNumber: query.OrderNumber(),
		Cost:        cost,
	}, nil
}
