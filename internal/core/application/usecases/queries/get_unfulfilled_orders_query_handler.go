package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnfulfilledOrdersQueryHandler retrieves customer orders pending
// fulfillment from the database. Filters out fulfilled orders to provide
// active workload visibility.
type GetUnfulfilledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnfulfilledOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetUnfulfilledOrdersQueryHandler(db *gorm.DB) GetUnfulfilledOrdersQueryHandler {
	return GetUnfulfilledOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unfulfilled customer orders.
// Results are sorted by order number for consistent output.
func (h GetUnfulfilledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnfulfilledOrdersQuery,
) ([]GetUnfulfilledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnfulfilledOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			customer_code,
			placed_at
		FROM orders
		WHERE kind = ? AND NOT fulfilled
		ORDER BY order_number
	`, "customer").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnfulfilledOrdersQueryResponse

		err = rows.Scan(
			&orderResp.OrderNumber,
			&orderResp.CustomerCode,
			&orderResp.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
