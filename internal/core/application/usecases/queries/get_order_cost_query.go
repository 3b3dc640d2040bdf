package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetOrderCostQueryIsNotConstructed = errors.New(
		"GetOrderCostQuery must be created via NewGetOrderCostQuery constructor",
	)
	ErrQueryOrderNumberIsInvalid = errors.New("order number must be greater than 0")
)

// GetOrderCostQuery computes the total price of one order: the sum of line
// quantities times catalog unit prices. Lines whose product the catalog does
// not know cost nothing.
//
// Example:
//
//	query, err := NewGetOrderCostQuery(1001)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderCostQueryHandler(db)
//	cost, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to cost order: %w", err)
//	}
//	fmt.Printf("order %d costs %s\n", cost.OrderNumber, cost.Cost)
type GetOrderCostQuery struct { //nolint:recvcheck //using for validation
	orderNumber int

	guard guard.ConstructorGuard
}

// NewGetOrderCostQuery creates a query to cost the given order.
// The order number must be positive.
func NewGetOrderCostQuery(orderNumber int) (GetOrderCostQuery, error) {
	query := GetOrderCostQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderNumber(orderNumber); err != nil {
		return GetOrderCostQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderCostQueryIsNotConstructed if validation fails.
func (q GetOrderCostQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCostQueryIsNotConstructed)
}

// OrderNumber returns the number of the order to cost.
func (q GetOrderCostQuery) OrderNumber() int {
	return q.orderNumber
}

func (q *GetOrderCostQuery) setOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return ErrQueryOrderNumberIsInvalid
	}

	q.orderNumber = orderNumber
	return nil
}

// GetOrderCostQueryResponse is the costed order.
type GetOrderCostQueryResponse struct {
	OrderNumber int
	Cost        decimal.Decimal
}
