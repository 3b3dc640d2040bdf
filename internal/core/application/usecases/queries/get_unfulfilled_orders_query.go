package queries

import (
	"errors"
	"time"

	"warehouse/internal/pkg/guard"
)

var ErrGetUnfulfilledOrdersQueryIsNotConstructed = errors.New(
	"GetUnfulfilledOrdersQuery must be created via NewGetUnfulfilledOrdersQuery constructor",
)

// GetUnfulfilledOrdersQuery retrieves all customer orders awaiting
// fulfillment, for monitoring and for the periodic fulfillment job.
//
// Example:
//
//	query := NewGetUnfulfilledOrdersQuery()
//	handler := NewGetUnfulfilledOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//	fmt.Printf("%d orders awaiting fulfillment\n", len(orders))
type GetUnfulfilledOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnfulfilledOrdersQuery creates a query to retrieve pending customer orders.
// This is a parameterless query.
func NewGetUnfulfilledOrdersQuery() GetUnfulfilledOrdersQuery {
	return GetUnfulfilledOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnfulfilledOrdersQueryIsNotConstructed if validation fails.
func (q GetUnfulfilledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnfulfilledOrdersQueryIsNotConstructed)
}

// GetUnfulfilledOrdersQueryResponse is one pending customer order.
type GetUnfulfilledOrdersQueryResponse struct {
	OrderNumber  int
	CustomerCode int
	PlacedAt     time.Time
}
