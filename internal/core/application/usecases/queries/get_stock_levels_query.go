// Package queries contains read-only operations over the persisted state.
// Implements the Query side of the CQRS architecture: direct SQL against the
// database, bypassing the domain model for optimal read performance.
package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetStockLevelsQueryIsNotConstructed = errors.New(
	"GetStockLevelsQuery must be created via NewGetStockLevelsQuery constructor",
)

// GetStockLevelsQuery retrieves the on-hand total per product across the whole
// grid, the persisted counterpart of summing cell quantities per product.
//
// Example:
//
//	query := NewGetStockLevelsQuery()
//	handler := NewGetStockLevelsQueryHandler(db)
//
//	levels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get stock levels: %w", err)
//	}
//	for _, level := range levels {
//	    fmt.Printf("product %d: %d on hand\n", level.ProductCode, level.Quantity)
//	}
type GetStockLevelsQuery struct {
	productCodes []int
	guard        guard.ConstructorGuard
}

// NewGetStockLevelsQuery creates a query to retrieve per-product stock totals.
// This is a parameterless query that covers every stored product.
func NewGetStockLevelsQuery() GetStockLevelsQuery {
	return GetStockLevelsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetStockLevelsQueryForProducts creates a query restricted to the given
// product codes. Products without stock still yield no row.
func NewGetStockLevelsQueryForProducts(productCodes ...int) GetStockLevelsQuery {
	return GetStockLevelsQuery{
		productCodes: productCodes,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStockLevelsQueryIsNotConstructed if validation fails.
func (q GetStockLevelsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockLevelsQueryIsNotConstructed)
}

// ProductCodes returns the product filter, empty for an unrestricted query.
func (q GetStockLevelsQuery) ProductCodes() []int {
	return q.productCodes
}

// GetStockLevelsQueryResponse is one per-product stock total.
type GetStockLevelsQueryResponse struct {
	ProductCode int
	Quantity    int
}
