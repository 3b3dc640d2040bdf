package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"warehouse/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves the full catalog of sellable parts together with
// their part-type descriptions.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query to retrieve the catalog.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCatalogQueryIsNotConstructed if validation fails.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// GetCatalogQueryResponse is one catalog part. TypeDescription is empty when
// the part's type code has no reference row.
type GetCatalogQueryResponse struct {
	PartCode        int
	PartType        string
	TypeDescription string
	Manufacturer    string
	Description     string
	Price           decimal.Decimal
}
