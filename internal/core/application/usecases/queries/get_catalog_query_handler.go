package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCatalogQueryHandler retrieves the catalog from the database, joining
// parts with their part-type reference rows.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the query and returns one row per catalog part, sorted by
// part code.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parts := make([]GetCatalogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.part_code,
			p.part_type,
			COALESCE(t.description, ''),
			p.manufacturer,
			p.description,
			p.price
		FROM parts p
		LEFT JOIN part_types t ON t.code = p.part_type
		ORDER BY p.part_code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var part GetCatalogQueryResponse
		var rawPrice string

		err = rows.Scan(
			&part.PartCode,
			&part.PartType,
			&part.TypeDescription,
			&part.Manufacturer,
			&part.Description,
			&rawPrice,
		)
		if err != nil {
			return nil, err
		}

		part.Price, err = decimal.NewFromString(rawPrice)
		if err != nil {
			return nil, err
		}

		parts = append(parts, part)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parts, nil
}
