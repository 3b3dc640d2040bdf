package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetStockLevelsQueryHandler retrieves per-product stock totals from the
// persisted grid snapshot. Uses direct SQL for optimal read performance in
// the CQRS pattern.
type GetStockLevelsQueryHandler struct {
	db *gorm.DB
}

// NewGetStockLevelsQueryHandler creates a handler for stock-level queries.
// Requires a GORM database connection for query execution.
func NewGetStockLevelsQueryHandler(db *gorm.DB) GetStockLevelsQueryHandler {
	return GetStockLevelsQueryHandler{db: db}
}

// Handle executes the query and returns one row per stored product, sorted by
// product code. Products with no occupied cells do not appear. A product
// filter, when present, restricts the rows to the requested codes.
func (h GetStockLevelsQueryHandler) Handle(
	ctx context.Context,
	query GetStockLevelsQuery,
) ([]GetStockLevelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	levels := make([]GetStockLevelsQueryResponse, 0)

	sql := `
		SELECT
			part_code,
			SUM(quantity)
		FROM warehouse_cells
		GROUP BY part_code
		ORDER BY part_code
	`
	args := make([]any, 0, 1)
	if codes := query.ProductCodes(); len(codes) > 0 {
		sql = `
			SELECT
				part_code,
				SUM(quantity)
			FROM warehouse_cells
			WHERE part_code = ANY(?)
			GROUP BY part_code
			ORDER BY part_code
		`
		filter := make([]int64, len(codes))
		for i, code := range codes {
			filter[i] = int64(code)
		}
		args = append(args, pq.Array(filter))
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var level GetStockLevelsQueryResponse

		if err = rows.Scan(&level.ProductCode, &level.Quantity); err != nil {
			return nil, err
		}

		levels = append(levels, level)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return levels, nil
}
