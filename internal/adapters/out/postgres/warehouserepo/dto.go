// Package warehouserepo persists the storage grid as a snapshot of occupied
// cells. The grid's dimensions and capacity cap are configuration, not data;
// only the (row, col, part, quantity) triples are stored, and saving rewrites
// the whole snapshot.
package warehouserepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/model/warehouse"
)

// CellDTO represents one occupied grid cell in the database.
// Empty cells are not stored; absence of a row means an empty slot.
type CellDTO struct {
	Row      int `gorm:"primaryKey;column:row"`
	Col      int `gorm:"primaryKey;column:col"`
	PartCode int `gorm:"column:part_code;index"`
	Quantity int
}

// TableName specifies the database table name for grid cells.
func (CellDTO) TableName() string {
	return "warehouse_cells"
}

// fromDomain converts the grid's occupied cells to their database rows.
func fromDomain(grid *warehouse.StorageGrid) ([]CellDTO, error) {
	locations := grid.OccupiedLocations()

	dtos := make([]CellDTO, 0, len(locations))
	for _, location := range locations {
		batch, err := grid.BatchAt(location)
		if err != nil {
			return nil, err
		}

		dtos = append(dtos, CellDTO{
			Row:      int(location.Row()),
			Col:      int(location.Col()),
			PartCode: batch.ProductCode(),
			Quantity: batch.Quantity(),
		})
	}

	return dtos, nil
}

// toDomain rebuilds a grid of the given shape from persisted cell rows.
func toDomain(dtos []CellDTO, rows int, cols int, capacity int) (*warehouse.StorageGrid, error) {
	grid, err := warehouse.NewStorageGrid(rows, cols, capacity)
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		location, err := kernel.NewLocation(kernel.Coordinate(dto.Row), kernel.Coordinate(dto.Col))
		if err != nil {
			return nil, err
		}

		batch, err := stock.NewBatch(dto.PartCode, dto.Quantity)
		if err != nil {
			return nil, err
		}

		if err := grid.LoadBatch(location, batch); err != nil {
			return nil, err
		}
	}

	return grid, nil
}
