package warehouserepo

import (
	"context"

	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/warehouse"
)

// Config carries the grid shape the repository rebuilds snapshots into.
// Dimensions and the capacity cap come from application configuration.
type Config struct {
	Rows     int
	Cols     int
	Capacity int
}

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db     *gorm.DB
	config Config
}

// NewGormWarehouseRepository creates a new GORM warehouse repository.
func NewGormWarehouseRepository(db *gorm.DB, config Config) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:     db,
		config: config,
	}
}

// Load rebuilds the storage grid from the persisted cell snapshot.
func (r *GormWarehouseRepository) Load(ctx context.Context) (*warehouse.StorageGrid, error) {
	var dtos []CellDTO
	if err := r.db.WithContext(ctx).Order("row, col").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomain(dtos, r.config.Rows, r.config.Cols, r.config.Capacity)
}

// Save rewrites the persisted snapshot wholesale: every stored cell is
// deleted and the grid's occupied cells are inserted fresh. Run inside a
// transaction so a failed save leaves the previous snapshot intact.
func (r *GormWarehouseRepository) Save(ctx context.Context, grid *warehouse.StorageGrid) error {
	if err := grid.Validate(); err != nil {
		return err
	}

	dtos, err := fromDomain(grid)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Exec("DELETE FROM warehouse_cells").Error; err != nil {
		return err
	}

	if len(dtos) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
