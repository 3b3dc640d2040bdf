package partrepo

import (
	"context"

	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/catalog"
)

// GormPartRepository implements PartRepository using GORM.
type GormPartRepository struct {
	db *gorm.DB
}

// NewGormPartRepository creates a new GORM part repository.
func NewGormPartRepository(db *gorm.DB) *GormPartRepository {
	return &GormPartRepository{db: db}
}

// GetAll loads the full catalog, sorted by part code.
func (r *GormPartRepository) GetAll(ctx context.Context) (*catalog.Catalog, error) {
	var dtos []PartDTO
	if err := r.db.WithContext(ctx).Order("part_code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	parts := make([]*catalog.Part, 0, len(dtos))
	for _, dto := range dtos {
		part, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return catalog.NewCatalog(parts...)
}
