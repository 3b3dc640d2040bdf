// Package partrepo loads the catalog of sellable parts. Catalog data is
// read-only for the application; rows are maintained out of band.
package partrepo

import (
	"github.com/shopspring/decimal"

	"warehouse/internal/core/domain/model/catalog"
)

// PartDTO represents one catalog part in the database.
type PartDTO struct {
	PartCode     int    `gorm:"primaryKey;column:part_code"`
	PartType     string `gorm:"column:part_type"`
	Manufacturer string
	Description  string
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for catalog parts.
func (PartDTO) TableName() string {
	return "parts"
}

// PartTypeDTO represents one part-type reference row in the database.
type PartTypeDTO struct {
	Code        string `gorm:"primaryKey"`
	Description string
}

// TableName specifies the database table name for part types.
func (PartTypeDTO) TableName() string {
	return "part_types"
}

// toDomain converts a database row to a catalog part.
func toDomain(dto PartDTO) (*catalog.Part, error) {
	return catalog.NewPart(dto.PartCode, dto.PartType, dto.Manufacturer, dto.Description, dto.Price)
}
