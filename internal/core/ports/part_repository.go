package ports

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
)

// PartRepository defines the read-only contract for the catalog of sellable
// parts. The catalog is static reference data; this port never writes.
// Part-type descriptions are presentation data and live on the query side.
type PartRepository interface {
	// GetAll loads the full catalog of parts with their prices.
	GetAll(ctx context.Context) (*catalog.Catalog, error)
}
