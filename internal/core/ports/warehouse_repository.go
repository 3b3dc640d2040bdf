// Package ports defines repository interfaces for the warehouse domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for the storage grid.
// The grid is persisted as a snapshot of (location, product, quantity) triples;
// the repository rebuilds the full grid on load and rewrites the full snapshot
// on save.
type WarehouseRepository interface {
	// Load rebuilds the storage grid from the persisted snapshot.
	// Dimensions and capacity come from configuration, not from storage.
	Load(ctx context.Context) (*warehouse.StorageGrid, error)

	// Save persists the grid snapshot wholesale: the backing representation is
	// cleared and rewritten from the grid's occupied cells rather than diffed.
	Save(ctx context.Context, grid *warehouse.StorageGrid) error
}
