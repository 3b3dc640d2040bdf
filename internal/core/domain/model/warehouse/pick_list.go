package warehouse

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/stock"
)

// PickListItem is one instruction of a pick list: take Batch.Quantity() units
// of Batch.ProductCode() from Location. The batch is a detached record of what
// was picked, not the cell's remaining stock.
type PickListItem struct {
	Location kernel.Location
	Batch    *stock.Batch
}
