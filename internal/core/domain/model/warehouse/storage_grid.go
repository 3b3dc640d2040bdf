package warehouse

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const (
	// DefaultRows is the number of rows in a standard grid.
	DefaultRows = 20

	// DefaultCols is the number of columns in a standard grid.
	DefaultCols = 30

	// DefaultCapacity is the maximum quantity of a single product one cell may
	// hold. The bound is enforced by the placement algorithm, not by the cells
	// themselves.
	DefaultCapacity = 500

	// RestockQuantity is the quantity ordered per product by restock planning.
	RestockQuantity = 50
)

// StorageGrid is a fixed-size rectangular grid of storage slots. Each cell
// holds at most one batch; the same product may occupy many cells at once; no
// cell ever keeps a zero-quantity batch.
//
// All scans run in row-major order and are recomputed per call.
type StorageGrid struct {
	// rows and cols are the grid dimensions, fixed at construction
	rows int
	cols int

	// capacity bounds the quantity a single cell may hold
	capacity int

	// cells holds the stock; nil means the slot is empty
	cells [][]*stock.Batch

	// guard ensures the grid was properly constructed
	guard guard.ConstructorGuard
}

// NewStorageGrid creates an empty grid with the given dimensions and per-cell
// capacity cap. All three values must be positive.
func NewStorageGrid(rows int, cols int, capacity int) (*StorageGrid, error) {
	grid := &StorageGrid{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		grid.setRows(rows),
		grid.setCols(cols),
		grid.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	grid.cells = make([][]*stock.Batch, rows)
	for r := range grid.cells {
		grid.cells[r] = make([]*stock.Batch, cols)
	}

	return grid, nil
}

// Rows returns the number of rows in the grid.
func (g *StorageGrid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *StorageGrid) Cols() int {
	return g.cols
}

// Capacity returns the per-cell capacity cap.
func (g *StorageGrid) Capacity() int {
	return g.capacity
}

// LoadBatch puts a batch into an empty cell. It is used to rehydrate the grid
// from a persisted snapshot; the batch must not be empty, must not exceed the
// capacity cap and the cell must be free.
func (g *StorageGrid) LoadBatch(location kernel.Location, batch *stock.Batch) error {
	if err := g.checkBounds(location); err != nil {
		return err
	}

	if err := batch.Validate(); err != nil {
		return err
	}

	if batch.IsEmpty() {
		return errs.NewValueIsInvalidErrorWithCause(
			"batch",
			fmt.Errorf("zero-quantity batch at %s", location),
		)
	}

	if batch.Quantity() > g.capacity {
		return errs.NewValueIsOutOfRangeError("quantity", batch.Quantity(), 1, g.capacity)
	}

	if g.cells[location.Row()][location.Col()] != nil {
		return ErrCellIsOccupied
	}

	g.cells[location.Row()][location.Col()] = batch
	return nil
}

// OccupiedLocations returns every location whose cell is non-empty, in
// row-major order.
func (g *StorageGrid) OccupiedLocations() []kernel.Location {
	locations := make([]kernel.Location, 0)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != nil {
				locations = append(locations, locationAt(r, c))
			}
		}
	}
	return locations
}

// BatchAt returns the batch stored at the given location, or nil when the cell
// is empty. Locations outside the grid dimensions fail with an out-of-range
// error, never silently clamped.
func (g *StorageGrid) BatchAt(location kernel.Location) (*stock.Batch, error) {
	if err := g.checkBounds(location); err != nil {
		return nil, err
	}

	return g.cells[location.Row()][location.Col()], nil
}

// AvailableProductCodes returns the product code of every occupied cell in
// row-major order. A product occupying several cells appears once per cell;
// callers needing distinct codes must deduplicate themselves.
func (g *StorageGrid) AvailableProductCodes() []int {
	codes := make([]int, 0)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != nil {
				codes = append(codes, g.cells[r][c].ProductCode())
			}
		}
	}
	return codes
}

// CountOf returns the total on-hand quantity of a product across all cells,
// 0 when the product is not stored anywhere. This is the authoritative figure
// behind every feasibility and planning decision.
func (g *StorageGrid) CountOf(productCode int) int {
	total := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != nil && g.cells[r][c].ProductCode() == productCode {
				total += g.cells[r][c].Quantity()
			}
		}
	}
	return total
}

// LocationsOf returns every occupied cell holding the given product, in
// row-major order.
func (g *StorageGrid) LocationsOf(productCode int) []kernel.Location {
	locations := make([]kernel.Location, 0)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != nil && g.cells[r][c].ProductCode() == productCode {
				locations = append(locations, locationAt(r, c))
			}
		}
	}
	return locations
}

// CanBeFilled reports whether every order line can be satisfied from current
// stock: CountOf must cover the requested quantity for each line. It
// short-circuits on the first line that fails. An order with no lines is
// trivially fillable. Pure read; the grid is not touched.
func (g *StorageGrid) CanBeFilled(lines *stock.BatchList) bool {
	for _, line := range lines.Batches() {
		if g.CountOf(line.ProductCode()) < line.Quantity() {
			return false
		}
	}
	return true
}

// PlanRestock synthesizes a purchase order restocking every catalog part that
// is entirely out of stock, RestockQuantity units per part. When every part
// has stock on hand it returns nil and does not consume an order number;
// callers must not emit an empty restock order.
func (g *StorageGrid) PlanRestock(
	cat *catalog.Catalog, seq *order.Sequence,
) (*order.PurchaseOrder, error) {
	outOfStock := make([]int, 0)
	for _, part := range cat.Parts() {
		if g.CountOf(part.PartCode()) == 0 {
			outOfStock = append(outOfStock, part.PartCode())
		}
	}

	if len(outOfStock) == 0 {
		return nil, nil
	}

	purchaseOrder, err := order.NewPurchaseOrder(seq.Next(), time.Now())
	if err != nil {
		return nil, err
	}

	for _, code := range outOfStock {
		batch, err := stock.NewBatch(code, RestockQuantity)
		if err != nil {
			return nil, err
		}
		if err := purchaseOrder.AddBatch(batch); err != nil {
			return nil, err
		}
	}

	return purchaseOrder, nil
}

// PlanPurchase synthesizes a purchase order covering the shortfall of a
// customer order: one line per product whose on-hand quantity is below the
// requested quantity, for exactly the missing amount.
//
// Unlike PlanRestock this always returns an order, possibly with zero lines;
// callers distinguish "nothing to order" by inspecting the line count.
func (g *StorageGrid) PlanPurchase(
	lines *stock.BatchList, seq *order.Sequence,
) (*order.PurchaseOrder, error) {
	purchaseOrder, err := order.NewPurchaseOrder(seq.Next(), time.Now())
	if err != nil {
		return nil, err
	}

	for _, line := range lines.Batches() {
		shortfall := line.Quantity() - g.CountOf(line.ProductCode())
		if shortfall <= 0 {
			continue
		}

		batch, err := stock.NewBatch(line.ProductCode(), shortfall)
		if err != nil {
			return nil, err
		}
		if err := purchaseOrder.AddBatch(batch); err != nil {
			return nil, err
		}
	}

	return purchaseOrder, nil
}

// BuildPickList allocates stock to the given order lines and returns the pick
// instructions: one entry per (location, picked quantity), in the order cells
// were drained. Cells are drained row-major per line; a cell whose quantity
// reaches zero is cleared.
//
// This operation mutates the grid. If stock runs short for a line the partial
// pick list is returned together with an error wrapping ErrInsufficientStock
// per short product; this indicates CanBeFilled was skipped or stock changed
// since it was checked.
func (g *StorageGrid) BuildPickList(lines *stock.BatchList) ([]PickListItem, error) {
	items := make([]PickListItem, 0)
	var shortfalls []error

	for _, line := range lines.Batches() {
		needed := line.Quantity()
		if needed == 0 {
			continue
		}

		for _, location := range g.LocationsOf(line.ProductCode()) {
			if needed == 0 {
				break
			}

			cell := g.cells[location.Row()][location.Col()]
			take := min(needed, cell.Quantity())

			picked, err := stock.NewBatch(line.ProductCode(), take)
			if err != nil {
				return nil, err
			}
			if err := cell.Reduce(take); err != nil {
				return nil, err
			}
			if cell.IsEmpty() {
				g.cells[location.Row()][location.Col()] = nil
			}

			items = append(items, PickListItem{Location: location, Batch: picked})
			needed -= take
		}

		if needed > 0 {
			shortfalls = append(shortfalls, NewInsufficientStockError(line.ProductCode(), needed))
		}
	}

	if len(shortfalls) > 0 {
		return items, errors.Join(shortfalls...)
	}
	return items, nil
}

// PlaceDelivery stores the delivered lines into the grid and returns every
// location touched. Each line runs two passes: a top-up pass over existing
// cells of the product, filling each to the capacity cap, then a new-slot pass
// over empty cells in row-major order, at most a full cap per cell. No cell is
// ever left above the cap.
//
// This operation mutates the grid. When the grid runs out of room the touched
// locations are returned together with an error wrapping
// ErrGridCapacityExhausted carrying the unstored leftover per product; the
// placed part stays placed and the caller decides what to do with the rest.
func (g *StorageGrid) PlaceDelivery(lines *stock.BatchList) ([]kernel.Location, error) {
	touched := make([]kernel.Location, 0)
	var exhausted []error

	for _, line := range lines.Batches() {
		remaining := line.Quantity()
		if remaining == 0 {
			continue
		}

		for _, location := range g.LocationsOf(line.ProductCode()) {
			if remaining == 0 {
				break
			}

			cell := g.cells[location.Row()][location.Col()]
			room := g.capacity - cell.Quantity()
			if room <= 0 {
				continue
			}

			add := min(remaining, room)
			if err := cell.Increase(add); err != nil {
				return nil, err
			}

			touched = append(touched, location)
			remaining -= add
		}

		for r := 0; r < g.rows && remaining > 0; r++ {
			for c := 0; c < g.cols && remaining > 0; c++ {
				if g.cells[r][c] != nil {
					continue
				}

				put := min(remaining, g.capacity)
				batch, err := stock.NewBatch(line.ProductCode(), put)
				if err != nil {
					return nil, err
				}

				g.cells[r][c] = batch
				touched = append(touched, locationAt(r, c))
				remaining -= put
			}
		}

		if remaining > 0 {
			exhausted = append(exhausted, NewCapacityExhaustedError(line.ProductCode(), remaining))
		}
	}

	if len(exhausted) > 0 {
		return touched, errors.Join(exhausted...)
	}
	return touched, nil
}

// Validate checks if the grid was properly constructed via NewStorageGrid.
func (g *StorageGrid) Validate() error {
	if g == nil {
		return ErrGridIsNotConstructed
	}
	return g.guard.Validate(ErrGridIsNotConstructed)
}

// String returns a short human-readable summary of the grid.
func (g *StorageGrid) String() string {
	return fmt.Sprintf("StorageGrid(%dx%d, %d occupied)", g.rows, g.cols, len(g.OccupiedLocations()))
}

func (g *StorageGrid) checkBounds(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	if int(location.Row()) >= g.rows {
		return errs.NewValueIsOutOfRangeError("row", location.Row(), 0, g.rows-1)
	}
	if int(location.Col()) >= g.cols {
		return errs.NewValueIsOutOfRangeError("col", location.Col(), 0, g.cols-1)
	}
	return nil
}

func (g *StorageGrid) setRows(rows int) error {
	if rows <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"rows",
			fmt.Errorf("%d is not greater than 0", rows),
		)
	}

	g.rows = rows
	return nil
}

func (g *StorageGrid) setCols(cols int) error {
	if cols <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cols",
			fmt.Errorf("%d is not greater than 0", cols),
		)
	}

	g.cols = cols
	return nil
}

func (g *StorageGrid) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}

	g.capacity = capacity
	return nil
}

// locationAt wraps the location constructor for loop indices, which are never
// negative.
func locationAt(row int, col int) kernel.Location {
	location, _ := kernel.NewLocation(kernel.Coordinate(row), kernel.Coordinate(col))
	return location
}
