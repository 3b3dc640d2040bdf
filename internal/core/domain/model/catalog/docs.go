// Package catalog holds the static reference data of the warehouse: the parts
// that can be stocked and sold, their prices and their type classification.
// The catalog is loaded from storage by an adapter and consumed read-only by
// restock planning and order costing.
package catalog
