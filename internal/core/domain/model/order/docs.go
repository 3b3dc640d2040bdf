// Package order provides the order headers consumed by the storage grid.
//
// Three variants share one line-bearing header: CustomerOrder (demand against
// stock), PurchaseOrder (replenishment request) and Delivery (incoming stock,
// where the fulfilled flag means "already placed into the grid"). The variants
// are structurally distinct types embedding the shared Header rather than a
// class hierarchy; they are pure data holders whose batch handling is identical.
//
// Purchase-order numbering is handled by Sequence, an explicit generator owned
// by the caller and seeded from persisted state. There is no ambient global
// counter.
package order
