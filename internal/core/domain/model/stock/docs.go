// Package stock provides the atomic units of inventory for the warehouse model.
//
// A Batch couples a product code with a quantity and is the only thing the
// storage grid ever holds. A BatchList is the order-line collection attached to
// order headers: at most one batch per distinct product, merged by summing
// quantities when the same product is added twice.
package stock
