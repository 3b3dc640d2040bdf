// Package kernel provides core domain primitives shared across the warehouse model.
//
// The package includes:
//   - Location: a value object identifying one slot of the storage grid by row and column
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and safe to use
// as map keys or to hand out as opaque handles to callers.
package kernel
