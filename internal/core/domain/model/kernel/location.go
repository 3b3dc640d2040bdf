package kernel

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// Coordinate represents a row or column index on the storage grid.
// Valid coordinates are non-negative; the upper bound depends on the
// dimensions of the grid instance a location is used against.
type Coordinate int

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via the NewLocation constructor.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location identifies one slot of the storage grid by its row and column.
// Location is an immutable value object: once constructed its coordinates never
// change, and it can be used as a map key or returned to callers as an opaque
// handle. Whether a location actually lies inside a particular grid is checked
// by the grid itself, since grids may have different dimensions.
//
// The zero value of Location is invalid and fails validation - use the
// constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation(3, 17)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Output: Location(3,17)
type Location struct { //nolint:recvcheck //using for validation
	row   Coordinate
	col   Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified row and column.
// Both coordinates must be non-negative; upper bounds are enforced by the
// grid a location is used against, not by the location itself.
//
// Returns an error if either coordinate is negative.
func NewLocation(row Coordinate, col Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setRow(row), loc.setCol(col)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed via NewLocation.
// The zero value of Location is invalid and fails this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Row returns the row coordinate of the location.
func (l Location) Row() Coordinate {
	return l.row
}

// Col returns the column coordinate of the location.
func (l Location) Col() Coordinate {
	return l.col
}

// String returns a human-readable representation in the form "Location(row,col)".
// It implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.row, l.col)
}

// IsEqual compares two locations for equality. Two locations are equal when
// they address the same row and column. Both locations must be properly
// constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.row == other.row && l.col == other.col, nil
}

// setRow sets the row coordinate with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (l *Location) setRow(row Coordinate) error {
	if row < 0 {
		return errs.NewValueIsInvalidErrorWithCause("row", fmt.Errorf("%d is negative", row))
	}

	l.row = row
	return nil
}

// setCol sets the column coordinate with validation.
func (l *Location) setCol(col Coordinate) error {
	if col < 0 {
		return errs.NewValueIsInvalidErrorWithCause("col", fmt.Errorf("%d is negative", col))
	}

	l.col = col
	return nil
}
