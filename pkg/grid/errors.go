package grid

import (
	"errors"
	"fmt"

	"github.com/Flojomojo/capycity/pkg/catalog"
)

var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrAlreadyPresent    = errors.New("building already present")
	ErrOccupiedByOther   = errors.New("cell occupied by another building")
	ErrInvalidBuilding   = errors.New("building type cannot be placed")
)

// PlacementError records which operation failed at which cell.
type PlacementError struct {
	Op       string
	X, Y     int
	Building catalog.BuildingKind
	Err      error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%s %s at (%d, %d): %v", e.Op, e.Building, e.X, e.Y, e.Err)
}

func (e *PlacementError) Unwrap() error { return e.Err }
