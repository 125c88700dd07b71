// Package grid holds the building space: a fixed-size matrix of cells that
// are either empty or hold one building type.
//
// Coordinates are (x, y) where x is the zero-based row in [0, Height) and y
// is the zero-based column in [0, Width).
package grid

import (
	"fmt"
	"iter"

	"github.com/Flojomojo/capycity/pkg/catalog"
)

// Position is a zero-based (row, column) pair.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a rectangular building space. Dimensions are fixed at construction.
// A Grid is not safe for concurrent use.
type Grid struct {
	height, width int
	cells         []catalog.BuildingType
}

// MaxCells caps height*width so that every cell is allocated up front.
const MaxCells = 1 << 20

// CheckDimensions reports whether height x width is a valid building space
// size: both at least 1 and no more than MaxCells cells in total.
func CheckDimensions(height, width int) error {
	if height < 1 || width < 1 {
		return fmt.Errorf("%w: %dx%d (both must be >= 1)", ErrInvalidDimensions, height, width)
	}
	// Divide instead of multiplying so huge sizes cannot overflow.
	if height > MaxCells/width {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, height, width, MaxCells)
	}
	return nil
}

// New creates a height x width grid with every cell empty.
func New(height, width int) (*Grid, error) {
	if err := CheckDimensions(height, width); err != nil {
		return nil, err
	}
	cells := make([]catalog.BuildingType, height*width)
	empty := catalog.EmptyBuilding()
	for i := range cells {
		cells[i] = empty
	}
	return &Grid{height: height, width: width, cells: cells}, nil
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.height && y >= 0 && y < g.width
}

func (g *Grid) index(x, y int) int { return x*g.width + y }

// Get returns the building at (x, y). Out-of-range coordinates yield the
// Error sentinel together with an error wrapping ErrOutOfBounds.
func (g *Grid) Get(x, y int) (catalog.BuildingType, error) {
	if !g.InBounds(x, y) {
		return catalog.ErrorBuilding(), &PlacementError{Op: "get", X: x, Y: y, Building: catalog.Error, Err: g.boundsErr()}
	}
	return g.cells[g.index(x, y)].Clone(), nil
}

// Place puts bt on (x, y). Placing the Empty building clears the cell.
//
// The cell is left untouched when the coordinates are out of range, when it
// already holds bt's kind (Empty on Empty included), or when it holds a
// different building and bt is not Empty.
func (g *Grid) Place(x, y int, bt catalog.BuildingType) error {
	op := "place"
	if bt.IsEmpty() {
		op = "remove"
	}
	fail := func(err error) error {
		return &PlacementError{Op: op, X: x, Y: y, Building: bt.Kind, Err: err}
	}

	if !g.InBounds(x, y) {
		return fail(g.boundsErr())
	}
	if bt.Kind != catalog.Empty && !bt.Kind.Placeable() {
		return fail(ErrInvalidBuilding)
	}

	i := g.index(x, y)
	current := g.cells[i]
	if current.Kind == bt.Kind {
		return fail(ErrAlreadyPresent)
	}
	if !bt.IsEmpty() && !current.IsEmpty() {
		return fail(fmt.Errorf("%w: %s", ErrOccupiedByOther, current.Name))
	}

	g.cells[i] = bt.Clone()
	return nil
}

// Remove clears (x, y). It fails with ErrAlreadyPresent if the cell is
// already empty.
func (g *Grid) Remove(x, y int) error {
	return g.Place(x, y, catalog.EmptyBuilding())
}

// AllPlaced yields every non-empty cell's building in row-major order. Each
// call rescans the grid.
func (g *Grid) AllPlaced() iter.Seq[catalog.BuildingType] {
	return func(yield func(catalog.BuildingType) bool) {
		for _, bt := range g.cells {
			if bt.IsEmpty() {
				continue
			}
			if !yield(bt) {
				return
			}
		}
	}
}

// Cells yields every cell with its position in row-major order.
func (g *Grid) Cells() iter.Seq2[Position, catalog.BuildingType] {
	return func(yield func(Position, catalog.BuildingType) bool) {
		for i, bt := range g.cells {
			if !yield(Position{X: i / g.width, Y: i % g.width}, bt) {
				return
			}
		}
	}
}

// Occupied counts the non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for range g.AllPlaced() {
		n++
	}
	return n
}

func (g *Grid) boundsErr() error {
	return fmt.Errorf("%w: want x in [0,%d) and y in [0,%d)", ErrOutOfBounds, g.height, g.width)
}
