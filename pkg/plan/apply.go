package plan

import (
	"fmt"

	"github.com/Flojomojo/capycity/pkg/catalog"
	"github.com/Flojomojo/capycity/pkg/grid"
)

// Failure records a placement that could not be applied.
type Failure struct {
	Index     int       `json:"index"`
	Placement Placement `json:"placement"`
	Err       error     `json:"-"`
}

func (f Failure) Error() string {
	return fmt.Sprintf("placements[%d] (%dx%d %q): %v",
		f.Index, f.Placement.Row, f.Placement.Column, f.Placement.Building, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Apply builds the plan's grid and applies every placement in order. A
// failing placement leaves the grid unchanged and is recorded; later
// placements still run. The error is non-nil only when the grid itself
// cannot be built.
func Apply(p *Plan) (*grid.Grid, []Failure, error) {
	g, err := grid.New(p.Grid.Height, p.Grid.Width)
	if err != nil {
		return nil, nil, err
	}

	var failures []Failure
	for i, pl := range p.Placements {
		if err := ApplyPlacement(g, pl); err != nil {
			failures = append(failures, Failure{Index: i, Placement: pl, Err: err})
		}
	}
	return g, failures, nil
}

// ApplyPlacement resolves pl's building selector and places it on g.
func ApplyPlacement(g *grid.Grid, pl Placement) error {
	bt, err := catalog.Lookup(pl.Building)
	if err != nil {
		return err
	}
	x, y := pl.Cell()
	return g.Place(x, y, bt)
}
