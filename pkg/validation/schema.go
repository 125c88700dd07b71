package validation

import (
	"fmt"

	"github.com/Flojomojo/capycity/pkg/catalog"
	"github.com/Flojomojo/capycity/pkg/grid"
	"github.com/Flojomojo/capycity/pkg/plan"
)

// ValidateSchema checks a parsed plan's structure before anything is placed.
func ValidateSchema(p *plan.Plan) *Report {
	r := NewReport()
	r.Plan = p.Name

	validateName(p, r)
	validateGrid(p, r)
	validatePlacements(p, r)

	return r
}

func validateName(p *plan.Plan, r *Report) {
	if p.Name == "" {
		r.AddInfo(Result{
			Level:   LevelSchema,
			Message: "plan has no name",
			Path:    "name",
		})
	}
}

func validateGrid(p *plan.Plan, r *Report) {
	if p.Grid.Height < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "grid height must be at least 1",
			Path:        "grid.height",
			ActualValue: p.Grid.Height,
			Expected:    ">= 1",
		})
	}
	if p.Grid.Width < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "grid width must be at least 1",
			Path:        "grid.width",
			ActualValue: p.Grid.Width,
			Expected:    ">= 1",
		})
	}
	if p.Grid.Height >= 1 && p.Grid.Width >= 1 {
		if err := grid.CheckDimensions(p.Grid.Height, p.Grid.Width); err != nil {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     err.Error(),
				Path:        "grid",
				ActualValue: fmt.Sprintf("%dx%d", p.Grid.Height, p.Grid.Width),
				Expected:    fmt.Sprintf("at most %d cells", grid.MaxCells),
			})
		}
	}
}

func validatePlacements(p *plan.Plan, r *Report) {
	if len(p.Placements) == 0 {
		r.AddInfo(Result{
			Level:   LevelSchema,
			Message: "plan has no placements",
			Path:    "placements",
		})
		return
	}

	firstUse := make(map[[2]int]int)
	for i, pl := range p.Placements {
		path := fmt.Sprintf("placements[%d]", i)

		if p.Grid.Height >= 1 && (pl.Row < 1 || pl.Row > p.Grid.Height) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("row %d is outside the building space", pl.Row),
				Path:        path + ".row",
				ActualValue: pl.Row,
				Expected:    fmt.Sprintf("1-%d", p.Grid.Height),
			})
		}
		if p.Grid.Width >= 1 && (pl.Column < 1 || pl.Column > p.Grid.Width) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("column %d is outside the building space", pl.Column),
				Path:        path + ".column",
				ActualValue: pl.Column,
				Expected:    fmt.Sprintf("1-%d", p.Grid.Width),
			})
		}
		if _, err := catalog.Lookup(pl.Building); err != nil {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     err.Error(),
				Path:        path + ".building",
				ActualValue: pl.Building,
				Suggestions: buildingSuggestions(),
			})
		}

		cell := [2]int{pl.Row, pl.Column}
		if first, seen := firstUse[cell]; seen {
			r.AddWarning(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("cell %dx%d is targeted more than once", pl.Row, pl.Column),
				Path:         path,
				ConflictWith: fmt.Sprintf("placements[%d]", first),
			})
		} else {
			firstUse[cell] = i
		}
	}
}

func buildingSuggestions() []string {
	var out []string
	for i, bt := range catalog.BuildingTypes() {
		out = append(out, fmt.Sprintf("use %d, %q or %q", i, bt.Name, bt.Label))
	}
	return append(out, `use "empty" to clear a cell`)
}
