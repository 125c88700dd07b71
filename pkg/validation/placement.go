package validation

import (
	"errors"
	"fmt"

	"github.com/Flojomojo/capycity/pkg/grid"
	"github.com/Flojomojo/capycity/pkg/plan"
)

// ValidatePlacements applies the plan to a scratch grid and reports every
// placement the grid rejects.
func ValidatePlacements(p *plan.Plan) *Report {
	r := NewReport()
	r.Plan = p.Name

	g, failures, err := plan.Apply(p)
	if err != nil {
		r.AddError(Result{
			Level:       LevelPlacement,
			Message:     err.Error(),
			Path:        "grid",
			ActualValue: fmt.Sprintf("%dx%d", p.Grid.Height, p.Grid.Width),
		})
		return r
	}

	for _, f := range failures {
		r.AddError(Result{
			Level:       LevelPlacement,
			Message:     f.Err.Error(),
			Path:        fmt.Sprintf("placements[%d]", f.Index),
			ActualValue: f.Placement.Building,
			Suggestions: placementSuggestions(f.Err),
		})
	}

	r.AddInfo(Result{
		Level:   LevelPlacement,
		Message: fmt.Sprintf("%d of %d cells occupied", g.Occupied(), g.Height()*g.Width()),
	})
	return r
}

// ValidatePlan runs schema validation and, when the schema is valid, the
// placement dry run.
func ValidatePlan(p *plan.Plan) *Report {
	r := ValidateSchema(p)
	if !r.Valid {
		return r
	}
	r.Merge(ValidatePlacements(p))
	return r
}

func placementSuggestions(err error) []string {
	switch {
	case errors.Is(err, grid.ErrOccupiedByOther):
		return []string{`place "empty" on the cell first to clear it`}
	case errors.Is(err, grid.ErrAlreadyPresent):
		return []string{"drop the repeated placement"}
	}
	return nil
}
