package validation

import (
	"testing"

	"github.com/Flojomojo/capycity/pkg/plan"
)

func TestValidatePlacementsClean(t *testing.T) {
	r := ValidatePlacements(validPlan())
	if !r.Valid {
		t.Fatalf("expected valid report, got %+v", r.Errors)
	}
	if len(r.Info) != 1 || r.Info[0].Message != "3 of 9 cells occupied" {
		t.Errorf("unexpected info: %+v", r.Info)
	}
}

func TestValidatePlacementsConflicts(t *testing.T) {
	p := validPlan()
	p.Placements = append(p.Placements,
		plan.Placement{Row: 1, Column: 1, Building: "W"},
		plan.Placement{Row: 2, Column: 2, Building: "wind power plant"},
	)
	r := ValidatePlacements(p)
	if r.Valid {
		t.Fatal("conflicting placements should invalidate the report")
	}
	if len(r.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(r.Errors))
	}
	if r.Errors[0].Path != "placements[3]" || r.Errors[1].Path != "placements[4]" {
		t.Errorf("unexpected paths: %s, %s", r.Errors[0].Path, r.Errors[1].Path)
	}
	for _, e := range r.Errors {
		if e.Level != LevelPlacement {
			t.Errorf("level = %s, want placement", e.Level)
		}
		if len(e.Suggestions) != 1 {
			t.Errorf("expected one suggestion for %s", e.Path)
		}
	}
}

func TestValidatePlanStopsAtSchema(t *testing.T) {
	p := validPlan()
	p.Grid.Width = 0
	r := ValidatePlan(p)
	if r.Valid {
		t.Fatal("expected invalid report")
	}
	for _, e := range r.Errors {
		if e.Level != LevelSchema {
			t.Errorf("unexpected %s-level error after schema failure: %s", e.Level, e.Message)
		}
	}
}

func TestValidatePlanMerges(t *testing.T) {
	p := validPlan()
	p.Placements = append(p.Placements, plan.Placement{Row: 3, Column: 3, Building: "S"})
	r := ValidatePlan(p)
	if r.Valid {
		t.Fatal("expected invalid report")
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected duplicate-cell warning, got %d warnings", len(r.Warnings))
	}
	if len(r.Errors) != 1 || r.Errors[0].Level != LevelPlacement {
		t.Errorf("expected one placement error, got %+v", r.Errors)
	}
}
