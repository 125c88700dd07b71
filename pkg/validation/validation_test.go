package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestNewReport(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if r.Summary != "0 errors, 0 warnings, 0 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestSeveritiesAndSummary(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelSchema, Message: "cell 1x1 is targeted more than once", Path: "placements[1]"})
	r.AddInfo(Result{Level: LevelPlacement, Message: "1 of 4 cells occupied"})
	if !r.Valid {
		t.Fatal("warnings and info must not invalidate a report")
	}

	r.AddError(Result{Level: LevelSchema, Message: "row 9 is outside the building space", Path: "placements[0].row"})
	if r.Valid {
		t.Fatal("report with an error should be invalid")
	}
	if r.Errors[0].Severity != SeverityError || r.Warnings[0].Severity != SeverityWarning || r.Info[0].Severity != SeverityInfo {
		t.Error("Add* should stamp the severity")
	}
	if r.Summary != "1 error, 1 warning, 1 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
}

func TestAllOrder(t *testing.T) {
	r := NewReport()
	r.AddInfo(Result{Message: "i"})
	r.AddWarning(Result{Message: "w"})
	r.AddError(Result{Message: "e"})

	var got []string
	for res := range r.All() {
		got = append(got, res.Message)
	}
	if strings.Join(got, "") != "ewi" {
		t.Errorf("All() order = %v, want errors, warnings, info", got)
	}

	n := 0
	for range r.All() {
		n++
		break
	}
	if n != 1 {
		t.Error("All() should stop when the consumer breaks")
	}
}

func TestErr(t *testing.T) {
	r := NewReport()
	r.Plan = "farm"
	r.AddError(Result{Message: "grid width must be at least 1", Path: "grid.width"})
	r.AddError(Result{Message: "unknown building type"})

	err := r.Err()
	if !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("Err() = %v, want ErrInvalidPlan", err)
	}
	want := "invalid plan farm: grid.width: grid width must be at least 1; unknown building type"
	if err.Error() != want {
		t.Errorf("Err() = %q, want %q", err.Error(), want)
	}
}

func TestMerge(t *testing.T) {
	schema := NewReport()
	schema.AddWarning(Result{Level: LevelSchema, Message: "warn1"})

	placement := NewReport()
	placement.Plan = "farm"
	placement.AddError(Result{Level: LevelPlacement, Message: "err1"})
	placement.AddWarning(Result{Level: LevelPlacement, Message: "warn2"})
	placement.AddInfo(Result{Level: LevelPlacement, Message: "info1"})

	schema.Merge(placement)
	schema.Merge(nil)

	if schema.Valid {
		t.Error("merged report should be invalid when other has errors")
	}
	if schema.Plan != "farm" {
		t.Errorf("Plan = %q, want it taken from the merged report", schema.Plan)
	}
	if len(schema.Errors) != 1 || len(schema.Warnings) != 2 || len(schema.Info) != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/2/1", len(schema.Errors), len(schema.Warnings), len(schema.Info))
	}
	if schema.Summary != "1 error, 2 warnings, 1 info" {
		t.Errorf("unexpected summary: %s", schema.Summary)
	}
}
