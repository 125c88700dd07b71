package validation

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrInvalidPlan is returned by Report.Err when a plan has errors.
var ErrInvalidPlan = errors.New("invalid plan")

// Level names the check that produced a finding.
type Level string

const (
	// LevelSchema covers structural checks on a plan before it touches a grid.
	LevelSchema Level = "schema"
	// LevelPlacement covers placements rejected by the grid's occupancy rules.
	LevelPlacement Level = "placement"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is one finding about a plan. Path points into the plan document,
// e.g. "placements[2].row".
type Result struct {
	Level        Level    `json:"level"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	Path         string   `json:"path"`
	ActualValue  any      `json:"actual_value,omitempty"`
	Expected     string   `json:"expected,omitempty"`
	ConflictWith string   `json:"conflict_with,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

func (r Result) String() string {
	if r.Path == "" {
		return r.Message
	}
	return r.Path + ": " + r.Message
}

// Report collects the findings for one plan.
type Report struct {
	Plan     string   `json:"plan,omitempty"`
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// AddError records an error; the report becomes invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Merge appends the findings of other. A nil other is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	if r.Plan == "" {
		r.Plan = other.Plan
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	r.Valid = r.Valid && other.Valid
	r.updateSummary()
}

// All yields errors, then warnings, then info.
func (r *Report) All() iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for _, group := range [][]Result{r.Errors, r.Warnings, r.Info} {
			for _, res := range group {
				if !yield(res) {
					return
				}
			}
		}
	}
}

// Err returns nil for a valid report, otherwise an error wrapping
// ErrInvalidPlan that lists every error finding.
func (r *Report) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.String())
	}
	name := r.Plan
	if name == "" {
		name = "plan"
	}
	return fmt.Errorf("%w %s: %s", ErrInvalidPlan, name, strings.Join(msgs, "; "))
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%s, %s, %d info",
		plural(len(r.Errors), "error"), plural(len(r.Warnings), "warning"), len(r.Info))
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
