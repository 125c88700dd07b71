package render

import (
	"fmt"
	"strings"

	"github.com/Flojomojo/capycity/pkg/cost"
)

// panelLines renders the three info boxes stacked on top of each other.
func panelLines(r *cost.Report) []cell {
	var out []cell
	out = append(out, box("Buildings", buildingRows(r))...)
	out = append(out, plain(""))
	out = append(out, box("Prices", priceRows(r))...)
	out = append(out, plain(""))
	out = append(out, box("Materials", materialRows(r))...)
	return out
}

func buildingRows(r *cost.Report) []string {
	parts := make([]string, 0, len(r.Buildings))
	for _, l := range r.Buildings {
		parts = append(parts, fmt.Sprintf("%dx %s", l.Count, l.Label))
	}
	return []string{strings.Join(parts, "  ")}
}

func priceRows(r *cost.Report) []string {
	type row struct{ left, right string }
	rows := make([]row, 0, len(r.Buildings)+1)
	for _, l := range r.Buildings {
		rows = append(rows, row{
			left:  fmt.Sprintf("%dx %s  %s", l.Count, l.Label, money(l.UnitPrice)),
			right: money(l.Cost),
		})
	}
	total := money(r.GrandTotal)

	leftWidth, rightWidth := 0, len(total)
	for _, rw := range rows {
		leftWidth = max(leftWidth, len(rw.left))
		rightWidth = max(rightWidth, len(rw.right))
	}

	out := make([]string, 0, len(rows)+2)
	for _, rw := range rows {
		out = append(out, fmt.Sprintf("%-*s | %*s", leftWidth, rw.left, rightWidth, rw.right))
	}
	out = append(out, strings.Repeat("-", leftWidth+1)+"+"+strings.Repeat("-", rightWidth+1))
	out = append(out, fmt.Sprintf("%-*s | %*s", leftWidth, "", rightWidth, total))
	return out
}

func materialRows(r *cost.Report) []string {
	out := make([]string, 0, len(r.Materials))
	for _, l := range r.Materials {
		out = append(out, fmt.Sprintf("%dx %-8s %s", l.Quantity, l.Name, money(l.Cost)))
	}
	return out
}

// money formats an amount for display, rounded to cents.
func money(v float64) string {
	return fmt.Sprintf("%.2f$", cost.Round(v))
}

// box frames rows under a title:
//
//	+------------+
//	| Title:     |
//	|            |
//	| row        |
//	+------------+
func box(title string, rows []string) []cell {
	inner := len(title) + 1
	for _, r := range rows {
		inner = max(inner, len(r))
	}
	border := "+" + strings.Repeat("-", inner+2) + "+"
	line := func(s string) cell {
		return plain("| " + s + strings.Repeat(" ", inner-len(s)) + " |")
	}

	out := []cell{plain(border), line(title + ":"), line("")}
	for _, r := range rows {
		out = append(out, line(r))
	}
	return append(out, plain(border))
}
