package main

import (
	"fmt"
	"io"

	"github.com/Flojomojo/capycity/pkg/catalog"
	"github.com/Flojomojo/capycity/pkg/cost"
	"github.com/Flojomojo/capycity/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, e := range r.Warnings {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, e validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
	if e.Path != "" {
		fmt.Fprintf(w, "    -> %s = %v\n", e.Path, e.ActualValue)
	}
	if e.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", e.Expected)
	}
	if e.ConflictWith != "" {
		fmt.Fprintf(w, "    conflicts with: %s\n", e.ConflictWith)
	}
	for _, s := range e.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printCostReport(w io.Writer, r *cost.Report) {
	fmt.Fprintln(w, "Cost Summary")
	fmt.Fprintln(w, "============")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-28s %6s %12s %12s\n", "Building", "Count", "Unit", "Cost")
	fmt.Fprintf(w, "%-28s %6s %12s %12s\n", "----------------------------", "------", "------------", "------------")
	for _, l := range r.Buildings {
		fmt.Fprintf(w, "%-28s %6d %12s %12s\n", l.Name+" ("+l.Label+")", l.Count, formatMoney(l.UnitPrice), formatMoney(l.Cost))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-28s %6s %12s %12s\n", "Material", "Qty", "Unit", "Cost")
	fmt.Fprintf(w, "%-28s %6s %12s %12s\n", "----------------------------", "------", "------------", "------------")
	for _, l := range r.Materials {
		fmt.Fprintf(w, "%-28s %6d %12s %12s\n", l.Name, l.Quantity, formatMoney(l.UnitPrice), formatMoney(l.Cost))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Buildings placed:  %d\n", r.Placed)
	fmt.Fprintf(w, "  Grand total:       $%s\n", formatMoney(r.GrandTotal))
}

func printCatalog(w io.Writer) {
	fmt.Fprintf(w, "%-3s %-28s %-5s %10s %10s  %s\n", "#", "Building", "Label", "Base", "Total", "Materials")
	for i, bt := range catalog.BuildingTypes() {
		counts := bt.MaterialCounts()
		var mats string
		for _, m := range catalog.Materials() {
			if n := counts[m.Kind]; n > 0 {
				if mats != "" {
					mats += ", "
				}
				mats += fmt.Sprintf("%dx %s", n, m.Name)
			}
		}
		fmt.Fprintf(w, "%-3d %-28s %-5s %10s %10s  %s\n",
			i, bt.Name, bt.Label, formatMoney(bt.BasePrice), formatMoney(bt.TotalPrice()), mats)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-12s %10s\n", "Material", "Unit")
	for _, m := range catalog.Materials() {
		fmt.Fprintf(w, "%-12s %10s\n", m.Name, formatMoney(m.UnitPrice))
	}
}

// formatMoney rounds to cents for display.
func formatMoney(v float64) string {
	v = cost.Round(v)
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.2fK", v/1_000)
	}
	return fmt.Sprintf("%.2f", v)
}
