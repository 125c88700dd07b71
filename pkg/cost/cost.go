// Package cost summarizes a building space: how many of each building are
// placed, what they cost and how much of each material they consume.
package cost

import (
	"math"

	"github.com/Flojomojo/capycity/pkg/catalog"
	"github.com/Flojomojo/capycity/pkg/grid"
)

// GrandTotalKey is the key of the overall cost in Report.Values.
const GrandTotalKey = "grand_total"

// BuildingLine itemizes one building type.
type BuildingLine struct {
	Kind      catalog.BuildingKind `json:"kind"`
	Label     string               `json:"label"`
	Name      string               `json:"name"`
	Count     int                  `json:"count"`
	UnitPrice float64              `json:"unit_price"`
	Cost      float64              `json:"cost"`
}

// MaterialLine itemizes one material in the bill of quantities.
type MaterialLine struct {
	Kind      catalog.MaterialKind `json:"kind"`
	Name      string               `json:"name"`
	Quantity  int                  `json:"quantity"`
	UnitPrice float64              `json:"unit_price"`
	Cost      float64              `json:"cost"`
}

// Report is the complete summary of a building space. Buildings and
// Materials list every catalog entry in catalog order, zero lines included.
// Amounts are unrounded; use Round when displaying them.
type Report struct {
	Buildings  []BuildingLine `json:"buildings"`
	Materials  []MaterialLine `json:"materials"`
	Placed     int            `json:"placed"`
	GrandTotal float64        `json:"grand_total"`
}

// Summarize scans every placed building once. Each placement adds one to its
// kind's count, its total price to its kind's cost and one unit per entry in
// its material list to the material quantities.
func Summarize(g *grid.Grid) *Report {
	counts := make(map[catalog.BuildingKind]int)
	costs := make(map[catalog.BuildingKind]float64)
	quantities := make(map[catalog.MaterialKind]int)

	for bt := range g.AllPlaced() {
		counts[bt.Kind]++
		costs[bt.Kind] += catalog.TotalPrice(bt)
		for _, m := range bt.Materials {
			quantities[m]++
		}
	}

	report := &Report{}
	for _, bt := range catalog.BuildingTypes() {
		report.Buildings = append(report.Buildings, BuildingLine{
			Kind:      bt.Kind,
			Label:     bt.Label,
			Name:      bt.Name,
			Count:     counts[bt.Kind],
			UnitPrice: catalog.TotalPrice(bt),
			Cost:      costs[bt.Kind],
		})
		report.Placed += counts[bt.Kind]
		report.GrandTotal += costs[bt.Kind]
	}
	for _, m := range catalog.Materials() {
		q := quantities[m.Kind]
		report.Materials = append(report.Materials, MaterialLine{
			Kind:      m.Kind,
			Name:      m.Name,
			Quantity:  q,
			UnitPrice: m.UnitPrice,
			Cost:      float64(q) * m.UnitPrice,
		})
	}

	return report
}

// Building returns the line for kind k.
func (r *Report) Building(k catalog.BuildingKind) (BuildingLine, bool) {
	for _, l := range r.Buildings {
		if l.Kind == k {
			return l, true
		}
	}
	return BuildingLine{}, false
}

// Material returns the line for material kind k.
func (r *Report) Material(k catalog.MaterialKind) (MaterialLine, bool) {
	for _, l := range r.Materials {
		if l.Kind == k {
			return l, true
		}
	}
	return MaterialLine{}, false
}

// Values flattens the report into a mapping keyed by building kind (count),
// "<kind>_cost" (cost), material kind (quantity) and GrandTotalKey.
func (r *Report) Values() map[string]float64 {
	out := make(map[string]float64, 2*len(r.Buildings)+len(r.Materials)+1)
	for _, l := range r.Buildings {
		out[l.Kind.String()] = float64(l.Count)
		out[l.Kind.String()+"_cost"] = l.Cost
	}
	for _, l := range r.Materials {
		out[l.Kind.String()] = float64(l.Quantity)
	}
	out[GrandTotalKey] = r.GrandTotal
	return out
}

// Round rounds v to two decimal places for display.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
