package plan

// Plan describes a building space and the placements to apply to it, in
// order. Rows and columns are one-based, the way a person counts cells.
type Plan struct {
	Name       string      `yaml:"name" json:"name"`
	Grid       GridDef     `yaml:"grid" json:"grid"`
	Placements []Placement `yaml:"placements" json:"placements"`
}

// GridDef holds the building space dimensions.
type GridDef struct {
	Height int `yaml:"height" json:"height"`
	Width  int `yaml:"width" json:"width"`
}

// Placement puts Building on (Row, Column). Building is a catalog selector:
// an index, a display name, a board label, or "empty" to clear the cell.
type Placement struct {
	Row      int    `yaml:"row" json:"row"`
	Column   int    `yaml:"column" json:"column"`
	Building string `yaml:"building" json:"building"`
}

// Cell converts the one-based row and column to zero-based grid coordinates.
func (p Placement) Cell() (x, y int) {
	return p.Row - 1, p.Column - 1
}
