package catalog

import "fmt"

// BuildingKind enumerates the placeable building types plus the Empty and
// Error sentinels.
type BuildingKind int

const (
	// Empty marks a cell with nothing placed on it.
	Empty BuildingKind = iota
	SolarPanel
	WindPowerPlant
	HydroelectricPowerPlant
	// Error is returned for invalid queries and is never stored in a cell.
	Error
)

var buildingKindNames = map[BuildingKind]string{
	Empty:                   "empty",
	SolarPanel:              "solar_panel",
	WindPowerPlant:          "wind_power_plant",
	HydroelectricPowerPlant: "hydroelectric_power_plant",
	Error:                   "error",
}

func (k BuildingKind) String() string {
	if s, ok := buildingKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("building(%d)", int(k))
}

// MarshalText lets building kinds be used as JSON map keys.
func (k BuildingKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Placeable reports whether k is a real building rather than a sentinel.
func (k BuildingKind) Placeable() bool {
	return k > Empty && k < Error
}

// BuildingType describes a placeable structure: its board label, display
// name, base price and the materials it consumes. Repeated kinds in
// Materials mean quantity.
type BuildingType struct {
	Kind      BuildingKind   `json:"kind" yaml:"kind"`
	Label     string         `json:"label" yaml:"label"`
	Name      string         `json:"name" yaml:"name"`
	BasePrice float64        `json:"base_price" yaml:"base_price"`
	Materials []MaterialKind `json:"materials" yaml:"materials"`
}

// IsEmpty reports whether bt is the Empty sentinel.
func (bt BuildingType) IsEmpty() bool { return bt.Kind == Empty }

// TotalPrice is the base price plus the unit price of every required material.
func (bt BuildingType) TotalPrice() float64 {
	return TotalPrice(bt)
}

// MaterialCounts returns how many units of each material bt consumes.
func (bt BuildingType) MaterialCounts() map[MaterialKind]int {
	counts := make(map[MaterialKind]int, len(bt.Materials))
	for _, m := range bt.Materials {
		counts[m]++
	}
	return counts
}

// TotalPrice is the base price of bt plus the unit price of each entry in
// its material list.
func TotalPrice(bt BuildingType) float64 {
	total := bt.BasePrice
	for _, m := range bt.Materials {
		total += m.UnitPrice()
	}
	return total
}

var buildingTypes = [...]BuildingType{
	{
		Kind:      SolarPanel,
		Label:     "S",
		Name:      "Solar Panel",
		BasePrice: SolarPanelBasePrice,
		Materials: []MaterialKind{Metal, Wood, Wood},
	},
	{
		Kind:      WindPowerPlant,
		Label:     "W",
		Name:      "Wind Power Plant",
		BasePrice: WindPowerPlantBasePrice,
		Materials: []MaterialKind{Metal, Metal, Plastic},
	},
	{
		Kind:      HydroelectricPowerPlant,
		Label:     "H",
		Name:      "Hydroelectric Power Plant",
		BasePrice: HydroPowerPlantBasePrice,
		Materials: []MaterialKind{Metal, Metal, Plastic, Plastic, Plastic},
	},
}

// BuildingTypes returns the placeable building types in their stable
// catalog order. The position in the slice is the numeric selector used by
// LookupByIndex.
func BuildingTypes() []BuildingType {
	out := make([]BuildingType, len(buildingTypes))
	for i, bt := range buildingTypes {
		out[i] = bt.Clone()
	}
	return out
}

// BuildingByKind returns the catalog entry for k. Empty and Error resolve to
// their sentinels.
func BuildingByKind(k BuildingKind) (BuildingType, bool) {
	switch k {
	case Empty:
		return EmptyBuilding(), true
	case Error:
		return ErrorBuilding(), true
	}
	for _, bt := range buildingTypes {
		if bt.Kind == k {
			return bt.Clone(), true
		}
	}
	return ErrorBuilding(), false
}

// EmptyBuilding is the value held by every unoccupied cell.
func EmptyBuilding() BuildingType {
	return BuildingType{Kind: Empty, Label: EmptyLabel, Name: "Empty"}
}

// ErrorBuilding is the sentinel returned by out-of-range queries.
func ErrorBuilding() BuildingType {
	return BuildingType{Kind: Error, Label: ErrorLabel, Name: "Error", BasePrice: errorBasePrice}
}

// Clone returns a copy of bt that shares no memory with it.
func (bt BuildingType) Clone() BuildingType {
	if bt.Materials != nil {
		bt.Materials = append([]MaterialKind(nil), bt.Materials...)
	}
	return bt
}
