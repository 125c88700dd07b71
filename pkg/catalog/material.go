package catalog

import "fmt"

// MaterialKind enumerates the closed set of materials.
type MaterialKind int

const (
	Wood MaterialKind = iota + 1
	Metal
	Plastic
)

var materialKindNames = map[MaterialKind]string{
	Wood:    "wood",
	Metal:   "metal",
	Plastic: "plastic",
}

// String returns the stable machine name used in reports and JSON keys.
func (k MaterialKind) String() string {
	if s, ok := materialKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("material(%d)", int(k))
}

// MarshalText lets material kinds be used as JSON map keys.
func (k MaterialKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Material is a unit-priced resource consumed by building types.
type Material struct {
	Kind      MaterialKind `json:"kind" yaml:"kind"`
	Name      string       `json:"name" yaml:"name"`
	UnitPrice float64      `json:"unit_price" yaml:"unit_price"`
}

var materials = [...]Material{
	{Kind: Wood, Name: "Wood", UnitPrice: WoodUnitPrice},
	{Kind: Metal, Name: "Metal", UnitPrice: MetalUnitPrice},
	{Kind: Plastic, Name: "Plastic", UnitPrice: PlasticUnitPrice},
}

// Materials returns every material in catalog order (Wood, Metal, Plastic).
func Materials() []Material {
	out := make([]Material, len(materials))
	copy(out, materials[:])
	return out
}

// MaterialByKind returns the catalog entry for k.
func MaterialByKind(k MaterialKind) (Material, bool) {
	for _, m := range materials {
		if m.Kind == k {
			return m, true
		}
	}
	return Material{}, false
}

// UnitPrice returns the price of one unit of k, or 0 for an unknown kind.
func (k MaterialKind) UnitPrice() float64 {
	m, _ := MaterialByKind(k)
	return m.UnitPrice
}
