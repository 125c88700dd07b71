package catalog

// Unit prices and base prices for the built-in catalog.
const (
	WoodUnitPrice    = 1.0 // $/unit
	MetalUnitPrice   = 2.0 // $/unit
	PlasticUnitPrice = 3.0 // $/unit

	SolarPanelBasePrice      = 1.0 // $ per building, before materials
	WindPowerPlantBasePrice  = 2.0 // $ per building, before materials
	HydroPowerPlantBasePrice = 4.0 // $ per building, before materials

	errorBasePrice = -1.0
)

// Labels shown on the board for the two sentinels.
const (
	EmptyLabel = "0"
	ErrorLabel = ""
)
