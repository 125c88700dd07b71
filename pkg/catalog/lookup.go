package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// ErrUnknownBuildingType is returned when a selector matches no catalog entry.
var ErrUnknownBuildingType = errors.New("unknown building type")

// Normalize folds case and strips all whitespace so that "wind power plant",
// "WindPowerPlant" and " Wind  Power Plant " share one key.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Fold().String(s)
}

// LookupByIndex resolves a zero-based position in BuildingTypes.
func LookupByIndex(i int) (BuildingType, error) {
	if i < 0 || i >= len(buildingTypes) {
		return ErrorBuilding(), fmt.Errorf("%w: index %d (want 0-%d)", ErrUnknownBuildingType, i, len(buildingTypes)-1)
	}
	return buildingTypes[i].Clone(), nil
}

// LookupByName matches name against each building's display name, machine
// name and board label after normalization.
func LookupByName(name string) (BuildingType, error) {
	key := Normalize(name)
	if key == "" {
		return ErrorBuilding(), fmt.Errorf("%w: empty name", ErrUnknownBuildingType)
	}
	machine := strings.ReplaceAll(key, "_", "")
	for _, bt := range buildingTypes {
		full := Normalize(bt.Name)
		if key == full || machine == full || key == Normalize(bt.Label) {
			return bt.Clone(), nil
		}
	}
	return ErrorBuilding(), fmt.Errorf("%w: %q", ErrUnknownBuildingType, name)
}

// Lookup resolves a user-supplied selector: an all-digit string is treated
// as an index, anything else as a name. "empty" and "none" resolve to the
// Empty sentinel so that callers can express removal through the same path.
func Lookup(selector string) (BuildingType, error) {
	s := strings.TrimSpace(selector)
	if s != "" && isDigits(s) {
		i, err := strconv.Atoi(s)
		if err != nil {
			return ErrorBuilding(), fmt.Errorf("%w: %q", ErrUnknownBuildingType, selector)
		}
		return LookupByIndex(i)
	}
	switch Normalize(s) {
	case "empty", "none":
		return EmptyBuilding(), nil
	}
	return LookupByName(s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
