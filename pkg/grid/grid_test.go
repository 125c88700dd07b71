package grid

import (
	"errors"
	"testing"

	"github.com/Flojomojo/capycity/pkg/catalog"
)

func building(t *testing.T, k catalog.BuildingKind) catalog.BuildingType {
	t.Helper()
	bt, ok := catalog.BuildingByKind(k)
	if !ok {
		t.Fatalf("no catalog entry for %s", k)
	}
	return bt
}

func mustGrid(t *testing.T, h, w int) *Grid {
	t.Helper()
	g, err := New(h, w)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", h, w, err)
	}
	return g
}

func TestNewAllEmpty(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 3}, {9, 12}} {
		g := mustGrid(t, dims[0], dims[1])
		if g.Height() != dims[0] || g.Width() != dims[1] {
			t.Errorf("dimensions = %dx%d, want %dx%d", g.Height(), g.Width(), dims[0], dims[1])
		}
		for x := 0; x < g.Height(); x++ {
			for y := 0; y < g.Width(); y++ {
				bt, err := g.Get(x, y)
				if err != nil {
					t.Fatalf("Get(%d, %d): %v", x, y, err)
				}
				if !bt.IsEmpty() {
					t.Errorf("cell (%d, %d) = %s, want empty", x, y, bt.Kind)
				}
			}
		}
		for bt := range g.AllPlaced() {
			t.Errorf("fresh grid yielded %s", bt.Kind)
		}
		if g.Occupied() != 0 {
			t.Errorf("Occupied() = %d, want 0", g.Occupied())
		}
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {0, 0}} {
		g, err := New(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
		if g != nil {
			t.Errorf("New(%d, %d) returned a grid", dims[0], dims[1])
		}
	}
}

func TestNewTooManyCells(t *testing.T) {
	tests := [][2]int{
		{1 << 32, 1 << 32},
		{1 << 62, 4},
		{MaxCells + 1, 1},
		{1, MaxCells + 1},
		{1025, 1024},
	}
	for _, dims := range tests {
		g, err := New(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
		if g != nil {
			t.Errorf("New(%d, %d) returned a grid", dims[0], dims[1])
		}
	}

	for _, dims := range [][2]int{{1024, 1024}, {1, MaxCells}, {MaxCells, 1}} {
		if err := CheckDimensions(dims[0], dims[1]); err != nil {
			t.Errorf("CheckDimensions(%d, %d) = %v, want nil", dims[0], dims[1], err)
		}
	}

	g := mustGrid(t, MaxCells, 1)
	if err := g.Place(MaxCells-1, 0, building(t, catalog.SolarPanel)); err != nil {
		t.Fatalf("Place on the last cell: %v", err)
	}
	if g.Occupied() != 1 {
		t.Errorf("Occupied() = %d, want 1", g.Occupied())
	}
}

func TestPlaceAndGet(t *testing.T) {
	g := mustGrid(t, 3, 4)
	if err := g.Place(2, 3, building(t, catalog.WindPowerPlant)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	bt, err := g.Get(2, 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if bt.Kind != catalog.WindPowerPlant {
		t.Errorf("Get(2, 3) = %s, want wind power plant", bt.Kind)
	}
	other, _ := g.Get(0, 0)
	if !other.IsEmpty() {
		t.Errorf("neighbouring cell changed to %s", other.Kind)
	}
}

func TestPlaceSameTypeTwice(t *testing.T) {
	g := mustGrid(t, 2, 2)
	solar := building(t, catalog.SolarPanel)
	if err := g.Place(0, 0, solar); err != nil {
		t.Fatalf("first Place: %v", err)
	}
	err := g.Place(0, 0, solar)
	if !errors.Is(err, ErrAlreadyPresent) {
		t.Fatalf("second Place error = %v, want ErrAlreadyPresent", err)
	}
	var pe *PlacementError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PlacementError, got %T", err)
	}
	if pe.Op != "place" || pe.X != 0 || pe.Y != 0 || pe.Building != catalog.SolarPanel {
		t.Errorf("unexpected placement error: %+v", pe)
	}
}

func TestPlaceOverOtherType(t *testing.T) {
	g := mustGrid(t, 2, 2)
	if err := g.Place(1, 0, building(t, catalog.HydroelectricPowerPlant)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	err := g.Place(1, 0, building(t, catalog.SolarPanel))
	if !errors.Is(err, ErrOccupiedByOther) {
		t.Fatalf("Place over hydro error = %v, want ErrOccupiedByOther", err)
	}
	bt, _ := g.Get(1, 0)
	if bt.Kind != catalog.HydroelectricPowerPlant {
		t.Errorf("cell changed to %s after rejected placement", bt.Kind)
	}
}

func TestRemove(t *testing.T) {
	g := mustGrid(t, 2, 2)
	if err := g.Place(0, 1, building(t, catalog.SolarPanel)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := g.Remove(0, 1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	bt, _ := g.Get(0, 1)
	if !bt.IsEmpty() {
		t.Errorf("cell = %s after remove, want empty", bt.Kind)
	}

	err := g.Remove(0, 1)
	if !errors.Is(err, ErrAlreadyPresent) {
		t.Errorf("Remove on empty cell error = %v, want ErrAlreadyPresent", err)
	}
	var pe *PlacementError
	if errors.As(err, &pe) && pe.Op != "remove" {
		t.Errorf("op = %q, want remove", pe.Op)
	}

	// Placing Empty explicitly is the same operation.
	if err := g.Place(0, 1, catalog.EmptyBuilding()); !errors.Is(err, ErrAlreadyPresent) {
		t.Errorf("Place(empty) on empty cell error = %v, want ErrAlreadyPresent", err)
	}
}

func TestOutOfBounds(t *testing.T) {
	g := mustGrid(t, 2, 3)
	solar := building(t, catalog.SolarPanel)
	coords := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {2, 3}, {-5, -5}, {100, 1}}
	for _, c := range coords {
		bt, err := g.Get(c[0], c[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d, %d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if bt.Kind != catalog.Error {
			t.Errorf("Get(%d, %d) = %s, want error sentinel", c[0], c[1], bt.Kind)
		}
		if err := g.Place(c[0], c[1], solar); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Place(%d, %d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if err := g.Remove(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Remove(%d, %d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if g.Occupied() != 0 {
		t.Errorf("out-of-bounds placements mutated the grid")
	}
}

func TestPlaceErrorSentinelRejected(t *testing.T) {
	g := mustGrid(t, 1, 1)
	if err := g.Place(0, 0, catalog.ErrorBuilding()); !errors.Is(err, ErrInvalidBuilding) {
		t.Errorf("Place(error sentinel) error = %v, want ErrInvalidBuilding", err)
	}
	bt, _ := g.Get(0, 0)
	if !bt.IsEmpty() {
		t.Errorf("cell = %s, want empty", bt.Kind)
	}
}

func TestAllPlacedRowMajor(t *testing.T) {
	g := mustGrid(t, 2, 3)
	placements := []struct {
		x, y int
		kind catalog.BuildingKind
	}{
		{1, 2, catalog.HydroelectricPowerPlant},
		{0, 2, catalog.WindPowerPlant},
		{1, 0, catalog.SolarPanel},
		{0, 0, catalog.SolarPanel},
	}
	for _, p := range placements {
		if err := g.Place(p.x, p.y, building(t, p.kind)); err != nil {
			t.Fatalf("Place(%d, %d): %v", p.x, p.y, err)
		}
	}

	want := []catalog.BuildingKind{
		catalog.SolarPanel, catalog.WindPowerPlant, // row 0
		catalog.SolarPanel, catalog.HydroelectricPowerPlant, // row 1
	}
	for pass := 0; pass < 2; pass++ {
		var got []catalog.BuildingKind
		for bt := range g.AllPlaced() {
			got = append(got, bt.Kind)
		}
		if len(got) != len(want) {
			t.Fatalf("pass %d: AllPlaced yielded %d buildings, want %d", pass, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("pass %d: position %d = %s, want %s", pass, i, got[i], want[i])
			}
		}
	}
	if g.Occupied() != 4 {
		t.Errorf("Occupied() = %d, want 4", g.Occupied())
	}
}

func TestAllPlacedEarlyStop(t *testing.T) {
	g := mustGrid(t, 1, 3)
	for y := 0; y < 3; y++ {
		if err := g.Place(0, y, building(t, catalog.SolarPanel)); err != nil {
			t.Fatal(err)
		}
	}
	n := 0
	for range g.AllPlaced() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d times after break, want 1", n)
	}
}

func TestCellsPositions(t *testing.T) {
	g := mustGrid(t, 2, 2)
	if err := g.Place(1, 0, building(t, catalog.WindPowerPlant)); err != nil {
		t.Fatal(err)
	}
	var positions []Position
	for pos, bt := range g.Cells() {
		positions = append(positions, pos)
		if pos == (Position{X: 1, Y: 0}) && bt.Kind != catalog.WindPowerPlant {
			t.Errorf("cell %v = %s, want wind power plant", pos, bt.Kind)
		}
	}
	want := []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if len(positions) != len(want) {
		t.Fatalf("Cells yielded %d positions, want %d", len(positions), len(want))
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("position %d = %v, want %v", i, positions[i], want[i])
		}
	}
}

func TestGetReturnsCopy(t *testing.T) {
	g := mustGrid(t, 1, 1)
	if err := g.Place(0, 0, building(t, catalog.SolarPanel)); err != nil {
		t.Fatal(err)
	}
	bt, _ := g.Get(0, 0)
	bt.Materials[0] = catalog.Plastic

	again, _ := g.Get(0, 0)
	if again.Materials[0] != catalog.Metal {
		t.Error("mutating a returned building changed the stored cell")
	}
}
