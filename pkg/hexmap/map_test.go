package hexmap

import "testing"

func TestNewRadiusMap(t *testing.T) {
	for radius := 0; radius <= 4; radius++ {
		hm := NewRadiusMap(radius, TerrainGrass)
		if want := 1 + 3*radius*(radius+1); len(hm.Tiles) != want {
			t.Fatalf("radius %d: %d cells want %d", radius, len(hm.Tiles), want)
		}
	}
}

func TestHexMap_NeighborsAndRange(t *testing.T) {
	hm := NewRectMap(5, 5, TerrainGrass)
	if n := hm.Neighbors(Hex{0, 0}); len(n) != 2 {
		t.Fatalf("corner neighbours=%v want 2", n)
	}
	if n := hm.Neighbors(Hex{2, 2}); len(n) != 6 {
		t.Fatalf("interior neighbours=%d want 6", len(n))
	}
	if got := len(hm.GetHexesInRange(Hex{2, 2}, 2)); got != 19 {
		t.Fatalf("range=%d want 19", got)
	}
	hexes := hm.Hexes()
	if len(hexes) != 25 || hexes[0] != (Hex{0, 0}) || hexes[24] != (Hex{4, 4}) {
		t.Fatalf("hexes not sorted: %v", hexes)
	}
}

func TestHexMap_Occupancy(t *testing.T) {
	hm := NewRectMap(2, 2, TerrainGrass)
	if err := hm.Occupy(Hex{0, 0}, "a"); err != nil {
		t.Fatalf("occupy: %v", err)
	}
	if err := hm.Occupy(Hex{0, 0}, "a"); err != nil {
		t.Fatalf("re-occupy by same id: %v", err)
	}
	if err := hm.Occupy(Hex{0, 0}, "b"); err == nil {
		t.Fatalf("expected conflict")
	}
	if err := hm.Occupy(Hex{5, 5}, "b"); err == nil {
		t.Fatalf("expected error for missing cell")
	}
	hm.Vacate(Hex{0, 0}, "b")
	if !hm.IsOccupied(Hex{0, 0}) {
		t.Fatalf("vacate by another id must not clear the cell")
	}
	hm.Vacate(Hex{0, 0}, "a")
	if hm.IsOccupied(Hex{0, 0}) {
		t.Fatalf("cell still occupied")
	}
}

func TestHexMap_Bounds(t *testing.T) {
	if _, _, ok := NewHexMap().Bounds(); ok {
		t.Fatalf("empty map has no bounds")
	}
	lo, hi, ok := NewRadiusMap(2, TerrainGrass).Bounds()
	if !ok || lo != (Hex{-2, -2}) || hi != (Hex{2, 2}) {
		t.Fatalf("bounds=%v %v %v", lo, hi, ok)
	}
}
