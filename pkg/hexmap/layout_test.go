package hexmap

import (
	"math"
	"testing"
)

func TestFitLayout_CentresMap(t *testing.T) {
	hm := NewRadiusMap(3, TerrainGrass)
	l := FitLayout(hm, 20, 800, 600)
	x, y := l.Center(Hex{0, 0})
	if math.Abs(x-400) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Fatalf("centre of radius map at (%v,%v) want (400,300)", x, y)
	}
	for _, h := range hm.Hexes() {
		cx, cy := l.Center(h)
		if got := l.HexAt(cx+3, cy-2); got != h {
			t.Fatalf("HexAt near centre of %v = %v", h, got)
		}
	}
}

func TestFitLayout_Empty(t *testing.T) {
	l := FitLayout(NewHexMap(), 10, 100, 50)
	if l.OriginX != 50 || l.OriginY != 25 {
		t.Fatalf("origin=(%v,%v) want (50,25)", l.OriginX, l.OriginY)
	}
}
