package pathfinding

import (
	"testing"

	"go-hex-tactics/pkg/hexmap"
)

func TestHeuristic(t *testing.T) {
	goal := func(q, r int) *hexmap.Hex { return &hexmap.Hex{Q: q, R: r} }
	tests := []struct {
		name string
		a    hexmap.Hex
		b    *hexmap.Hex
		want float64
	}{
		{"no goal", hexmap.Hex{Q: 3, R: -7}, nil, 0},
		{"same cell", hexmap.Hex{Q: 2, R: 2}, goal(2, 2), 0},
		{"neighbour", hexmap.Hex{Q: 2, R: 2}, goal(3, 1), 1},
		{"straight r", hexmap.Hex{Q: 2, R: 2}, goal(2, 4), 2},
		{"diagonal", hexmap.Hex{Q: 0, R: 0}, goal(3, 3), 6},
		{"opposite signs", hexmap.Hex{Q: 0, R: 0}, goal(3, -3), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Heuristic(tt.a, tt.b); got != tt.want {
				t.Fatalf("Heuristic=%v want %v", got, tt.want)
			}
		})
	}
}
