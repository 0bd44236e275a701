package pathfinding

import "go-hex-tactics/pkg/hexmap"

// Heuristic returns the axial hex distance from a to b, or 0 when there is no
// goal. It never overestimates when every step costs at least 1.
func Heuristic(a hexmap.Hex, b *hexmap.Hex) float64 {
	if b == nil {
		return 0
	}
	return float64(a.Distance(*b))
}
