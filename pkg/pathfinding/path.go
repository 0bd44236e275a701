package pathfinding

import "go-hex-tactics/pkg/hexmap"

// GetPath returns the cells to move through to get from `from` to `to` within
// budget, ending at `to` and not including `from`. It returns nil when `to`
// cannot be reached. Among equal-cost routes any one may be returned.
func GetPath[M any](grid Grid, cost CostFunc[M], from, to hexmap.Hex, budget float64, mover M, opts ...Option) []hexmap.Hex {
	opts = append(opts[:len(opts):len(opts)], WithGoal(to))
	res := Search(grid, cost, from, budget, mover, opts...)
	if !res.IsReachable(to) {
		return nil
	}
	return reconstructPath(res.Previous, from, to)
}

// reconstructPath walks previous back from goal and drops the start cell.
func reconstructPath(previous map[hexmap.Hex]hexmap.Hex, start, goal hexmap.Hex) []hexmap.Hex {
	path := []hexmap.Hex{goal}
	for current := goal; current != start; {
		prev, ok := previous[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if path[0] != start {
		// the walk did not end at the start; previous was not built from it
		return nil
	}
	if len(path) == 1 {
		return nil
	}
	return path[1:]
}

// PathCost sums the entry cost of every cell on path. It returns false if a
// cell is missing from the grid or cannot be entered.
func PathCost[M any](grid Grid, cost CostFunc[M], path []hexmap.Hex, mover M) (float64, bool) {
	total := 0.0
	for _, hex := range path {
		tile, ok := grid.Tile(hex)
		if !ok {
			return 0, false
		}
		step := cost(tile, mover)
		if !passable(step) {
			return 0, false
		}
		total += step
	}
	return total, true
}
