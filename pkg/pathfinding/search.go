package pathfinding

import (
	"math"
	"sort"

	"go-hex-tactics/pkg/hexmap"
)

// Unbounded is a budget with no limit.
var Unbounded = math.Inf(1)

// Grid is the coordinate collaborator the search walks over. *hexmap.HexMap
// implements it.
type Grid interface {
	// Hexes lists every cell of the grid.
	Hexes() []hexmap.Hex
	// Tile returns the cell at hex; false when hex is not on the grid.
	Tile(hex hexmap.Hex) (hexmap.Tile, bool)
	// Neighbors returns the in-bounds neighbours of hex.
	Neighbors(hex hexmap.Hex) []hexmap.Hex
	// IsOccupied reports whether another mover stands on hex.
	IsOccupied(hex hexmap.Hex) bool
}

// CostFunc returns the cost for mover to enter tile. Zero, negative, NaN and
// +Inf mean the tile cannot be entered.
type CostFunc[M any] func(tile hexmap.Tile, mover M) float64

func passable(cost float64) bool {
	return cost > 0 && !math.IsInf(cost, 1)
}

// Options tune a single search.
type Options struct {
	Goal            *hexmap.Hex
	HeuristicWeight float64
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithGoal makes the search stop once goal is finalized and biases the frontier towards it.
func WithGoal(goal hexmap.Hex) Option {
	return func(o *Options) { o.Goal = &goal }
}

// WithHeuristicWeight scales the distance estimate added to frontier priorities.
// The search stays optimal while weight is at most the cheapest step cost; 0
// turns it into plain Dijkstra.
func WithHeuristicWeight(weight float64) Option {
	return func(o *Options) { o.HeuristicWeight = weight }
}

// Result is the outcome of a Search.
type Result struct {
	// Distances holds the best known cost for every grid cell; +Inf where none was found.
	Distances map[hexmap.Hex]float64
	// Previous maps a cell to its predecessor on the cheapest route found.
	Previous map[hexmap.Hex]hexmap.Hex
	// Reachable holds the cells whose cost is within the budget. The start is always in it.
	Reachable map[hexmap.Hex]struct{}
	// Expanded counts the cells finalized.
	Expanded int
}

func (r Result) IsReachable(hex hexmap.Hex) bool {
	_, ok := r.Reachable[hex]
	return ok
}

// Cost returns the cost to hex if it is reachable.
func (r Result) Cost(hex hexmap.Hex) (float64, bool) {
	if !r.IsReachable(hex) {
		return 0, false
	}
	return r.Distances[hex], true
}

// ReachableHexes returns the reachable cells sorted by (Q, R).
func (r Result) ReachableHexes() []hexmap.Hex {
	hexes := make([]hexmap.Hex, 0, len(r.Reachable))
	for hex := range r.Reachable {
		hexes = append(hexes, hex)
	}
	sort.Slice(hexes, func(i, j int) bool { return hexes[i].Less(hexes[j]) })
	return hexes
}

// Search explores the grid from start, spending at most maxCost. Occupied cells
// are never entered; the start itself is exempt.
func Search[M any](grid Grid, cost CostFunc[M], start hexmap.Hex, maxCost float64, mover M, opts ...Option) Result {
	o := Options{HeuristicWeight: 1}
	for _, opt := range opts {
		opt(&o)
	}
	estimate := func(hex hexmap.Hex) float64 {
		if o.Goal == nil || o.HeuristicWeight == 0 {
			return 0
		}
		return o.HeuristicWeight * Heuristic(hex, o.Goal)
	}

	hexes := grid.Hexes()
	res := Result{
		Distances: make(map[hexmap.Hex]float64, len(hexes)),
		Previous:  make(map[hexmap.Hex]hexmap.Hex),
		Reachable: make(map[hexmap.Hex]struct{}),
	}
	for _, hex := range hexes {
		res.Distances[hex] = math.Inf(1)
	}
	res.Distances[start] = 0
	res.Reachable[start] = struct{}{}

	closed := make(map[hexmap.Hex]struct{})
	frontier := &PriorityQueue[hexmap.Hex]{}
	frontier.Enqueue(start, estimate(start))

	for !frontier.IsEmpty() {
		current, _ := frontier.Dequeue()
		if _, done := closed[current]; done {
			continue // устаревшая запись
		}
		closed[current] = struct{}{}
		res.Expanded++

		currentDistance := res.Distances[current]
		if currentDistance > maxCost {
			break
		}
		if o.Goal != nil && current == *o.Goal {
			break
		}
		if _, ok := grid.Tile(current); !ok {
			continue
		}

		for _, neighbor := range grid.Neighbors(current) {
			if grid.IsOccupied(neighbor) {
				continue
			}
			if _, done := closed[neighbor]; done {
				continue
			}
			tile, ok := grid.Tile(neighbor)
			if !ok {
				continue
			}
			step := cost(tile, mover)
			if !passable(step) {
				continue
			}

			candidate := currentDistance + step
			known, seen := res.Distances[neighbor]
			if !seen {
				known = math.Inf(1)
			}
			if candidate < known {
				res.Distances[neighbor] = candidate
				res.Previous[neighbor] = current
				if candidate <= maxCost {
					res.Reachable[neighbor] = struct{}{}
					frontier.Enqueue(neighbor, candidate+estimate(neighbor))
				}
			}
		}
	}

	return res
}
