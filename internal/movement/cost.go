package movement

import (
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/defs"
	"go-hex-tactics/pkg/hexmap"
)

// CostModel answers what it costs a unit to enter a tile.
type CostModel struct {
	lib  *defs.Library
	opts config.Options
}

func NewCostModel(lib *defs.Library, opts config.Options) *CostModel {
	return &CostModel{lib: lib, opts: opts}
}

// MoveCost returns the cost for u to enter tile, or 0 when it cannot. u may be
// nil, in which case only terrain costs apply. Roads make any enterable tile
// cost config.RoadMoveCost.
func (c *CostModel) MoveCost(tile hexmap.Tile, u *Unit) float64 {
	base := c.baseCost(tile.Terrain, u)
	if base <= 0 {
		return 0
	}
	if c.opts.EnableRoads && tile.HasRoad {
		return config.RoadMoveCost
	}
	return base
}

func (c *CostModel) baseCost(terrain hexmap.Terrain, u *Unit) float64 {
	if c.opts.EnableUnitSystems && u != nil {
		if def, ok := c.lib.Unit(u.Type); ok {
			if cost, passable, listed := def.TerrainCost(terrain); listed {
				if !passable {
					return 0
				}
				return cost
			}
		}
	}
	if def, ok := c.lib.Terrain[terrain]; ok {
		if def.Impassable {
			return 0
		}
		return def.MoveCost
	}
	return config.DefaultMoveCost
}

// MinStepCost is the cheapest cost u can pay for one step, 0 if u cannot move at all.
func (c *CostModel) MinStepCost(u *Unit) float64 {
	best := 0.0
	for _, t := range hexmap.AllTerrains {
		cost := c.baseCost(t, u)
		if cost <= 0 {
			continue
		}
		if c.opts.EnableRoads {
			cost = min(cost, config.RoadMoveCost)
		}
		if best == 0 || cost < best {
			best = cost
		}
	}
	return best
}

// HeuristicWeight is the largest distance weight that keeps searches for u optimal.
func (c *CostModel) HeuristicWeight(u *Unit) float64 {
	return min(1, c.MinStepCost(u))
}
