// Package roads lays roads along the cheapest route between two cells.
package roads

import (
	"errors"
	"fmt"

	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/movement"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/pathfinding"
)

// BuilderType is the unit type whose terrain costs steer road routing.
const BuilderType = "Road"

var ErrNoRoute = errors.New("no route for road")

// Built is the payload of event.RoadBuilt.
type Built struct {
	From, To hexmap.Hex
	Cells    []hexmap.Hex
}

type Builder struct {
	hexMap *hexmap.HexMap
	costs  *movement.CostModel
	events *event.Dispatcher
}

func NewBuilder(hm *hexmap.HexMap, costs *movement.CostModel, events *event.Dispatcher) *Builder {
	return &Builder{hexMap: hm, costs: costs, events: events}
}

// Build marks every cell from `from` to `to` as road and returns them in order.
// Existing roads are cheap to follow, so new roads tend to join old ones.
func (b *Builder) Build(from, to hexmap.Hex) ([]hexmap.Hex, error) {
	if !b.hexMap.Contains(from) {
		return nil, fmt.Errorf("road from %s: %w", from, ErrNoRoute)
	}
	builder := &movement.Unit{ID: "road-builder", Type: BuilderType, Pos: from}
	path := pathfinding.GetPath(b.hexMap, b.costs.MoveCost, from, to, pathfinding.Unbounded, builder,
		pathfinding.WithHeuristicWeight(b.costs.HeuristicWeight(builder)))
	if len(path) == 0 {
		return nil, fmt.Errorf("road %s -> %s: %w", from, to, ErrNoRoute)
	}

	cells := append([]hexmap.Hex{from}, path...)
	for _, hex := range cells {
		b.hexMap.SetRoad(hex, true)
	}
	b.events.Dispatch(event.Event{Type: event.RoadBuilt, Data: Built{From: from, To: to, Cells: cells}})
	return cells, nil
}
