package movement

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"go-hex-tactics/internal/defs"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/pathfinding"
)

var (
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrUnknownUnitType  = errors.New("unknown unit type")
	ErrNoPath           = errors.New("no path")
	ErrInsufficientMove = errors.New("not enough move points")
	ErrOccupied         = errors.New("cell occupied")
)

// Engine moves units over a hex map.
type Engine struct {
	hexMap *hexmap.HexMap
	lib    *defs.Library
	costs  *CostModel
	units  map[string]*Unit
	events *event.Dispatcher
	logger *log.Logger
}

// NewEngine wires an engine. events and logger may be nil.
func NewEngine(hm *hexmap.HexMap, lib *defs.Library, costs *CostModel, events *event.Dispatcher, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		hexMap: hm,
		lib:    lib,
		costs:  costs,
		units:  make(map[string]*Unit),
		events: events,
		logger: logger,
	}
}

func (e *Engine) Map() *hexmap.HexMap { return e.hexMap }

func (e *Engine) Costs() *CostModel { return e.costs }

// AddUnit places a new unit of unitType on pos with a full turn of move points.
func (e *Engine) AddUnit(id, unitType string, player int, pos hexmap.Hex) (*Unit, error) {
	def, ok := e.lib.Unit(unitType)
	if !ok {
		return nil, fmt.Errorf("add %q: %w %q", id, ErrUnknownUnitType, unitType)
	}
	if _, dup := e.units[id]; dup {
		return nil, fmt.Errorf("add %q: duplicate id", id)
	}
	if err := e.hexMap.Occupy(pos, id); err != nil {
		return nil, fmt.Errorf("add %q: %w", id, err)
	}
	u := &Unit{ID: id, Type: unitType, Player: player, Pos: pos, MovePoints: def.Move}
	e.units[id] = u
	return u, nil
}

func (e *Engine) RemoveUnit(id string) error {
	u, ok := e.units[id]
	if !ok {
		return fmt.Errorf("remove %q: %w", id, ErrUnknownUnit)
	}
	e.hexMap.Vacate(u.Pos, id)
	delete(e.units, id)
	return nil
}

func (e *Engine) Unit(id string) (*Unit, bool) {
	u, ok := e.units[id]
	return u, ok
}

// UnitAt returns the unit standing on hex.
func (e *Engine) UnitAt(hex hexmap.Hex) (*Unit, bool) {
	id, ok := e.hexMap.OccupantAt(hex)
	if !ok {
		return nil, false
	}
	return e.Unit(id)
}

// Units returns all units ordered by ID.
func (e *Engine) Units() []*Unit {
	out := make([]*Unit, 0, len(e.units))
	for _, u := range e.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Symbol is the one-letter marker of u's type, "?" when it has none.
func (e *Engine) Symbol(u *Unit) string {
	if def, ok := e.lib.Unit(u.Type); ok && def.Symbol != "" {
		return def.Symbol
	}
	return "?"
}

func (e *Engine) unit(id string) (*Unit, error) {
	u, ok := e.units[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownUnit, id)
	}
	return u, nil
}

// Reach runs a search from the unit's position over its remaining move points.
func (e *Engine) Reach(id string) (pathfinding.Result, error) {
	u, err := e.unit(id)
	if err != nil {
		return pathfinding.Result{}, err
	}
	return pathfinding.Search(e.hexMap, e.costs.MoveCost, u.Pos, u.MovePoints, u,
		pathfinding.WithHeuristicWeight(e.costs.HeuristicWeight(u))), nil
}

// Range lists the cells the unit can move to this turn, excluding its own.
func (e *Engine) Range(id string) ([]hexmap.Hex, error) {
	res, err := e.Reach(id)
	if err != nil {
		return nil, err
	}
	u := e.units[id]
	hexes := res.ReachableHexes()
	out := hexes[:0]
	for _, hex := range hexes {
		if hex == u.Pos || e.hexMap.IsOccupied(hex) {
			continue
		}
		out = append(out, hex)
	}
	return out, nil
}

// Plan finds the cheapest route to target within the unit's move points.
func (e *Engine) Plan(id string, target hexmap.Hex) ([]hexmap.Hex, float64, error) {
	u, err := e.unit(id)
	if err != nil {
		return nil, 0, err
	}
	if other, taken := e.hexMap.OccupantAt(target); taken && other != id {
		return nil, 0, fmt.Errorf("plan %q to %s: %w by %q", id, target, ErrOccupied, other)
	}
	path := pathfinding.GetPath(e.hexMap, e.costs.MoveCost, u.Pos, target, u.MovePoints, u,
		pathfinding.WithHeuristicWeight(e.costs.HeuristicWeight(u)))
	if len(path) == 0 {
		return nil, 0, fmt.Errorf("plan %q to %s: %w", id, target, ErrNoPath)
	}
	cost, ok := pathfinding.PathCost(e.hexMap, e.costs.MoveCost, path, u)
	if !ok {
		return nil, 0, fmt.Errorf("plan %q to %s: %w", id, target, ErrNoPath)
	}
	return path, cost, nil
}

// Move walks the unit to target, paying the path cost from its move points.
func (e *Engine) Move(id string, target hexmap.Hex) ([]hexmap.Hex, error) {
	path, cost, err := e.Plan(id, target)
	if err != nil {
		return nil, err
	}
	u := e.units[id]
	if cost > u.MovePoints {
		return nil, fmt.Errorf("move %q: %w (%.1f > %.1f)", id, ErrInsufficientMove, cost, u.MovePoints)
	}

	from := u.Pos
	if err := e.hexMap.Occupy(target, id); err != nil {
		return nil, fmt.Errorf("move %q: %w", id, err)
	}
	e.hexMap.Vacate(from, id)
	u.Pos = target
	u.MovePoints -= cost

	prev := from
	for i, hex := range path {
		e.events.Dispatch(event.Event{Type: event.UnitStepped, Data: StepEvent{
			Unit: u, From: prev, To: hex, Index: i, Last: i == len(path)-1,
		}})
		prev = hex
	}
	e.events.Dispatch(event.Event{Type: event.UnitMoved, Data: MoveEvent{
		Unit: u, From: from, To: target, Path: path, Cost: cost,
	}})
	e.logger.Printf("%s moved %s -> %s in %d steps, cost %.1f, %.1f left", id, from, target, len(path), cost, u.MovePoints)
	return path, nil
}

// ResetTurn restores every unit's move points from its definition.
func (e *Engine) ResetTurn() {
	for _, u := range e.units {
		if def, ok := e.lib.Unit(u.Type); ok {
			u.MovePoints = def.Move
		}
	}
	e.events.Dispatch(event.Event{Type: event.TurnReset})
}
