// internal/app/world.go
package app

import (
	"fmt"
	"io"
	"log"

	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/defs"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/mapgen"
	"go-hex-tactics/internal/movement"
	"go-hex-tactics/internal/roads"
	"go-hex-tactics/pkg/hexmap"
)

// World holds everything a front end needs to move units around a map.
type World struct {
	Options config.Options
	Library *defs.Library
	Map     *hexmap.HexMap
	Costs   *movement.CostModel
	Events  *event.Dispatcher
	Engine  *movement.Engine
	Roads   *roads.Builder
}

// NewWorld loads definitions and the map named by opts and wires the engine.
// Definitions from opts.DefsPath are merged over the built-in ones.
func NewWorld(opts config.Options, logger *log.Logger) (*World, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	lib := defs.Default()
	if opts.DefsPath != "" {
		extra, err := defs.Load(opts.DefsPath)
		if err != nil {
			return nil, err
		}
		lib.Merge(extra)
		logger.Printf("definitions merged from %s", opts.DefsPath)
	}

	hm, err := loadMap(opts)
	if err != nil {
		return nil, err
	}
	logger.Printf("map ready: %d cells", len(hm.Tiles))

	costs := movement.NewCostModel(lib, opts)
	events := event.NewDispatcher()
	w := &World{
		Options: opts,
		Library: lib,
		Map:     hm,
		Costs:   costs,
		Events:  events,
		Engine:  movement.NewEngine(hm, lib, costs, events, logger),
		Roads:   roads.NewBuilder(hm, costs, events),
	}
	for _, p := range opts.Units {
		at, err := hexmap.ParseKey(p.At)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", p.ID, err)
		}
		if _, err := w.Engine.AddUnit(p.ID, p.Type, p.Player, at); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func loadMap(opts config.Options) (*hexmap.HexMap, error) {
	if opts.MapPath != "" {
		return hexmap.LoadTextMap(opts.MapPath)
	}
	cols, rows := opts.MapCols, opts.MapRows
	if cols <= 0 || rows <= 0 {
		cols, rows = config.DefaultMapCols, config.DefaultMapRows
	}
	return mapgen.Generate(mapgen.Params{Cols: cols, Rows: rows, Seed: opts.MapSeed, Smoothing: 2}), nil
}

// PlaceDemoUnits gives each of two players a tank on the first and last cell
// of the map a tank can stand on. Used when no units are configured.
func (w *World) PlaceDemoUnits() error {
	tank := &movement.Unit{Type: "Tank1"}
	var spots []hexmap.Hex
	for _, hex := range w.Map.Hexes() {
		if w.Costs.MoveCost(w.Map.Tiles[hex], tank) > 0 && !w.Map.IsOccupied(hex) {
			spots = append(spots, hex)
		}
	}
	if len(spots) < 2 {
		return fmt.Errorf("demo units: only %d free cells", len(spots))
	}
	if _, err := w.Engine.AddUnit("red-1", "Tank1", 0, spots[0]); err != nil {
		return err
	}
	_, err := w.Engine.AddUnit("blue-1", "Tank1", 1, spots[len(spots)-1])
	return err
}
