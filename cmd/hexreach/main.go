// cmd/hexreach/main.go
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"go-hex-tactics/internal/app"
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/tui"
	"go-hex-tactics/pkg/hexmap"
)

const cliUnitID = "hexreach"

type reachOutput struct {
	Unit      string             `json:"unit"`
	From      string             `json:"from"`
	Budget    *float64           `json:"budget"`
	Reachable map[string]float64 `json:"reachable"`
	Expanded  int                `json:"expanded"`
}

type pathOutput struct {
	Unit   string   `json:"unit"`
	From   string   `json:"from"`
	To     string   `json:"to"`
	Budget *float64 `json:"budget"`
	Found  bool     `json:"found"`
	Path   []string `json:"path"`
	Cost   float64  `json:"cost"`
}

type roadOutput struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Cells []string `json:"cells"`
}

type cliFlags struct {
	mapPath, defsPath, configPath string
	unitType                      string
	from, to                      string
	budget                        float64
	road, showTUI                 bool
	seed                          int64
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("hexreach", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.mapPath, "map", "", "text map file (overrides map_path)")
	fs.StringVar(&f.defsPath, "defs", "", "extra terrain/unit definitions, JSON or YAML")
	fs.StringVar(&f.configPath, "config", "", "options YAML")
	fs.StringVar(&f.unitType, "unit", "Tank1", "unit type to move")
	fs.StringVar(&f.from, "from", "0,0", "start cell q,r")
	fs.StringVar(&f.to, "to", "", "goal cell q,r; without it the reachable set is printed")
	fs.Float64Var(&f.budget, "budget", -1, "movement budget; negative uses the unit's move points, inf for no limit")
	fs.BoolVar(&f.road, "road", false, "build a road from -from to -to and print its cells")
	fs.BoolVar(&f.showTUI, "tui", false, "show the result on the terminal")
	fs.Int64Var(&f.seed, "seed", 0, "seed for a generated map when no map file is given")
	err := fs.Parse(args)
	return f, err
}

func main() {
	logger := log.New(os.Stderr, "[hexreach] ", log.LstdFlags)
	if err := run(os.Args[1:], os.Stdout, os.Stderr, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer, logger *log.Logger) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	opts := config.DefaultOptions()
	if f.configPath != "" {
		if opts, err = config.LoadOptions(f.configPath); err != nil {
			return err
		}
	}
	if f.mapPath != "" {
		opts.MapPath = f.mapPath
	}
	if f.defsPath != "" {
		opts.DefsPath = f.defsPath
	}
	if f.seed != 0 {
		opts.MapSeed = f.seed
	}

	world, err := app.NewWorld(opts, logger)
	if err != nil {
		return err
	}
	from, err := hexmap.ParseKey(f.from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	var to *hexmap.Hex
	if f.to != "" {
		h, err := hexmap.ParseKey(f.to)
		if err != nil {
			return fmt.Errorf("-to: %w", err)
		}
		to = &h
	}

	if f.road {
		if to == nil {
			return errors.New("-road needs -to")
		}
		cells, err := world.Roads.Build(from, *to)
		if err != nil {
			return err
		}
		logger.Printf("road of %d cells", len(cells))
		if err := writeJSON(stdout, roadOutput{From: from.Key(), To: to.Key(), Cells: keys(cells)}); err != nil {
			return err
		}
		if f.showTUI {
			return tui.Run(view(world, nil, cells, fmt.Sprintf("road %s -> %s", from, to)))
		}
		return nil
	}

	u, err := world.Engine.AddUnit(cliUnitID, f.unitType, 0, from)
	if err != nil {
		return err
	}
	if f.budget >= 0 {
		u.MovePoints = f.budget
	}
	budget := jsonBudget(u.MovePoints)

	if to == nil {
		res, err := world.Engine.Reach(cliUnitID)
		if err != nil {
			return err
		}
		out := reachOutput{Unit: f.unitType, From: from.Key(), Budget: budget, Reachable: make(map[string]float64), Expanded: res.Expanded}
		for _, hex := range res.ReachableHexes() {
			out.Reachable[hex.Key()] = res.Distances[hex]
		}
		logger.Printf("%d cells reachable from %s", len(out.Reachable), from)
		if err := writeJSON(stdout, out); err != nil {
			return err
		}
		if f.showTUI {
			return tui.Run(view(world, res.Reachable, nil, fmt.Sprintf("%s from %s: %d cells", f.unitType, from, len(out.Reachable))))
		}
		return nil
	}

	out := pathOutput{Unit: f.unitType, From: from.Key(), To: to.Key(), Budget: budget, Path: []string{}}
	path, cost, err := world.Engine.Plan(cliUnitID, *to)
	if err == nil {
		out.Found, out.Path, out.Cost = true, keys(path), cost
	} else {
		logger.Printf("no path: %v", err)
	}
	if err := writeJSON(stdout, out); err != nil {
		return err
	}
	if f.showTUI {
		return tui.Run(view(world, nil, path, fmt.Sprintf("%s %s -> %s cost %.1f", f.unitType, from, to, cost)))
	}
	return nil
}

func jsonBudget(b float64) *float64 {
	if math.IsInf(b, 1) {
		return nil
	}
	return &b
}

func keys(hexes []hexmap.Hex) []string {
	out := make([]string, len(hexes))
	for i, hex := range hexes {
		out[i] = hex.Key()
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func view(world *app.World, reachable map[hexmap.Hex]struct{}, path []hexmap.Hex, status string) tui.View {
	units := make(map[hexmap.Hex]tui.Marker)
	for _, u := range world.Engine.Units() {
		symbol := []rune(world.Engine.Symbol(u))
		units[u.Pos] = tui.Marker{Symbol: symbol[0], Player: u.Player}
	}
	return tui.View{Map: world.Map, Reachable: reachable, Path: path, Units: units, Status: status + "  (any key to quit)"}
}
