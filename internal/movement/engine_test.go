package movement

import (
	"errors"
	"testing"

	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/defs"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/pkg/hexmap"
)

func newTestEngine(t *testing.T, hm *hexmap.HexMap) (*Engine, *event.Dispatcher) {
	t.Helper()
	lib := defs.Default()
	events := event.NewDispatcher()
	return NewEngine(hm, lib, NewCostModel(lib, config.DefaultOptions()), events, nil), events
}

func TestEngine_Range(t *testing.T) {
	hm := hexmap.NewRectMap(5, 5, hexmap.TerrainGrass)
	eng, _ := newTestEngine(t, hm)
	if _, err := eng.AddUnit("t1", "Tank1", 0, hexmap.Hex{Q: 2, R: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := eng.AddUnit("e1", "Tank1", 1, hexmap.Hex{Q: 2, R: 3}); err != nil {
		t.Fatalf("add enemy: %v", err)
	}

	hexes, err := eng.Range("t1")
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	for _, hex := range hexes {
		if hex == (hexmap.Hex{Q: 2, R: 2}) || hex == (hexmap.Hex{Q: 2, R: 3}) {
			t.Fatalf("range contains own or occupied cell %s", hex)
		}
	}
	// 18 cells within two steps, minus the enemy's cell and (2,4), which only the enemy's cell reaches in two
	if len(hexes) != 16 {
		t.Fatalf("range=%d want 16: %v", len(hexes), hexes)
	}
	for _, hex := range hexes {
		if hex == (hexmap.Hex{Q: 2, R: 4}) {
			t.Fatalf("(2,4) needs three steps around the enemy")
		}
	}

	if _, err := eng.Range("ghost"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("err=%v want ErrUnknownUnit", err)
	}
}

func TestEngine_MoveSpendsPointsAndDispatches(t *testing.T) {
	hm := hexmap.NewRectMap(5, 5, hexmap.TerrainGrass)
	eng, events := newTestEngine(t, hm)
	u, err := eng.AddUnit("t1", "Tank1", 0, hexmap.Hex{Q: 2, R: 2})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	var steps []StepEvent
	var moved []MoveEvent
	events.Subscribe(event.UnitStepped, event.ListenerFunc(func(e event.Event) { steps = append(steps, e.Data.(StepEvent)) }))
	events.Subscribe(event.UnitMoved, event.ListenerFunc(func(e event.Event) { moved = append(moved, e.Data.(MoveEvent)) }))

	target := hexmap.Hex{Q: 2, R: 4}
	path, err := eng.Move("t1", target)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if len(path) != 2 || path[1] != target {
		t.Fatalf("path=%v", path)
	}
	if u.Pos != target || u.MovePoints != 0 {
		t.Fatalf("unit=%+v want at %s with 0 points", u, target)
	}
	if hm.IsOccupied(hexmap.Hex{Q: 2, R: 2}) {
		t.Fatalf("old cell still occupied")
	}
	if id, _ := hm.OccupantAt(target); id != "t1" {
		t.Fatalf("target occupant=%q", id)
	}
	if len(steps) != 2 || !steps[1].Last || steps[0].From != (hexmap.Hex{Q: 2, R: 2}) {
		t.Fatalf("steps=%+v", steps)
	}
	if len(moved) != 1 || moved[0].Cost != 2 {
		t.Fatalf("moved=%+v", moved)
	}

	if _, err := eng.Move("t1", hexmap.Hex{Q: 2, R: 3}); !errors.Is(err, ErrNoPath) {
		t.Fatalf("move with no points: err=%v want ErrNoPath", err)
	}

	eng.ResetTurn()
	if u.MovePoints != 2 {
		t.Fatalf("points after reset=%v want 2", u.MovePoints)
	}
}

func TestEngine_PlanErrors(t *testing.T) {
	hm := hexmap.NewRectMap(5, 5, hexmap.TerrainGrass)
	eng, _ := newTestEngine(t, hm)
	_, _ = eng.AddUnit("t1", "Tank1", 0, hexmap.Hex{Q: 0, R: 0})
	_, _ = eng.AddUnit("t2", "Tank1", 0, hexmap.Hex{Q: 1, R: 0})

	if _, _, err := eng.Plan("t1", hexmap.Hex{Q: 1, R: 0}); !errors.Is(err, ErrOccupied) {
		t.Fatalf("err=%v want ErrOccupied", err)
	}
	if _, _, err := eng.Plan("t1", hexmap.Hex{Q: 4, R: 4}); !errors.Is(err, ErrNoPath) {
		t.Fatalf("err=%v want ErrNoPath (out of budget)", err)
	}
	if _, err := eng.AddUnit("t3", "Tank1", 0, hexmap.Hex{Q: 1, R: 0}); err == nil {
		t.Fatalf("expected error adding onto an occupied cell")
	}
	if _, err := eng.AddUnit("x", "Zeppelin", 0, hexmap.Hex{Q: 3, R: 3}); !errors.Is(err, ErrUnknownUnitType) {
		t.Fatalf("err=%v want ErrUnknownUnitType", err)
	}
}

func TestEngine_RoadsExtendRange(t *testing.T) {
	hm := hexmap.NewRectMap(6, 1, hexmap.TerrainGrass)
	for q := 1; q < 6; q++ {
		hm.SetRoad(hexmap.Hex{Q: q, R: 0}, true)
	}
	eng, _ := newTestEngine(t, hm)
	_, _ = eng.AddUnit("t1", "Tank1", 0, hexmap.Hex{Q: 0, R: 0})

	path, cost, err := eng.Plan("t1", hexmap.Hex{Q: 4, R: 0})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(path) != 4 || cost != 2 {
		t.Fatalf("path=%v cost=%v want 4 steps costing 2", path, cost)
	}
	if _, _, err := eng.Plan("t1", hexmap.Hex{Q: 5, R: 0}); !errors.Is(err, ErrNoPath) {
		t.Fatalf("fifth road cell costs 2.5, err=%v want ErrNoPath", err)
	}
}

func TestEngine_BoatStaysOnWater(t *testing.T) {
	hm := hexmap.NewRectMap(4, 1, hexmap.TerrainWater)
	hm.SetTerrain(hexmap.Hex{Q: 2, R: 0}, hexmap.TerrainSand)
	eng, _ := newTestEngine(t, hm)
	_, _ = eng.AddUnit("b1", "Boat1", 0, hexmap.Hex{Q: 0, R: 0})

	hexes, err := eng.Range("b1")
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(hexes) != 1 || hexes[0] != (hexmap.Hex{Q: 1, R: 0}) {
		t.Fatalf("boat range=%v want only (1,0)", hexes)
	}
}

func TestEngine_RemoveUnit(t *testing.T) {
	hm := hexmap.NewRectMap(2, 2, hexmap.TerrainGrass)
	eng, _ := newTestEngine(t, hm)
	_, _ = eng.AddUnit("t1", "Droid", 0, hexmap.Hex{Q: 1, R: 1})
	if got := eng.Symbol(eng.Units()[0]); got != "E" {
		t.Fatalf("symbol=%q want E", got)
	}
	if err := eng.RemoveUnit("t1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if hm.IsOccupied(hexmap.Hex{Q: 1, R: 1}) {
		t.Fatalf("cell still occupied after remove")
	}
	if err := eng.RemoveUnit("t1"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("err=%v want ErrUnknownUnit", err)
	}
}
