package pathfinding

import (
	"reflect"
	"testing"

	"go-hex-tactics/pkg/hexmap"
)

func checkPath(t *testing.T, hm *hexmap.HexMap, from hexmap.Hex, path []hexmap.Hex) {
	t.Helper()
	prev := from
	for i, hex := range path {
		if !prev.IsAdjacent(hex) {
			t.Fatalf("step %d: %s not adjacent to %s", i, hex, prev)
		}
		if !hm.Contains(hex) {
			t.Fatalf("step %d: %s off the map", i, hex)
		}
		prev = hex
	}
}

func TestGetPath_Straight(t *testing.T) {
	hm := hexmap.NewRectMap(5, 5, hexmap.TerrainGrass)
	from, to := hexmap.Hex{Q: 2, R: 2}, hexmap.Hex{Q: 2, R: 4}

	path := GetPath(hm, terrainCost, from, to, 2, "tank")
	want := []hexmap.Hex{{Q: 2, R: 3}, {Q: 2, R: 4}}
	if !reflect.DeepEqual(path, want) {
		t.Fatalf("path=%v want %v", path, want)
	}
	if cost, ok := PathCost(hm, terrainCost, path, "tank"); !ok || cost != 2 {
		t.Fatalf("path cost=(%v,%v) want (2,true)", cost, ok)
	}
}

func TestGetPath_RoutesAroundMountain(t *testing.T) {
	hm := hexmap.NewRectMap(5, 5, hexmap.TerrainGrass)
	from, to := hexmap.Hex{Q: 2, R: 2}, hexmap.Hex{Q: 2, R: 4}
	hm.SetTerrain(hexmap.Hex{Q: 2, R: 3}, hexmap.TerrainMountain)

	if path := GetPath(hm, terrainCost, from, to, 2, "tank"); path != nil {
		t.Fatalf("no detour fits in 2, got %v", path)
	}

	path := GetPath(hm, terrainCost, from, to, 3, "tank")
	if len(path) != 3 {
		t.Fatalf("detour=%v want 3 steps", path)
	}
	checkPath(t, hm, from, path)
	if path[len(path)-1] != to {
		t.Fatalf("path ends at %s want %s", path[len(path)-1], to)
	}
	for _, hex := range path {
		if hex == (hexmap.Hex{Q: 2, R: 3}) {
			t.Fatalf("path crosses the mountain: %v", path)
		}
	}
	if cost, _ := PathCost(hm, terrainCost, path, "tank"); cost != 3 {
		t.Fatalf("detour cost=%v want 3", cost)
	}
}

func TestGetPath_SameCellAndUnreachable(t *testing.T) {
	hm := hexmap.NewRectMap(3, 3, hexmap.TerrainGrass)
	start := hexmap.Hex{Q: 1, R: 1}
	if path := GetPath(hm, terrainCost, start, start, 5, "tank"); len(path) != 0 {
		t.Fatalf("path to own cell=%v want empty", path)
	}

	// goal walled off by water
	hm.SetTerrain(hexmap.Hex{Q: 1, R: 2}, hexmap.TerrainWater)
	hm.SetTerrain(hexmap.Hex{Q: 2, R: 1}, hexmap.TerrainWater)
	if path := GetPath(hm, terrainCost, hexmap.Hex{Q: 0, R: 0}, hexmap.Hex{Q: 2, R: 2}, Unbounded, "tank"); path != nil {
		t.Fatalf("isolated goal should yield no path, got %v", path)
	}

	if path := GetPath(hm, terrainCost, start, hexmap.Hex{Q: 9, R: 9}, Unbounded, "tank"); path != nil {
		t.Fatalf("off-map goal should yield no path, got %v", path)
	}
}

func TestGetPath_OccupiedGoal(t *testing.T) {
	hm := hexmap.NewRectMap(5, 5, hexmap.TerrainGrass)
	goal := hexmap.Hex{Q: 3, R: 2}
	_ = hm.Occupy(goal, "enemy")
	if path := GetPath(hm, terrainCost, hexmap.Hex{Q: 2, R: 2}, goal, Unbounded, "tank"); path != nil {
		t.Fatalf("occupied goal should yield no path, got %v", path)
	}
}

func TestGetPath_OptimalOnMixedTerrain(t *testing.T) {
	hm := mustParse(t, `.....
.ff=.
.f^=.
.ff=.
.....
`)
	from, to := hexmap.Hex{Q: 0, R: 0}, hexmap.Hex{Q: 4, R: 4}
	exact := Search(hm, terrainCost, from, Unbounded, "tank")

	// 0.5 is the cheapest step here, so a weight of 0.5 keeps the estimate admissible
	path := GetPath(hm, terrainCost, from, to, Unbounded, "tank", WithHeuristicWeight(0.5))
	checkPath(t, hm, from, path)
	cost, ok := PathCost(hm, terrainCost, path, "tank")
	if !ok {
		t.Fatalf("path %v crosses impassable cells", path)
	}
	if cost != exact.Distances[to] {
		t.Fatalf("path cost=%v want optimal %v", cost, exact.Distances[to])
	}

	dijkstra := GetPath(hm, terrainCost, from, to, Unbounded, "tank", WithHeuristicWeight(0))
	if c, _ := PathCost(hm, terrainCost, dijkstra, "tank"); c != exact.Distances[to] {
		t.Fatalf("weight 0 cost=%v want %v", c, exact.Distances[to])
	}
}

func TestGetPath_CostMatchesSearchDistance(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		hm := randomMap(seed, 9)
		from, to := hexmap.Hex{Q: 0, R: 0}, hexmap.Hex{Q: 8, R: 8}
		hm.SetTerrain(from, hexmap.TerrainGrass)

		res := Search(hm, terrainCost, from, Unbounded, "tank", WithGoal(to), WithHeuristicWeight(0.5))
		path := GetPath(hm, terrainCost, from, to, Unbounded, "tank", WithHeuristicWeight(0.5))
		if !res.IsReachable(to) {
			if path != nil {
				t.Fatalf("seed %d: unreachable goal but path %v", seed, path)
			}
			continue
		}
		checkPath(t, hm, from, path)
		cost, ok := PathCost(hm, terrainCost, path, "tank")
		if !ok || cost != res.Distances[to] {
			t.Fatalf("seed %d: path cost=(%v,%v) want %v", seed, cost, ok, res.Distances[to])
		}
	}
}
