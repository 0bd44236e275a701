// pkg/hexmap/map.go
package hexmap

import (
	"fmt"
	"sort"
)

type Tile struct {
	Terrain Terrain
	HasRoad bool
	Height  float64
}

// HexMap is the in-memory hex registry. Tiles holds every cell that exists;
// a coordinate missing from Tiles is outside the map.
type HexMap struct {
	Tiles     map[Hex]Tile
	occupants map[Hex]string
}

// NewHexMap returns an empty map. Cells are added with SetTile.
func NewHexMap() *HexMap {
	return &HexMap{
		Tiles:     make(map[Hex]Tile),
		occupants: make(map[Hex]string),
	}
}

// NewRectMap builds a cols×rows parallelogram with q in [0,cols) and r in [0,rows),
// every cell set to terrain.
func NewRectMap(cols, rows int, terrain Terrain) *HexMap {
	hm := NewHexMap()
	for q := 0; q < cols; q++ {
		for r := 0; r < rows; r++ {
			hm.Tiles[Hex{q, r}] = Tile{Terrain: terrain}
		}
	}
	return hm
}

// NewRadiusMap builds a hexagon-shaped map centred on (0,0).
func NewRadiusMap(radius int, terrain Terrain) *HexMap {
	hm := NewHexMap()
	// Генерация базовой карты
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			hm.Tiles[Hex{q, r}] = Tile{Terrain: terrain}
		}
	}
	return hm
}

func (hm *HexMap) Contains(hex Hex) bool {
	_, exists := hm.Tiles[hex]
	return exists
}

// Tile returns the cell at hex and whether it exists.
func (hm *HexMap) Tile(hex Hex) (Tile, bool) {
	tile, ok := hm.Tiles[hex]
	return tile, ok
}

func (hm *HexMap) SetTile(hex Hex, tile Tile) {
	hm.Tiles[hex] = tile
}

func (hm *HexMap) SetTerrain(hex Hex, terrain Terrain) {
	if tile, exists := hm.Tiles[hex]; exists {
		tile.Terrain = terrain
		hm.Tiles[hex] = tile
	}
}

func (hm *HexMap) SetRoad(hex Hex, road bool) {
	if tile, exists := hm.Tiles[hex]; exists {
		tile.HasRoad = road
		hm.Tiles[hex] = tile
	}
}

// Hexes returns every cell sorted by (Q, R).
func (hm *HexMap) Hexes() []Hex {
	hexes := make([]Hex, 0, len(hm.Tiles))
	for hex := range hm.Tiles {
		hexes = append(hexes, hex)
	}
	sort.Slice(hexes, func(i, j int) bool { return hexes[i].Less(hexes[j]) })
	return hexes
}

// Neighbors returns the in-bounds neighbours of hex.
func (hm *HexMap) Neighbors(hex Hex) []Hex {
	return hex.Neighbors(hm)
}

// Occupy places id on hex. A cell holds at most one occupant.
func (hm *HexMap) Occupy(hex Hex, id string) error {
	if !hm.Contains(hex) {
		return fmt.Errorf("occupy %s: no such cell", hex)
	}
	if other, taken := hm.occupants[hex]; taken && other != id {
		return fmt.Errorf("occupy %s: held by %q", hex, other)
	}
	hm.occupants[hex] = id
	return nil
}

// Vacate clears hex if id holds it.
func (hm *HexMap) Vacate(hex Hex, id string) {
	if hm.occupants[hex] == id {
		delete(hm.occupants, hex)
	}
}

func (hm *HexMap) OccupantAt(hex Hex) (string, bool) {
	id, ok := hm.occupants[hex]
	return id, ok
}

func (hm *HexMap) IsOccupied(hex Hex) bool {
	_, ok := hm.occupants[hex]
	return ok
}

// GetHexesInRange returns the existing cells within radius steps of center.
func (hm *HexMap) GetHexesInRange(center Hex, radius int) []Hex {
	var result []Hex
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			hex := center.Add(Hex{Q: q, R: r})
			if hm.Contains(hex) {
				result = append(result, hex)
			}
		}
	}
	return result
}

// Bounds returns the smallest and largest Q and R present. ok is false for an empty map.
func (hm *HexMap) Bounds() (minHex, maxHex Hex, ok bool) {
	first := true
	for hex := range hm.Tiles {
		if first {
			minHex, maxHex, first = hex, hex, false
			continue
		}
		minHex.Q = min(minHex.Q, hex.Q)
		minHex.R = min(minHex.R, hex.R)
		maxHex.Q = max(maxHex.Q, hex.Q)
		maxHex.R = max(maxHex.R, hex.R)
	}
	return minHex, maxHex, !first
}
