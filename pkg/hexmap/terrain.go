// pkg/hexmap/terrain.go
package hexmap

import (
	"fmt"
	"strings"
)

// Terrain is the ground type of a tile. The names match the keys used by
// unit definition files.
type Terrain uint8

const (
	TerrainGrass Terrain = iota
	TerrainWater
	TerrainSand
	TerrainForest
	TerrainMountain
)

var terrainNames = [...]string{
	TerrainGrass:    "GRASS",
	TerrainWater:    "WATER",
	TerrainSand:     "SAND",
	TerrainForest:   "FOREST",
	TerrainMountain: "MOUNTAIN",
}

// AllTerrains lists every terrain in declaration order.
var AllTerrains = []Terrain{TerrainGrass, TerrainWater, TerrainSand, TerrainForest, TerrainMountain}

func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("Terrain(%d)", uint8(t))
}

// ParseTerrain accepts any letter case ("grass", "GRASS").
func ParseTerrain(name string) (Terrain, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range terrainNames {
		if n == upper {
			return Terrain(i), nil
		}
	}
	return 0, fmt.Errorf("unknown terrain %q", name)
}

func (t Terrain) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Terrain) UnmarshalText(b []byte) error {
	v, err := ParseTerrain(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
