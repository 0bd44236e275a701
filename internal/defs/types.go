// internal/defs/types.go
package defs

import "go-hex-tactics/pkg/hexmap"

// TerrainDefinition is the movement data of one terrain type.
type TerrainDefinition struct {
	Name       string  `json:"name" yaml:"name"`
	MoveCost   float64 `json:"move_cost" yaml:"move_cost"`
	Impassable bool    `json:"impassable" yaml:"impassable"`
}

// UnitDefinition describes a unit type. A terrain listed in TerrainCosts with a
// nil cost cannot be entered by this unit; a terrain not listed falls back to
// the terrain's own cost.
type UnitDefinition struct {
	ID           string              `json:"id" yaml:"id"`
	Symbol       string              `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Move         float64             `json:"move" yaml:"move"`
	TerrainCosts map[string]*float64 `json:"terrain_costs,omitempty" yaml:"terrain_costs,omitempty"`
}

// TerrainCost looks up the unit's cost for terrain. listed is false when the
// unit has no entry for it.
func (u UnitDefinition) TerrainCost(terrain hexmap.Terrain) (cost float64, passable, listed bool) {
	c, ok := u.TerrainCosts[terrain.String()]
	if !ok {
		return 0, false, false
	}
	if c == nil {
		return 0, false, true
	}
	return *c, true, true
}

// file is the on-disk layout shared by JSON and YAML definition files.
type file struct {
	Terrain []TerrainDefinition `json:"terrain" yaml:"terrain"`
	Units   []UnitDefinition    `json:"units" yaml:"units"`
}

// Library holds the terrain and unit definitions in use.
type Library struct {
	Terrain map[hexmap.Terrain]TerrainDefinition
	Units   map[string]UnitDefinition
}

func newLibrary() *Library {
	return &Library{
		Terrain: make(map[hexmap.Terrain]TerrainDefinition),
		Units:   make(map[string]UnitDefinition),
	}
}

// Unit returns the definition for id.
func (l *Library) Unit(id string) (UnitDefinition, bool) {
	def, ok := l.Units[id]
	return def, ok
}

// Merge overlays other onto l; entries in other win.
func (l *Library) Merge(other *Library) {
	for t, def := range other.Terrain {
		l.Terrain[t] = def
	}
	for id, def := range other.Units {
		l.Units[id] = def
	}
}
