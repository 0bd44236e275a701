// internal/config/options.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options are the runtime switches of the hex engine.
type Options struct {
	EnableRoads       bool   `yaml:"enable_roads"`
	EnableUnitSystems bool   `yaml:"enable_unit_systems"`
	MapPath           string `yaml:"map_path"`
	DefsPath          string `yaml:"defs_path"`

	// Used when MapPath is empty: a generated map of MapCols×MapRows.
	MapSeed int64 `yaml:"map_seed"`
	MapCols int   `yaml:"map_cols"`
	MapRows int   `yaml:"map_rows"`

	Units []UnitPlacement `yaml:"units"`
}

// UnitPlacement puts one unit on the map at startup. At is a "q,r" key.
type UnitPlacement struct {
	ID     string `yaml:"id"`
	Type   string `yaml:"type"`
	Player int    `yaml:"player"`
	At     string `yaml:"at"`
}

// DefaultOptions has roads and per-unit costs switched on.
func DefaultOptions() Options {
	return Options{
		EnableRoads:       true,
		EnableUnitSystems: true,
		MapCols:           DefaultMapCols,
		MapRows:           DefaultMapRows,
	}
}

// LoadOptions reads a YAML options file on top of DefaultOptions. Keys absent
// from the file keep their defaults.
func LoadOptions(path string) (Options, error) {
	o := DefaultOptions()
	raw, err := os.ReadFile(path)
	if err != nil {
		return o, err
	}
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return o, fmt.Errorf("options.yaml: %w", err)
	}
	return o, nil
}
