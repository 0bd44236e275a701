// internal/defs/loader.go
package defs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"go-hex-tactics/pkg/hexmap"
)

//go:embed defaults.json
var defaultsJSON []byte

//go:embed defs.schema.json
var schemaJSON string

const schemaURL = "defs.schema.json"

var schema = jsonschema.MustCompileString(schemaURL, schemaJSON)

// Default returns a fresh copy of the built-in definitions.
func Default() *Library {
	lib, err := Parse(defaultsJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded definitions: %v", err))
	}
	return lib
}

// Load reads a definitions file. Files ending in .yaml or .yml are read as YAML,
// anything else as JSON. Both are checked against the same schema.
func Load(path string) (*Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err = yamlToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	lib, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Parse validates and decodes JSON definitions.
func Parse(raw []byte) (*Library, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}

	var f file
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := newLibrary()
	for _, def := range f.Terrain {
		t, err := hexmap.ParseTerrain(def.Name)
		if err != nil {
			return nil, err
		}
		lib.Terrain[t] = def
	}
	for _, def := range f.Units {
		if _, dup := lib.Units[def.ID]; dup {
			return nil, fmt.Errorf("duplicate unit %q", def.ID)
		}
		lib.Units[def.ID] = def
	}
	return lib, nil
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return out, nil
}
