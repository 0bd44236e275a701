package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptions_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte("enable_roads: false\nmap_path: maps/isle.txt\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	o, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if o.EnableRoads {
		t.Fatalf("enable_roads should be false")
	}
	if !o.EnableUnitSystems {
		t.Fatalf("enable_unit_systems should keep its default")
	}
	if o.MapPath != "maps/isle.txt" {
		t.Fatalf("map_path=%q", o.MapPath)
	}
}

func TestLoadOptions_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadOptions(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("enable_roads: [1, 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadOptions(bad); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
