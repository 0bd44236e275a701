package hexmap

import "testing"

func TestParseTerrain(t *testing.T) {
	tests := []struct {
		in   string
		want Terrain
		ok   bool
	}{
		{"GRASS", TerrainGrass, true},
		{"water", TerrainWater, true},
		{" Mountain ", TerrainMountain, true},
		{"lava", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseTerrain(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Fatalf("ParseTerrain(%q)=%v,%v want %v ok=%v", tt.in, got, err, tt.want, tt.ok)
		}
	}
	if s := Terrain(42).String(); s != "Terrain(42)" {
		t.Fatalf("unknown terrain string=%q", s)
	}
	var tr Terrain
	if err := tr.UnmarshalText([]byte("forest")); err != nil || tr != TerrainForest {
		t.Fatalf("UnmarshalText=%v,%v", tr, err)
	}
}
