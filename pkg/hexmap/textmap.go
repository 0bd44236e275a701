// pkg/hexmap/textmap.go
package hexmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Text map glyphs. Each line is one row (r), each column one q.
const (
	GlyphWater    = '~'
	GlyphSand     = 's'
	GlyphGrass    = '.'
	GlyphForest   = 'f'
	GlyphMountain = '^'
	GlyphRoad     = '='
	GlyphEmpty    = ' '
	commentPrefix = "#"
)

// Glyph returns the text map character for a tile.
func Glyph(tile Tile) rune {
	if tile.HasRoad {
		return GlyphRoad
	}
	switch tile.Terrain {
	case TerrainWater:
		return GlyphWater
	case TerrainSand:
		return GlyphSand
	case TerrainForest:
		return GlyphForest
	case TerrainMountain:
		return GlyphMountain
	default:
		return GlyphGrass
	}
}

func tileForGlyph(ch rune) (Tile, bool, error) {
	switch ch {
	case GlyphEmpty:
		return Tile{}, false, nil
	case GlyphWater:
		return Tile{Terrain: TerrainWater}, true, nil
	case GlyphSand:
		return Tile{Terrain: TerrainSand}, true, nil
	case GlyphGrass:
		return Tile{Terrain: TerrainGrass}, true, nil
	case GlyphForest:
		return Tile{Terrain: TerrainForest}, true, nil
	case GlyphMountain:
		return Tile{Terrain: TerrainMountain}, true, nil
	case GlyphRoad:
		return Tile{Terrain: TerrainGrass, HasRoad: true}, true, nil
	}
	return Tile{}, false, fmt.Errorf("unknown glyph %q", ch)
}

// ParseTextMap reads a map drawn with the glyphs above. Lines starting with '#'
// are skipped and do not count as rows; trailing whitespace is ignored.
func ParseTextMap(rd io.Reader) (*HexMap, error) {
	hm := NewHexMap()
	sc := bufio.NewScanner(rd)
	r := 0
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(text, commentPrefix) {
			continue
		}
		for q, ch := range []rune(text) {
			tile, ok, err := tileForGlyph(ch)
			if err != nil {
				return nil, fmt.Errorf("line %d col %d: %w", line, q+1, err)
			}
			if ok {
				hm.Tiles[Hex{Q: q, R: r}] = tile
			}
		}
		r++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read text map: %w", err)
	}
	return hm, nil
}

// LoadTextMap parses the map file at path.
func LoadTextMap(path string) (*HexMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file: %w", err)
	}
	defer f.Close()
	return ParseTextMap(f)
}

// FormatTextMap writes hm back out in the text map format. Only maps with
// non-negative coordinates round-trip through ParseTextMap.
func FormatTextMap(hm *HexMap) string {
	minHex, maxHex, ok := hm.Bounds()
	if !ok {
		return ""
	}
	var sb strings.Builder
	for r := min(0, minHex.R); r <= maxHex.R; r++ {
		var row []rune
		for q := min(0, minHex.Q); q <= maxHex.Q; q++ {
			if tile, exists := hm.Tiles[Hex{q, r}]; exists {
				row = append(row, Glyph(tile))
			} else {
				row = append(row, GlyphEmpty)
			}
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
