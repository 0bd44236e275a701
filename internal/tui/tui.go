// Package tui draws a hex map with its movement overlay on a terminal.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"go-hex-tactics/internal/config"
	"go-hex-tactics/pkg/hexmap"
)

// Marker is a unit drawn on top of a cell.
type Marker struct {
	Symbol rune
	Player int
}

// View is everything one frame shows.
type View struct {
	Map       *hexmap.HexMap
	Reachable map[hexmap.Hex]struct{}
	Path      []hexmap.Hex
	Units     map[hexmap.Hex]Marker
	Status    string
}

const pathGlyph = '*'

// CellPosition returns the terminal column and row of hex relative to the map's
// minimum corner. Each row shifts right by half a cell so axial neighbours touch.
func CellPosition(minHex hexmap.Hex, hex hexmap.Hex) (x, y int) {
	return 2*(hex.Q-minHex.Q) + (hex.R - minHex.R), hex.R - minHex.R
}

func terrainStyle(tile hexmap.Tile) tcell.Style {
	c := config.TerrainColors[tile.Terrain.String()]
	if tile.HasRoad {
		c = config.RoadColor
	}
	return tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Foreground(tcell.ColorWhite)
}

func playerColor(player int) tcell.Color {
	c := config.PlayerColors[player%len(config.PlayerColors)]
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw renders view onto screen and shows it.
func Draw(screen tcell.Screen, view View) {
	screen.Clear()
	minHex, maxHex, ok := view.Map.Bounds()
	if !ok {
		drawStatus(screen, 0, view.Status)
		screen.Show()
		return
	}

	onPath := make(map[hexmap.Hex]bool, len(view.Path))
	for _, hex := range view.Path {
		onPath[hex] = true
	}
	rangeBg := tcell.NewRGBColor(int32(config.RangeColor.R), int32(config.RangeColor.G), int32(config.RangeColor.B))

	for _, hex := range view.Map.Hexes() {
		tile, _ := view.Map.Tile(hex)
		style := terrainStyle(tile)
		if _, in := view.Reachable[hex]; in {
			style = style.Background(rangeBg)
		}
		glyph := hexmap.Glyph(tile)
		if onPath[hex] {
			glyph = pathGlyph
			style = style.Foreground(tcell.ColorYellow).Bold(true)
		}
		if m, ok := view.Units[hex]; ok {
			glyph = m.Symbol
			style = style.Foreground(playerColor(m.Player)).Bold(true)
		}
		x, y := CellPosition(minHex, hex)
		screen.SetContent(x, y, glyph, nil, style)
		screen.SetContent(x+1, y, ' ', nil, style)
	}
	drawStatus(screen, maxHex.R-minHex.R+2, view.Status)
	screen.Show()
}

func drawStatus(screen tcell.Screen, row int, status string) {
	for i, ch := range []rune(status) {
		screen.SetContent(i, row, ch, nil, tcell.StyleDefault)
	}
}

// Run shows view on the real terminal until a key is pressed.
func Run(view View) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	Draw(screen, view)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, view)
		}
	}
}
