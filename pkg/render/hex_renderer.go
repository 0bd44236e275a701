package render

import (
	"image/color"
	"math"

	"go-hex-tactics/internal/config"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// UnitMarker is a unit as drawn. A unit in motion sits T of the way from From to To.
type UnitMarker struct {
	From, To hexmap.Hex
	T        float64
	Symbol   string
	Player   int
	Selected bool
}

// Overlay is the per-frame state drawn over the static map.
type Overlay struct {
	Range map[hexmap.Hex]struct{}
	Path  []hexmap.Hex
	Hover *hexmap.Hex
	Units []UnitMarker
}

type HexRenderer struct {
	hexMap      *hexmap.HexMap
	layout      hexmap.Layout
	fillImg     *ebiten.Image
	sortedHexes []hexmap.Hex
	fillVs      []ebiten.Vertex
	fillIs      []uint16
	strokeVs    []ebiten.Vertex
	strokeIs    []uint16
	fontFace    font.Face
	ShowLabels  bool
	mapImage    *ebiten.Image // Поле для предрендеренной карты
}

func NewHexRenderer(hexMap *hexmap.HexMap, layout hexmap.Layout, screenWidth, screenHeight int) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	renderer := &HexRenderer{
		hexMap:   hexMap,
		layout:   layout,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
		fontFace: basicfont.Face7x13,
		mapImage: ebiten.NewImage(screenWidth, screenHeight), // Создаём изображение размером с экран
	}

	// Отрисовываем карту один раз при инициализации
	renderer.RenderMapImage()

	return renderer
}

func (r *HexRenderer) Layout() hexmap.Layout { return r.layout }

// RenderMapImage redraws the static background. Call it after terrain or roads change.
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(config.BackgroundColor)
	r.sortedHexes = r.hexMap.Hexes()

	for _, hex := range r.sortedHexes {
		tile := r.hexMap.Tiles[hex]
		fill := TerrainColor(tile.Terrain)
		r.fillHex(r.mapImage, hex, 1, fill)
		if tile.HasRoad {
			r.fillHex(r.mapImage, hex, 0.45, config.RoadColor)
		}
	}
	for _, hex := range r.sortedHexes {
		fill := TerrainColor(r.hexMap.Tiles[hex].Terrain)
		r.strokeHex(r.mapImage, hex, LightenColor(fill, 40), config.StrokeWidth)
	}
	if r.ShowLabels {
		for _, hex := range r.sortedHexes {
			fill := TerrainColor(r.hexMap.Tiles[hex].Terrain)
			r.drawLabel(r.mapImage, hex, hex.Key(), labelColor(fill))
		}
	}
}

func (r *HexRenderer) Draw(screen *ebiten.Image, overlay Overlay) {
	// Рисуем предрендеренную карту одним вызовом
	screen.DrawImage(r.mapImage, nil)

	for _, hex := range r.sortedHexes {
		if _, ok := overlay.Range[hex]; ok {
			r.fillHex(screen, hex, 0.92, config.RangeColor)
		}
	}
	if overlay.Hover != nil && r.hexMap.Contains(*overlay.Hover) {
		r.strokeHex(screen, *overlay.Hover, config.SelectedColor, config.StrokeWidth)
	}
	r.drawPath(screen, overlay.Path)
	for _, u := range overlay.Units {
		r.drawUnit(screen, u)
	}
}

func (r *HexRenderer) drawPath(screen *ebiten.Image, path []hexmap.Hex) {
	for i, hex := range path {
		x, y := r.layout.Center(hex)
		if i > 0 {
			px, py := r.layout.Center(path[i-1])
			vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 3, config.PathColor, true)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r.layout.HexSize*0.18), config.PathColor, true)
	}
}

func (r *HexRenderer) drawUnit(screen *ebiten.Image, u UnitMarker) {
	fx, fy := r.layout.Center(u.From)
	tx, ty := r.layout.Center(u.To)
	t := utils.Clamp(u.T, 0, 1)
	x, y := utils.Lerp(fx, tx, t), utils.Lerp(fy, ty, t)

	fill := PlayerColor(u.Player)
	radius := float32(r.layout.HexSize * 0.55)
	if u.Selected {
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius+3, config.SelectedColor, true)
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), radius, fill, true)
	vector.StrokeCircle(screen, float32(x), float32(y), radius, 2, DarkenColor(fill), true)
	r.drawLabelAt(screen, x, y, u.Symbol, labelColor(fill))
}

func (r *HexRenderer) hexPath(hex hexmap.Hex, scale float64) *vector.Path {
	x, y := r.layout.Center(hex)
	size := r.layout.HexSize * scale

	path := &vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := x + size*math.Cos(angle)
		py := y + size*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) fillHex(target *ebiten.Image, hex hexmap.Hex, scale float64, c color.RGBA) {
	r.fillVs, r.fillIs = r.hexPath(hex, scale).AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	colorVertices(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) strokeHex(target *ebiten.Image, hex hexmap.Hex, c color.RGBA, width float64) {
	r.strokeVs, r.strokeIs = r.hexPath(hex, 1).AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: float32(width),
	})
	colorVertices(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func colorVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

func (r *HexRenderer) drawLabel(target *ebiten.Image, hex hexmap.Hex, label string, c color.RGBA) {
	x, y := r.layout.Center(hex)
	r.drawLabelAt(target, x, y, label, c)
}

func (r *HexRenderer) drawLabelAt(target *ebiten.Image, x, y float64, label string, c color.RGBA) {
	bounds := text.BoundString(r.fontFace, label)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(x)-textWidth/2, int(y)+textHeight/2, c)
}
