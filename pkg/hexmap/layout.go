// pkg/hexmap/layout.go
package hexmap

// Layout places a map on screen: OriginX/OriginY is the pixel centre of hex (0,0).
type Layout struct {
	HexSize          float64
	OriginX, OriginY float64
}

// FitLayout centres the bounding box of hm's cells on a width×height screen.
func FitLayout(hm *HexMap, hexSize float64, width, height int) Layout {
	l := Layout{HexSize: hexSize, OriginX: float64(width) / 2, OriginY: float64(height) / 2}
	if len(hm.Tiles) == 0 {
		return l
	}
	first := true
	var minX, minY, maxX, maxY float64
	for hex := range hm.Tiles {
		x, y := hex.ToPixel(hexSize)
		if first {
			minX, maxX, minY, maxY, first = x, x, y, y, false
			continue
		}
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	l.OriginX -= (minX + maxX) / 2
	l.OriginY -= (minY + maxY) / 2
	return l
}

// Center returns the pixel centre of hex.
func (l Layout) Center(hex Hex) (x, y float64) {
	x, y = hex.ToPixel(l.HexSize)
	return x + l.OriginX, y + l.OriginY
}

// HexAt returns the hex under a screen point.
func (l Layout) HexAt(x, y float64) Hex {
	return PixelToHex(x, y, l.OriginX, l.OriginY, l.HexSize)
}
