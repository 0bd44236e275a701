// pkg/render/color.go
package render

import (
	"image/color"

	"go-hex-tactics/internal/config"
	"go-hex-tactics/pkg/hexmap"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds amount to each channel, saturating at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: 255,
	}
}

// TerrainColor is the fill of a cell; unknown terrain falls back to the background.
func TerrainColor(t hexmap.Terrain) color.RGBA {
	if c, ok := config.TerrainColors[t.String()]; ok {
		return c
	}
	return config.BackgroundColor
}

// PlayerColor cycles through config.PlayerColors.
func PlayerColor(player int) color.RGBA {
	if player < 0 {
		player = -player
	}
	return config.PlayerColors[player%len(config.PlayerColors)]
}

// labelColor picks dark text on light fills and light text on dark fills.
func labelColor(fill color.RGBA) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return config.TextDarkColor
	}
	return config.TextLightColor
}
