// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 28.0
	MaxDeltaTime = 0.06

	// RoadMoveCost is what entering a road cell costs any unit that could
	// enter the terrain below it.
	RoadMoveCost = 0.5
	// DefaultMoveCost applies to terrain with no definition.
	DefaultMoveCost = 1.0

	// StepDuration is how long the viewer animates each hex of a move, in seconds.
	StepDuration = 0.18
	StrokeWidth  = 2.0

	DefaultMapCols = 12
	DefaultMapRows = 10
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	RangeColor      = color.RGBA{80, 160, 255, 110}
	PathColor       = color.RGBA{255, 215, 0, 200}
	SelectedColor   = color.RGBA{255, 255, 255, 255}
	RoadColor       = color.RGBA{140, 110, 80, 255}

	// Цвета местности, как в Battle Isle
	TerrainColors = map[string]color.RGBA{
		"WATER":    {0x29, 0x3d, 0x86, 255},
		"SAND":     {0xe8, 0xa2, 0x7d, 255},
		"GRASS":    {0x49, 0x56, 0x27, 255},
		"FOREST":   {0x32, 0x2e, 0x17, 255},
		"MOUNTAIN": {0x4f, 0x4d, 0x44, 255},
	}

	PlayerColors = []color.RGBA{
		{255, 50, 50, 255},
		{50, 100, 255, 255},
		{50, 255, 50, 255},
		{180, 50, 230, 255},
	}
)
