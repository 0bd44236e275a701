// pkg/hexmap/utils.go
package hexmap

import "math"

// Внутренние функции для конвертации координат
func cubeRound(x, y, z float64) (rx, ry, rz int) {
	xf := math.Round(x)
	yf := math.Round(y)
	zf := math.Round(z)
	xd := math.Abs(xf - x)
	yd := math.Abs(yf - y)
	zd := math.Abs(zf - z)
	if xd > yd && xd > zd {
		xf = -yf - zf
	} else if yd > zd {
		yf = -xf - zf
	} else {
		zf = -xf - yf
	}
	return int(xf), int(yf), int(zf)
}

// axialRound snaps fractional axial coordinates to the nearest hex.
func axialRound(q, r float64) Hex {
	cx, _, cz := cubeRound(q, -q-r, r)
	return Hex{Q: cx, R: cz}
}

// Sqrt3 для вычислений
const Sqrt3 = 1.7320508075688772935274463415059
