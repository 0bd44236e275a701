// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"
	"strconv"
	"strings"

	"go-hex-tactics/pkg/utils"
)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
var NeighborDirections = [6]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Key returns the canonical "q,r" form of the coordinate.
func (h Hex) Key() string {
	return strconv.Itoa(h.Q) + "," + strconv.Itoa(h.R)
}

func (h Hex) String() string {
	return "(" + h.Key() + ")"
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (Hex, error) {
	qs, rs, ok := strings.Cut(strings.TrimSpace(key), ",")
	if !ok {
		return Hex{}, fmt.Errorf("hex key %q: missing comma", key)
	}
	q, err := strconv.Atoi(strings.TrimSpace(qs))
	if err != nil {
		return Hex{}, fmt.Errorf("hex key %q: bad q: %w", key, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Hex{}, fmt.Errorf("hex key %q: bad r: %w", key, err)
	}
	return Hex{Q: q, R: r}, nil
}

// ToPixel конвертирует гекс в пиксельные координаты (pointy top ориентация)
func (h Hex) ToPixel(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// PixelToHex converts a screen point back to the hex under it. originX/originY is
// the pixel position of hex (0,0).
func PixelToHex(x, y, originX, originY, hexSize float64) Hex {
	x -= originX
	y -= originY
	q := (Sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return axialRound(q, r)
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса
func (h Hex) AllPossibleNeighbors() [6]Hex {
	var out [6]Hex
	for i, d := range NeighborDirections {
		out[i] = h.Add(d)
	}
	return out
}

// Neighbors returns the neighbours that exist on hm.
func (h Hex) Neighbors(hm *HexMap) []Hex {
	validNeighbors := make([]Hex, 0, 6)
	for _, n := range h.AllPossibleNeighbors() {
		if hm.Contains(n) {
			validNeighbors = append(validNeighbors, n)
		}
	}
	return validNeighbors
}

// IsAdjacent reports whether other is one step away from h.
func (h Hex) IsAdjacent(other Hex) bool {
	return h.Distance(other) == 1
}

func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

func (h Hex) Subtract(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// Less orders hexes by column, then row. Used to keep listings deterministic.
func (h Hex) Less(other Hex) bool {
	if h.Q != other.Q {
		return h.Q < other.Q
	}
	return h.R < other.R
}
