// internal/state/session.go
package state

import (
	"fmt"
	"io"
	"log"

	"go-hex-tactics/internal/movement"
	"go-hex-tactics/internal/roads"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Session is what every viewer state shares.
type Session struct {
	Engine   *movement.Engine
	Roads    *roads.Builder
	Renderer *render.HexRenderer
	Logger   *log.Logger
}

func (s *Session) logf(format string, args ...any) {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard, "", 0)
	}
	s.Logger.Printf(format, args...)
}

// cursorHex returns the map cell under the mouse.
func (s *Session) cursorHex() (hexmap.Hex, bool) {
	x, y := ebiten.CursorPosition()
	hex := s.Renderer.Layout().HexAt(float64(x), float64(y))
	return hex, s.Engine.Map().Contains(hex)
}

// markers lists every unit at rest except moving, which the caller draws itself.
func (s *Session) markers(selected, moving string) []render.UnitMarker {
	units := s.Engine.Units()
	out := make([]render.UnitMarker, 0, len(units))
	for _, u := range units {
		if u.ID == moving {
			continue
		}
		out = append(out, render.UnitMarker{
			From: u.Pos, To: u.Pos,
			Symbol:   s.Engine.Symbol(u),
			Player:   u.Player,
			Selected: u.ID == selected,
		})
	}
	return out
}

func (s *Session) drawStatus(screen *ebiten.Image, status string) {
	ebitenutil.DebugPrintAt(screen, status, 10, 10)
	ebitenutil.DebugPrintAt(screen, "click: select/move  B: road to cursor  R: new turn  Esc: deselect", 10, 26)
}

func describe(u *movement.Unit) string {
	return fmt.Sprintf("%s (%s, player %d) at %s, %.1f move left", u.ID, u.Type, u.Player, u.Pos, u.MovePoints)
}
