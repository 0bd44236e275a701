// internal/state/select_state.go
package state

import (
	"errors"
	"fmt"

	"go-hex-tactics/internal/roads"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*SelectState)(nil)

// SelectState lets the player pick a unit, preview its range and the path to
// the hovered cell, and order a move.
type SelectState struct {
	sm       *StateMachine
	session  *Session
	selected string
	inRange  map[hexmap.Hex]struct{}
	hover    *hexmap.Hex
	path     []hexmap.Hex
	status   string
}

// NewSelectState starts with selected chosen; pass "" for no selection.
func NewSelectState(sm *StateMachine, session *Session, selected string) *SelectState {
	return &SelectState{sm: sm, session: session, selected: selected}
}

func (s *SelectState) Enter() {
	s.refreshRange()
}

func (s *SelectState) Exit() {}

func (s *SelectState) refreshRange() {
	s.inRange = nil
	s.path = nil
	if s.selected == "" {
		s.status = "select a unit"
		return
	}
	u, ok := s.session.Engine.Unit(s.selected)
	if !ok {
		s.selected = ""
		s.status = "select a unit"
		return
	}
	hexes, err := s.session.Engine.Range(s.selected)
	if err != nil {
		s.status = err.Error()
		return
	}
	s.inRange = make(map[hexmap.Hex]struct{}, len(hexes))
	for _, hex := range hexes {
		s.inRange[hex] = struct{}{}
	}
	s.status = describe(u)
}

func (s *SelectState) Update(deltaTime float64) {
	hex, onMap := s.session.cursorHex()
	s.updateHover(hex, onMap)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.selected = ""
		s.refreshRange()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.session.Engine.ResetTurn()
		s.refreshRange()
	case inpututil.IsKeyJustPressed(ebiten.KeyB) && onMap:
		s.buildRoad(hex)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && onMap:
		s.click(hex)
	}
}

func (s *SelectState) updateHover(hex hexmap.Hex, onMap bool) {
	if !onMap {
		s.hover, s.path = nil, nil
		return
	}
	if s.hover != nil && *s.hover == hex {
		return
	}
	s.hover = &hex
	s.path = nil
	if _, ok := s.inRange[hex]; ok {
		if path, _, err := s.session.Engine.Plan(s.selected, hex); err == nil {
			s.path = path
		}
	}
}

func (s *SelectState) click(hex hexmap.Hex) {
	if u, ok := s.session.Engine.UnitAt(hex); ok {
		s.selected = u.ID
		s.refreshRange()
		return
	}
	if _, ok := s.inRange[hex]; !ok || s.selected == "" {
		return
	}
	path, cost, err := s.session.Engine.Plan(s.selected, hex)
	if err != nil {
		s.status = err.Error()
		return
	}
	u, _ := s.session.Engine.Unit(s.selected)
	from := u.Pos
	if _, err := s.session.Engine.Move(s.selected, hex); err != nil {
		s.status = err.Error()
		return
	}
	s.session.logf("%s: %s -> %s cost %.1f", s.selected, from, hex, cost)
	s.sm.SetState(NewAnimateState(s.sm, s.session, s.selected, from, path))
}

func (s *SelectState) buildRoad(to hexmap.Hex) {
	u, ok := s.session.Engine.Unit(s.selected)
	if !ok {
		s.status = "select a unit to build a road from"
		return
	}
	cells, err := s.session.Roads.Build(u.Pos, to)
	if errors.Is(err, roads.ErrNoRoute) {
		s.status = fmt.Sprintf("no road route from %s to %s", u.Pos, to)
		return
	}
	if err != nil {
		s.status = err.Error()
		return
	}
	s.session.Renderer.RenderMapImage()
	s.hover = nil
	s.refreshRange()
	s.status = fmt.Sprintf("road built over %d cells", len(cells))
}

func (s *SelectState) Draw(screen *ebiten.Image) {
	s.session.Renderer.Draw(screen, render.Overlay{
		Range: s.inRange,
		Path:  s.path,
		Hover: s.hover,
		Units: s.session.markers(s.selected, ""),
	})
	s.session.drawStatus(screen, s.status)
}
