// internal/state/animate_state.go
package state

import (
	"go-hex-tactics/internal/config"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*AnimateState)(nil)

// AnimateState walks a unit that has already moved along its path, one hex
// per config.StepDuration, then returns to selection with the unit selected.
type AnimateState struct {
	sm      *StateMachine
	session *Session
	unitID  string
	steps   []hexmap.Hex // start followed by the path
	elapsed float64
}

func NewAnimateState(sm *StateMachine, session *Session, unitID string, from hexmap.Hex, path []hexmap.Hex) *AnimateState {
	steps := make([]hexmap.Hex, 0, len(path)+1)
	steps = append(steps, from)
	steps = append(steps, path...)
	return &AnimateState{sm: sm, session: session, unitID: unitID, steps: steps}
}

func (s *AnimateState) Enter() {}

func (s *AnimateState) Exit() {}

// position returns the current leg and how far along it the unit is.
func (s *AnimateState) position() (leg int, t float64) {
	legs := len(s.steps) - 1
	if legs <= 0 {
		return 0, 1
	}
	progress := s.elapsed / config.StepDuration
	leg = int(progress)
	if leg >= legs {
		return legs - 1, 1
	}
	return leg, progress - float64(leg)
}

func (s *AnimateState) done() bool {
	return s.elapsed >= float64(len(s.steps)-1)*config.StepDuration
}

func (s *AnimateState) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.done() {
		s.sm.SetState(NewSelectState(s.sm, s.session, s.unitID))
	}
}

func (s *AnimateState) Draw(screen *ebiten.Image) {
	markers := s.session.markers("", s.unitID)
	if u, ok := s.session.Engine.Unit(s.unitID); ok {
		leg, t := s.position()
		to := s.steps[min(leg+1, len(s.steps)-1)]
		markers = append(markers, render.UnitMarker{
			From: s.steps[leg], To: to, T: t,
			Symbol: s.session.Engine.Symbol(u), Player: u.Player, Selected: true,
		})
	}
	s.session.Renderer.Draw(screen, render.Overlay{Path: s.steps[1:], Units: markers})
	s.session.drawStatus(screen, "moving "+s.unitID)
}
