package movement

import "go-hex-tactics/pkg/hexmap"

// Unit is a mover on the map.
type Unit struct {
	ID     string
	Type   string
	Player int
	Pos    hexmap.Hex
	// MovePoints left this turn.
	MovePoints float64
}

// StepEvent is the payload of event.UnitStepped.
type StepEvent struct {
	Unit     *Unit
	From, To hexmap.Hex
	Index    int
	Last     bool
}

// MoveEvent is the payload of event.UnitMoved.
type MoveEvent struct {
	Unit     *Unit
	From, To hexmap.Hex
	Path     []hexmap.Hex
	Cost     float64
}
