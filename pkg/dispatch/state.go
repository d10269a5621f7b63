package dispatch

import (
	"math"

	"github.com/odvcencio/bidinput/pkg/input"
	"github.com/odvcencio/bidinput/pkg/page"
)

// pointerState is one pointer's entry in the session state table: its
// position, pressed buttons, effective contact properties, and the hit
// target it currently occupies. Positions are always defined once the
// pointer exists; new pointers start at (0,0).
type pointerState struct {
	id          input.PointerID
	pointerType input.PointerType

	x, y    float64
	buttons input.Buttons
	target  *page.Node

	width, height float64
	pressure      float64
	pressureSet   bool
	tiltX, tiltY  int
	twist         int
}

func newPointerState(id input.PointerID, pointerType input.PointerType) *pointerState {
	return &pointerState{
		id:          id,
		pointerType: pointerType,
		width:       1,
		height:      1,
	}
}

// applyContact folds an action's contact overrides into the state.
// Altitude/azimuth angles take precedence over raw tilt; a missing angle
// defaults to the perpendicular pose.
func (s *pointerState) applyContact(c input.ContactUpdate) {
	if c.Width != nil {
		s.width = *c.Width
	}
	if c.Height != nil {
		s.height = *c.Height
	}
	if c.Pressure != nil {
		s.pressure = *c.Pressure
		s.pressureSet = true
	}
	if c.HasAngles() {
		altitude := math.Pi / 2
		azimuth := 0.0
		if c.AltitudeAngle != nil {
			altitude = *c.AltitudeAngle
		}
		if c.AzimuthAngle != nil {
			azimuth = *c.AzimuthAngle
		}
		s.tiltX, s.tiltY = input.TiltFromAngles(altitude, azimuth)
	} else {
		if c.TiltX != nil {
			s.tiltX = *c.TiltX
		}
		if c.TiltY != nil {
			s.tiltY = *c.TiltY
		}
	}
	if c.Twist != nil {
		s.twist = *c.Twist
	}
}

// eventPressure is the pressure reported on synthesized events: the
// supplied value while pressed, the hardware default of 0.5 when pressed
// without an explicit value, and 0 otherwise.
func (s *pointerState) eventPressure() float64 {
	if s.buttons.Empty() {
		return 0
	}
	if s.pressureSet {
		return s.pressure
	}
	return 0.5
}

// stateTable is the per-session pointer state machine. Only the sequencer
// mutates it, single-threaded under the session actor lock, so it carries
// no locking of its own. Tables are never shared across sessions.
type stateTable struct {
	order  []input.PointerID
	states map[input.PointerID]*pointerState
}

func newStateTable() *stateTable {
	return &stateTable{states: make(map[input.PointerID]*pointerState)}
}

// ensure returns the pointer's state, creating it on first use.
func (t *stateTable) ensure(id input.PointerID, pointerType input.PointerType) *pointerState {
	if st, ok := t.states[id]; ok {
		return st
	}
	st := newPointerState(id, pointerType)
	t.states[id] = st
	t.order = append(t.order, id)
	return st
}

// get returns the pointer's state if it exists.
func (t *stateTable) get(id input.PointerID) (*pointerState, bool) {
	st, ok := t.states[id]
	return st, ok
}

// inOrder returns the states in pointer-declaration order.
func (t *stateTable) inOrder() []*pointerState {
	out := make([]*pointerState, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.states[id])
	}
	return out
}

// reset discards all pointer state.
func (t *stateTable) reset() {
	t.order = nil
	t.states = make(map[input.PointerID]*pointerState)
}
