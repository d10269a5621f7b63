package input

import (
	"fmt"
	"math"
	"time"
)

// ActionKind discriminates the per-pointer action variants.
type ActionKind string

const (
	ActionPointerDown ActionKind = "pointerDown"
	ActionPointerUp   ActionKind = "pointerUp"
	ActionPointerMove ActionKind = "pointerMove"
	ActionPause       ActionKind = "pause"
)

// ContactUpdate carries the optional contact properties supplied with a
// pointerDown or pointerMove action. Nil fields keep the pointer's current
// value (or its type default).
type ContactUpdate struct {
	Width         *float64
	Height        *float64
	Pressure      *float64
	TiltX         *int
	TiltY         *int
	Twist         *int
	AltitudeAngle *float64
	AzimuthAngle  *float64
}

// HasAngles reports whether altitude/azimuth angles were supplied. Angles
// take precedence over raw tilt values.
func (c ContactUpdate) HasAngles() bool {
	return c.AltitudeAngle != nil || c.AzimuthAngle != nil
}

// Action is a single step for one pointer source. Immutable once submitted.
type Action struct {
	Kind     ActionKind
	Button   Button
	X, Y     float64
	Origin   Origin
	Duration time.Duration
	Contact  ContactUpdate
}

// Option customizes a pointerDown or pointerMove action.
type Option func(*Action)

// WithOrigin sets the coordinate origin of a move.
func WithOrigin(o Origin) Option {
	return func(a *Action) { a.Origin = o }
}

// WithDuration sets the duration of a move. The tick boundary waits out
// the longest duration in the tick.
func WithDuration(d time.Duration) Option {
	return func(a *Action) { a.Duration = d }
}

// WithArea sets the contact geometry (CSS pixels).
func WithArea(width, height float64) Option {
	return func(a *Action) {
		a.Contact.Width = &width
		a.Contact.Height = &height
	}
}

// WithPressure sets the normalized contact pressure in [0,1].
func WithPressure(pressure float64) Option {
	return func(a *Action) { a.Contact.Pressure = &pressure }
}

// WithTilt sets the raw plane tilt angles in degrees, each in [-90,90].
func WithTilt(tiltX, tiltY int) Option {
	return func(a *Action) {
		a.Contact.TiltX = &tiltX
		a.Contact.TiltY = &tiltY
	}
}

// WithTwist sets the clockwise rotation in degrees, in [0,359].
func WithTwist(twist int) Option {
	return func(a *Action) { a.Contact.Twist = &twist }
}

// WithAngles sets the spherical altitude/azimuth angles in radians.
// When supplied, tiltX/tiltY are derived and any raw tilt is ignored.
func WithAngles(altitude, azimuth float64) Option {
	return func(a *Action) {
		a.Contact.AltitudeAngle = &altitude
		a.Contact.AzimuthAngle = &azimuth
	}
}

// PointerSource is one pointer's ordered action list. Methods chain so a
// sequence reads top to bottom like the protocol payload it mirrors.
type PointerSource struct {
	id          PointerID
	pointerType PointerType
	actions     []Action
}

// ID returns the pointer id assigned at AddPointer time.
func (s *PointerSource) ID() PointerID { return s.id }

// Type returns the emulated device kind.
func (s *PointerSource) Type() PointerType { return s.pointerType }

// Actions returns a copy of the accumulated action list.
func (s *PointerSource) Actions() []Action {
	out := make([]Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// PointerDown presses a button, optionally updating contact properties.
func (s *PointerSource) PointerDown(button Button, opts ...Option) *PointerSource {
	act := Action{Kind: ActionPointerDown, Button: button}
	for _, opt := range opts {
		opt(&act)
	}
	s.actions = append(s.actions, act)
	return s
}

// PointerUp releases a button.
func (s *PointerSource) PointerUp(button Button) *PointerSource {
	s.actions = append(s.actions, Action{Kind: ActionPointerUp, Button: button})
	return s
}

// PointerMove moves to (x, y) relative to the action's origin
// (viewport by default).
func (s *PointerSource) PointerMove(x, y float64, opts ...Option) *PointerSource {
	act := Action{Kind: ActionPointerMove, X: x, Y: y}
	for _, opt := range opts {
		opt(&act)
	}
	s.actions = append(s.actions, act)
	return s
}

// Pause holds this pointer for the given duration. Other pointers do not
// advance past the shared tick boundary while the pause runs.
func (s *PointerSource) Pause(d time.Duration) *PointerSource {
	s.actions = append(s.actions, Action{Kind: ActionPause, Duration: d})
	return s
}

// Actions is the declarative multi-pointer action sequence submitted to
// the dispatcher.
type Actions struct {
	sources []*PointerSource
}

// NewActions creates an empty action sequence.
func NewActions() *Actions {
	return &Actions{}
}

// AddPointer registers a new pointer source. Sources are processed in
// declaration order within every tick.
func (a *Actions) AddPointer(pointerType PointerType) *PointerSource {
	src := &PointerSource{
		id:          PointerID(len(a.sources)),
		pointerType: pointerType,
	}
	a.sources = append(a.sources, src)
	return src
}

// Sources returns the pointer sources in declaration order.
func (a *Actions) Sources() []*PointerSource {
	out := make([]*PointerSource, len(a.sources))
	copy(out, a.sources)
	return out
}

// Validate checks the sequence for malformed parameters. Violations fail
// with ErrInvalidArgument before any tick executes.
func (a *Actions) Validate() error {
	for _, src := range a.sources {
		if !src.pointerType.Valid() {
			return newError(ErrInvalidArgument, src.id, -1,
				fmt.Sprintf("unknown pointer type %q", src.pointerType))
		}
		for i, act := range src.actions {
			if err := validateAction(src.id, i, act); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateAction(id PointerID, index int, act Action) error {
	if act.Duration < 0 {
		return newError(ErrInvalidArgument, id, index, "duration must not be negative")
	}
	switch act.Kind {
	case ActionPointerDown, ActionPointerUp:
		if act.Button < 0 || act.Button > 31 {
			return newError(ErrInvalidArgument, id, index, "button must be in [0,31]")
		}
	case ActionPointerMove, ActionPause:
	default:
		return newError(ErrInvalidArgument, id, index,
			fmt.Sprintf("unknown action kind %q", act.Kind))
	}
	c := act.Contact
	if c.Pressure != nil && (*c.Pressure < 0 || *c.Pressure > 1) {
		return newError(ErrInvalidArgument, id, index, "pressure must be in [0,1]")
	}
	if c.Width != nil && *c.Width < 0 {
		return newError(ErrInvalidArgument, id, index, "width must not be negative")
	}
	if c.Height != nil && *c.Height < 0 {
		return newError(ErrInvalidArgument, id, index, "height must not be negative")
	}
	if c.TiltX != nil && (*c.TiltX < -90 || *c.TiltX > 90) {
		return newError(ErrInvalidArgument, id, index, "tiltX must be in [-90,90]")
	}
	if c.TiltY != nil && (*c.TiltY < -90 || *c.TiltY > 90) {
		return newError(ErrInvalidArgument, id, index, "tiltY must be in [-90,90]")
	}
	if c.Twist != nil && (*c.Twist < 0 || *c.Twist > 359) {
		return newError(ErrInvalidArgument, id, index, "twist must be in [0,359]")
	}
	if c.AltitudeAngle != nil && (*c.AltitudeAngle < 0 || *c.AltitudeAngle > math.Pi/2) {
		return newError(ErrInvalidArgument, id, index, "altitudeAngle must be in [0,pi/2]")
	}
	if c.AzimuthAngle != nil && (*c.AzimuthAngle < 0 || *c.AzimuthAngle > 2*math.Pi) {
		return newError(ErrInvalidArgument, id, index, "azimuthAngle must be in [0,2pi]")
	}
	return nil
}
