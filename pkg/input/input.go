// Package input defines the vocabulary for WebDriver BiDi pointer input:
// pointer sources, the fluent action builder, origins, contact properties,
// and the error taxonomy shared by the dispatch pipeline.
package input

import "strings"

// PointerType identifies the kind of pointer device a source emulates.
type PointerType string

const (
	PointerMouse PointerType = "mouse"
	PointerPen   PointerType = "pen"
	PointerTouch PointerType = "touch"
)

// Valid reports whether the pointer type is one of the supported kinds.
func (t PointerType) Valid() bool {
	switch t {
	case PointerMouse, PointerPen, PointerTouch:
		return true
	}
	return false
}

// Hovers reports whether the pointer type produces events while no button
// is pressed. Touch contacts only exist for the duration of a press.
func (t PointerType) Hovers() bool {
	return t != PointerTouch
}

// PointerID uniquely identifies a pointer source within a session.
// IDs are assigned in AddPointer order starting at 0.
type PointerID int

// Button is a pointer button index (0=left, 1=middle, 2=right).
type Button int

const (
	ButtonLeft   Button = 0
	ButtonMiddle Button = 1
	ButtonRight  Button = 2
)

// Buttons is the set of currently pressed buttons for a pointer. The
// bitset holds indices 0 through 31; validation rejects anything larger
// before it reaches the state table.
type Buttons uint32

// With returns the set with the given button added.
func (b Buttons) With(btn Button) Buttons {
	return b | 1<<uint(btn)
}

// Without returns the set with the given button removed.
func (b Buttons) Without(btn Button) Buttons {
	return b &^ (1 << uint(btn))
}

// Contain reports whether the button is in the set.
func (b Buttons) Contain(btn Button) bool {
	return b&(1<<uint(btn)) != 0
}

// Empty reports whether no buttons are pressed.
func (b Buttons) Empty() bool {
	return b == 0
}

func (b Buttons) String() string {
	if b.Empty() {
		return "none"
	}
	var parts []string
	if b.Contain(ButtonLeft) {
		parts = append(parts, "left")
	}
	if b.Contain(ButtonMiddle) {
		parts = append(parts, "middle")
	}
	if b.Contain(ButtonRight) {
		parts = append(parts, "right")
	}
	return strings.Join(parts, "|")
}

// EventType names a synthesized DOM pointer event.
type EventType string

const (
	EventPointerOver  EventType = "pointerover"
	EventPointerEnter EventType = "pointerenter"
	EventPointerDown  EventType = "pointerdown"
	EventPointerMove  EventType = "pointermove"
	EventPointerUp    EventType = "pointerup"
	EventPointerOut   EventType = "pointerout"
	EventPointerLeave EventType = "pointerleave"
)
