package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/bidinput/pkg/input"
)

func TestBuildSchedule(t *testing.T) {
	actions := input.NewActions()
	actions.AddPointer(input.PointerTouch).
		PointerDown(input.ButtonLeft).
		PointerMove(10, 10, input.WithDuration(30*time.Millisecond)).
		PointerUp(input.ButtonLeft)
	actions.AddPointer(input.PointerPen).
		Pause(80 * time.Millisecond)

	sched := buildSchedule(actions)
	require.Len(t, sched.ticks, 3)

	for i, tick := range sched.ticks {
		require.Len(t, tick, 2, "tick %d", i)
		assert.Equal(t, input.PointerID(0), tick[0].pointerID)
		assert.Equal(t, input.PointerID(1), tick[1].pointerID)
	}

	// The shorter list pads with zero-duration pauses.
	assert.Equal(t, input.ActionPause, sched.ticks[1][1].action.Kind)
	assert.Zero(t, sched.ticks[1][1].action.Duration)
	assert.Equal(t, input.ActionPause, sched.ticks[2][1].action.Kind)

	// A tick holds for its longest declared duration.
	assert.Equal(t, 80*time.Millisecond, sched.duration(0))
	assert.Equal(t, 30*time.Millisecond, sched.duration(1))
	assert.Zero(t, sched.duration(2))
}

func TestPointerStateApplyContact(t *testing.T) {
	st := newPointerState(0, input.PointerPen)
	assert.Equal(t, 1.0, st.width)
	assert.Equal(t, 1.0, st.height)

	tiltX, tiltY := 12, -40
	st.applyContact(input.ContactUpdate{TiltX: &tiltX, TiltY: &tiltY})
	assert.Equal(t, 12, st.tiltX)
	assert.Equal(t, -40, st.tiltY)

	// Angles override raw tilt; a missing azimuth defaults to 0.
	altitude := 1.2
	azimuth := 6.0
	st.applyContact(input.ContactUpdate{
		AltitudeAngle: &altitude,
		AzimuthAngle:  &azimuth,
		TiltX:         &tiltX,
	})
	assert.Equal(t, 20, st.tiltX)
	assert.Equal(t, -6, st.tiltY)
}

func TestPointerStateEventPressure(t *testing.T) {
	st := newPointerState(0, input.PointerTouch)
	assert.Zero(t, st.eventPressure(), "unpressed pointers report zero")

	st.buttons = st.buttons.With(input.ButtonLeft)
	assert.Equal(t, 0.5, st.eventPressure(), "pressed without a value defaults to 0.5")

	pressure := 0.78
	st.applyContact(input.ContactUpdate{Pressure: &pressure})
	assert.Equal(t, 0.78, st.eventPressure())
}

func TestStateTableOrder(t *testing.T) {
	table := newStateTable()
	table.ensure(2, input.PointerTouch)
	table.ensure(0, input.PointerMouse)
	table.ensure(2, input.PointerTouch)

	states := table.inOrder()
	require.Len(t, states, 2)
	assert.Equal(t, input.PointerID(2), states[0].id)
	assert.Equal(t, input.PointerID(0), states[1].id)

	table.reset()
	assert.Empty(t, table.inOrder())
	_, ok := table.get(2)
	assert.False(t, ok)
}
