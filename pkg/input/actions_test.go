package input

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionsBuilder(t *testing.T) {
	actions := NewActions()
	finger := actions.AddPointer(PointerTouch)
	finger.
		PointerMove(10, 20, WithOrigin(ElementOrigin("box"))).
		PointerDown(ButtonLeft, WithArea(23, 31), WithPressure(0.78)).
		Pause(250 * time.Millisecond).
		PointerUp(ButtonLeft)

	require.Len(t, actions.Sources(), 1)
	assert.Equal(t, PointerID(0), finger.ID())
	assert.Equal(t, PointerTouch, finger.Type())

	acts := finger.Actions()
	require.Len(t, acts, 4)
	assert.Equal(t, ActionPointerMove, acts[0].Kind)
	assert.Equal(t, OriginElement, acts[0].Origin.Kind)
	assert.Equal(t, "box", acts[0].Origin.Element)
	assert.Equal(t, ActionPointerDown, acts[1].Kind)
	require.NotNil(t, acts[1].Contact.Width)
	assert.Equal(t, 23.0, *acts[1].Contact.Width)
	require.NotNil(t, acts[1].Contact.Pressure)
	assert.Equal(t, 0.78, *acts[1].Contact.Pressure)
	assert.Equal(t, 250*time.Millisecond, acts[2].Duration)
	assert.Equal(t, ActionPointerUp, acts[3].Kind)
}

func TestActionsBuilder_PointerIDsFollowDeclarationOrder(t *testing.T) {
	actions := NewActions()
	first := actions.AddPointer(PointerTouch)
	second := actions.AddPointer(PointerPen)

	assert.Equal(t, PointerID(0), first.ID())
	assert.Equal(t, PointerID(1), second.ID())
}

func TestActionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Actions
		wantErr error
	}{
		{
			name: "valid sequence",
			build: func() *Actions {
				a := NewActions()
				a.AddPointer(PointerPen).
					PointerMove(5, 5).
					PointerDown(ButtonLeft, WithTilt(-72, 9), WithTwist(86)).
					PointerUp(ButtonLeft)
				return a
			},
		},
		{
			name: "unknown pointer type",
			build: func() *Actions {
				a := NewActions()
				a.AddPointer(PointerType("stylus")).PointerDown(ButtonLeft)
				return a
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "pressure above one",
			build: func() *Actions {
				a := NewActions()
				a.AddPointer(PointerTouch).PointerDown(ButtonLeft, WithPressure(1.5))
				return a
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "negative width",
			build: func() *Actions {
				a := NewActions()
				a.AddPointer(PointerTouch).PointerDown(ButtonLeft, WithArea(-1, 10))
				return a
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "tilt out of range",
			build: func() *Actions {
				a := NewActions()
				a.AddPointer(PointerPen).PointerDown(ButtonLeft, WithTilt(91, 0))
				return a
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "button beyond the bitset",
			build: func() *Actions {
				a := NewActions()
				a.AddPointer(PointerMouse).PointerDown(Button(32))
				return a
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "negative button",
			build: func() *Actions {
				a := NewActions()
				a.AddPointer(PointerMouse).PointerUp(Button(-1))
				return a
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "twist wraps past 359",
			build: func() *Actions {
				a := NewActions()
				a.AddPointer(PointerPen).PointerDown(ButtonLeft, WithTwist(360))
				return a
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "altitude above vertical",
			build: func() *Actions {
				a := NewActions()
				a.AddPointer(PointerPen).PointerDown(ButtonLeft, WithAngles(math.Pi, 0))
				return a
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "negative duration",
			build: func() *Actions {
				a := NewActions()
				a.AddPointer(PointerMouse).PointerMove(1, 1, WithDuration(-time.Second))
				return a
			},
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build().Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestButtonsBitset(t *testing.T) {
	var b Buttons
	assert.True(t, b.Empty())

	b = b.With(ButtonLeft).With(ButtonRight)
	assert.True(t, b.Contain(ButtonLeft))
	assert.True(t, b.Contain(ButtonRight))
	assert.False(t, b.Contain(ButtonMiddle))

	b = b.Without(ButtonLeft)
	assert.False(t, b.Contain(ButtonLeft))
	assert.True(t, b.Contain(ButtonRight))
	assert.False(t, b.Empty())
}

func TestPointerTypeHovers(t *testing.T) {
	assert.True(t, PointerMouse.Hovers())
	assert.True(t, PointerPen.Hovers())
	assert.False(t, PointerTouch.Hovers())
}

func TestActionErrorAnnotation(t *testing.T) {
	err := NewError(ErrMoveTargetOutOfBounds, 2, 3, "(900, 10) is outside the viewport")
	assert.ErrorIs(t, err, ErrMoveTargetOutOfBounds)
	assert.Equal(t, ErrMoveTargetOutOfBounds, KindOf(err))
	assert.Contains(t, err.Error(), "pointer 2, tick 3")

	assert.Nil(t, KindOf(assert.AnError))
}
