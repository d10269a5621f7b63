package dispatch

import (
	"errors"
	"fmt"

	"github.com/odvcencio/bidinput/pkg/input"
	"github.com/odvcencio/bidinput/pkg/page"
)

// resolveOrigin converts a move action's origin and offsets into absolute
// viewport coordinates. Element origins resolve through the live document
// at tick-execution time; nothing is cached across ticks. Coordinates
// outside the viewport fail with MoveTargetOutOfBounds; the exact boundary
// is in bounds and fractional values are preserved.
func resolveOrigin(doc *page.Document, st *pointerState, act input.Action, tick int) (float64, float64, error) {
	var x, y float64
	switch act.Origin.KindOrDefault() {
	case input.OriginViewport:
		x, y = act.X, act.Y
	case input.OriginPointer:
		x, y = st.x+act.X, st.y+act.Y
	case input.OriginElement:
		node, err := doc.GetElement(act.Origin.Element)
		if err != nil {
			if errors.Is(err, page.ErrNoSuchElement) {
				return 0, 0, input.NewError(input.ErrInvalidArgument, st.id, tick, err.Error())
			}
			return 0, 0, err
		}
		cx, cy := doc.InViewCenter(node)
		x, y = cx+act.X, cy+act.Y
	default:
		return 0, 0, input.NewError(input.ErrInvalidArgument, st.id, tick,
			fmt.Sprintf("unknown origin kind %q", act.Origin.Kind))
	}

	if !doc.Viewport().InBounds(x, y) {
		return 0, 0, input.NewError(input.ErrMoveTargetOutOfBounds, st.id, tick,
			fmt.Sprintf("(%g, %g) is outside the viewport", x, y))
	}
	return x, y, nil
}
