package dispatch

import (
	"github.com/odvcencio/bidinput/pkg/capture"
	"github.com/odvcencio/bidinput/pkg/input"
	"github.com/odvcencio/bidinput/pkg/page"
)

// stateDelta is the observable outcome of applying one action to the
// pointer state table, consumed by the event synthesizer.
type stateDelta struct {
	state       *pointerState
	moved       bool
	pressEdge   bool
	releaseEdge bool
	prevTarget  *page.Node
	target      *page.Node
}

func (d stateDelta) targetChanged() bool {
	return d.prevTarget != d.target
}

// synthesize emits the pointer events implied by a state delta, in the
// fixed order: pointerover, pointerenter (entered chain, outermost
// first), pointerdown, pointermove, pointerup, pointerout, pointerleave
// (exited chain, innermost first). A down/up pair with no intervening
// move never produces a spurious pointermove.
func synthesize(d stateDelta) []capture.EventRecord {
	var events []capture.EventRecord

	if d.targetChanged() && d.target != nil {
		events = append(events, d.event(input.EventPointerOver, d.target))
		for _, node := range enteredChain(d.prevTarget, d.target) {
			events = append(events, d.event(input.EventPointerEnter, node))
		}
	}
	if d.pressEdge {
		events = append(events, d.event(input.EventPointerDown, d.target))
	}
	if d.moved {
		events = append(events, d.event(input.EventPointerMove, d.target))
	}
	if d.releaseEdge {
		events = append(events, d.event(input.EventPointerUp, d.prevTarget))
	}
	if d.targetChanged() && d.prevTarget != nil {
		events = append(events, d.event(input.EventPointerOut, d.prevTarget))
		for _, node := range exitedChain(d.prevTarget, d.target) {
			events = append(events, d.event(input.EventPointerLeave, node))
		}
	}
	return events
}

// event fills the geometry and contact properties shared by every record
// in the delta. Sequence numbers, ids, and timestamps are assigned at
// dispatch time.
func (d stateDelta) event(eventType input.EventType, target *page.Node) capture.EventRecord {
	st := d.state
	rec := capture.EventRecord{
		Type:        eventType,
		PointerID:   st.id,
		PointerType: st.pointerType,
		PageX:       st.x,
		PageY:       st.y,
		Width:       st.width,
		Height:      st.height,
		Pressure:    st.eventPressure(),
		TiltX:       st.tiltX,
		TiltY:       st.tiltY,
		Twist:       st.twist,
	}
	if target != nil {
		rec.Target = target.ID()
	}
	return rec
}

// enteredChain lists the nodes newly under the pointer, outermost first,
// so pointerenter fires down the ancestry toward the hit target. The
// document root is always considered entered and never appears.
func enteredChain(prev, next *page.Node) []*page.Node {
	inPrev := ancestorSet(prev)
	chain := next.Ancestors()
	var entered []*page.Node
	for i := len(chain) - 1; i >= 0; i-- {
		node := chain[i]
		if node.Parent() == nil {
			continue
		}
		if _, ok := inPrev[node]; ok {
			continue
		}
		entered = append(entered, node)
	}
	return entered
}

// exitedChain lists the nodes no longer under the pointer, innermost
// first, so pointerleave fires up the ancestry away from the old target.
func exitedChain(prev, next *page.Node) []*page.Node {
	inNext := ancestorSet(next)
	var exited []*page.Node
	for _, node := range prev.Ancestors() {
		if node.Parent() == nil {
			continue
		}
		if _, ok := inNext[node]; ok {
			continue
		}
		exited = append(exited, node)
	}
	return exited
}

func ancestorSet(n *page.Node) map[*page.Node]struct{} {
	set := make(map[*page.Node]struct{})
	if n == nil {
		return set
	}
	for _, node := range n.Ancestors() {
		set[node] = struct{}{}
	}
	return set
}
