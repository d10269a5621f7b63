package dispatch

import (
	"time"

	"github.com/odvcencio/bidinput/pkg/input"
)

// tickAction is one pointer's step within a tick.
type tickAction struct {
	pointerID   input.PointerID
	pointerType input.PointerType
	action      input.Action
}

// schedule is the eagerly built tick table: tick i holds one action per
// source in declaration order. There is no hidden iterator state; the
// whole sequence is laid out before the first tick executes.
type schedule struct {
	ticks [][]tickAction
}

// buildSchedule merges the per-pointer action lists into lockstep ticks.
// Shorter lists pad with zero-duration pauses so every source advances
// through every tick.
func buildSchedule(actions *input.Actions) schedule {
	sources := actions.Sources()
	width := 0
	lists := make([][]input.Action, len(sources))
	for i, src := range sources {
		lists[i] = src.Actions()
		if len(lists[i]) > width {
			width = len(lists[i])
		}
	}

	ticks := make([][]tickAction, width)
	for t := 0; t < width; t++ {
		tick := make([]tickAction, len(sources))
		for i, src := range sources {
			act := input.Action{Kind: input.ActionPause}
			if t < len(lists[i]) {
				act = lists[i][t]
			}
			tick[i] = tickAction{
				pointerID:   src.ID(),
				pointerType: src.Type(),
				action:      act,
			}
		}
		ticks[t] = tick
	}
	return schedule{ticks: ticks}
}

// duration returns how long the tick boundary holds: the longest pause or
// move duration declared in the tick. All pointers wait it out together.
func (s schedule) duration(tick int) time.Duration {
	var max time.Duration
	for _, ta := range s.ticks[tick] {
		if ta.action.Duration > max {
			max = ta.action.Duration
		}
	}
	return max
}
