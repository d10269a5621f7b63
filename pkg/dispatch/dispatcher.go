// Package dispatch turns declarative pointer action sequences into
// ordered streams of DOM pointer events: it owns the per-session pointer
// state table, the lockstep tick sequencer, origin resolution, and event
// synthesis.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/odvcencio/bidinput/pkg/browsing"
	"github.com/odvcencio/bidinput/pkg/capture"
	"github.com/odvcencio/bidinput/pkg/input"
	"github.com/odvcencio/bidinput/pkg/observability"
	"github.com/odvcencio/bidinput/pkg/session"
)

// Dispatcher executes action sequences for one input session. It is a
// single logical actor: PerformActions calls are serialized, queued in
// submission order, and return only after every tick completed or the
// sequence aborted.
type Dispatcher struct {
	sessionID string
	sink      capture.Sink
	clock     Clock
	log       *observability.Logger

	mu    sync.Mutex
	table *stateTable
	seq   map[string]uint64
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSink directs synthesized events to the given sink.
func WithSink(sink capture.Sink) Option {
	return func(d *Dispatcher) { d.sink = sink }
}

// WithClock replaces the tick-pacing clock.
func WithClock(clock Clock) Option {
	return func(d *Dispatcher) { d.clock = clock }
}

// WithLogger replaces the default logger.
func WithLogger(log *observability.Logger) Option {
	return func(d *Dispatcher) { d.log = log }
}

// WithSessionID pins the session identifier instead of generating one.
func WithSessionID(id string) Option {
	return func(d *Dispatcher) { d.sessionID = id }
}

// New creates a dispatcher with a fresh pointer state table.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		clock: realClock{},
		table: newStateTable(),
		seq:   make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.sessionID == "" {
		d.sessionID = session.GenerateID("input")
	}
	if d.log == nil {
		d.log = observability.NewLogger("dispatch", slog.LevelInfo)
	}
	d.log = d.log.WithSession(d.sessionID)
	return d
}

// SessionID returns the input session identifier.
func (d *Dispatcher) SessionID() string { return d.sessionID }

// PerformActions executes the sequence against the browsing context.
// Tick i runs for every pointer before tick i+1 runs for any; within a
// tick, pointers are processed in declaration order. The first failing
// action aborts the rest of the sequence; events dispatched by earlier
// ticks are permanent.
func (d *Dispatcher) PerformActions(ctx context.Context, actions *input.Actions, bc *browsing.Context) error {
	if actions == nil || len(actions.Sources()) == 0 {
		return nil
	}
	if err := actions.Validate(); err != nil {
		metricSequenceFailures.WithLabelValues(failureKind(err)).Inc()
		return err
	}

	// The actor lock also implements queueing: a second call parks here
	// until the in-flight sequence finishes.
	d.mu.Lock()
	defer d.mu.Unlock()

	ctx, span := observability.StartSpan(ctx, "input.perform_actions",
		trace.WithAttributes(
			observability.AttrSessionID.String(d.sessionID),
			observability.AttrContextID.String(bc.ID()),
		))
	defer span.End()

	metricSequencesStarted.Inc()
	metricActiveSequences.Inc()
	defer metricActiveSequences.Dec()

	sched := buildSchedule(actions)
	span.SetAttributes(observability.AttrTickCount.Int(len(sched.ticks)))
	for _, src := range actions.Sources() {
		d.table.ensure(src.ID(), src.Type())
	}

	log := d.log.WithBrowsingContext(bc.ID())
	log.Debug("performing actions",
		slog.Int("pointers", len(actions.Sources())),
		slog.Int("ticks", len(sched.ticks)))

	for i, tick := range sched.ticks {
		started := time.Now()
		for _, ta := range tick {
			if err := d.executeAction(ctx, bc, i, ta); err != nil {
				metricSequenceFailures.WithLabelValues(failureKind(err)).Inc()
				observability.RecordError(ctx, err)
				log.Warn("action sequence aborted",
					slog.Int("tick", i),
					slog.Int("pointer", int(ta.pointerID)),
					slog.String("error", err.Error()))
				return err
			}
		}
		metricTickDuration.Observe(time.Since(started).Seconds())
		if hold := sched.duration(i); hold > 0 {
			if err := d.clock.Sleep(ctx, hold); err != nil {
				metricSequenceFailures.WithLabelValues("internal").Inc()
				return err
			}
		}
	}

	metricSequencesCompleted.Inc()
	return nil
}

// ReleaseActions undoes the session's input state: every still-pressed
// button gets a synthesized pointerup in pointer-declaration order, then
// the state table is cleared.
func (d *Dispatcher) ReleaseActions(ctx context.Context, bc *browsing.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ctx, span := observability.StartSpan(ctx, "input.release_actions",
		trace.WithAttributes(
			observability.AttrSessionID.String(d.sessionID),
			observability.AttrContextID.String(bc.ID()),
		))
	defer span.End()

	for _, st := range d.table.inOrder() {
		for btn := input.Button(0); btn < 32; btn++ {
			if !st.buttons.Contain(btn) {
				continue
			}
			if bc.Closed() {
				return input.NewError(input.ErrNoSuchFrame, st.id, -1, "browsing context closed")
			}
			delta := st.release(btn)
			if err := d.emit(ctx, bc, delta); err != nil {
				return err
			}
		}
	}
	d.table.reset()
	return nil
}

// executeAction applies one tick action to the state table and dispatches
// the implied events. The closed-context check is the "first subsequent
// mutation" of the cancellation contract: a sink side effect that closes
// the context is observed by the very next action.
func (d *Dispatcher) executeAction(ctx context.Context, bc *browsing.Context, tick int, ta tickAction) error {
	metricActionsDispatched.WithLabelValues(string(ta.action.Kind)).Inc()
	if ta.action.Kind == input.ActionPause {
		return nil
	}

	if bc.Closed() {
		return input.NewError(input.ErrNoSuchFrame, ta.pointerID, tick, "browsing context closed")
	}
	doc, err := bc.Document()
	if err != nil {
		return input.NewError(input.ErrNoSuchFrame, ta.pointerID, tick, err.Error())
	}

	st, ok := d.table.get(ta.pointerID)
	if !ok {
		st = d.table.ensure(ta.pointerID, ta.pointerType)
	}

	var delta stateDelta
	switch ta.action.Kind {
	case input.ActionPointerMove:
		x, y, err := resolveOrigin(doc, st, ta.action, tick)
		if err != nil {
			return err
		}
		st.applyContact(ta.action.Contact)
		moved := x != st.x || y != st.y
		st.x, st.y = x, y

		delta = stateDelta{state: st, moved: moved, prevTarget: st.target}
		if st.buttons.Empty() && !st.pointerType.Hovers() {
			// A lifted touch contact does not exist: the move repositions
			// the pointer without synthesizing anything.
			delta.moved = false
			delta.target = nil
		} else {
			delta.target = doc.HitTest(x, y)
		}
		st.target = delta.target

	case input.ActionPointerDown:
		if st.buttons.Contain(ta.action.Button) {
			return nil
		}
		st.applyContact(ta.action.Contact)
		st.buttons = st.buttons.With(ta.action.Button)
		delta = stateDelta{
			state:      st,
			pressEdge:  true,
			prevTarget: st.target,
			target:     doc.HitTest(st.x, st.y),
		}
		st.target = delta.target

	case input.ActionPointerUp:
		if !st.buttons.Contain(ta.action.Button) {
			return input.NewError(input.ErrInvalidActionState, st.id, tick,
				fmt.Sprintf("button %d is not pressed", ta.action.Button))
		}
		delta = st.release(ta.action.Button)

	default:
		return input.NewError(input.ErrInvalidArgument, st.id, tick,
			fmt.Sprintf("unknown action kind %q", ta.action.Kind))
	}

	return d.emit(ctx, bc, delta)
}

// release applies a button-up edge. When a touch pointer loses its last
// button the contact disappears, so the target is withdrawn and the
// supplied pressure is forgotten.
func (s *pointerState) release(btn input.Button) stateDelta {
	s.buttons = s.buttons.Without(btn)
	delta := stateDelta{
		state:       s,
		releaseEdge: true,
		prevTarget:  s.target,
		target:      s.target,
	}
	if s.buttons.Empty() {
		s.pressureSet = false
		if !s.pointerType.Hovers() {
			delta.target = nil
		}
	}
	s.target = delta.target
	return delta
}

// emit synthesizes the delta's events and hands them to the sink in
// order, stamping context, sequence, id, and timestamp.
func (d *Dispatcher) emit(ctx context.Context, bc *browsing.Context, delta stateDelta) error {
	for _, rec := range synthesize(delta) {
		d.seq[bc.ID()]++
		rec.ID = uuid.NewString()
		rec.ContextID = bc.ID()
		rec.Seq = d.seq[bc.ID()]
		rec.Timestamp = time.Now().UTC()

		metricEventsSynthesized.WithLabelValues(string(rec.Type)).Inc()
		if d.sink == nil {
			continue
		}
		if err := d.sink.Record(ctx, rec); err != nil {
			return fmt.Errorf("record %s event: %w", rec.Type, err)
		}
	}
	return nil
}
