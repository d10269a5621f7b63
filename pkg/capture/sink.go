// Package capture collects the pointer events the dispatcher synthesizes.
// The recorder is the passive in-memory sink conformance checks query;
// additional sinks publish records to NATS or persist them. Sinks run
// synchronously inside the dispatch tick, so a sink side effect (closing
// the browsing context from a pointerdown handler, say) is observed by the
// very next action.
package capture

import (
	"context"
	"time"

	"github.com/odvcencio/bidinput/pkg/input"
)

// EventRecord is one synthesized pointer event as delivered to sinks.
type EventRecord struct {
	ID          string            `json:"id"`
	ContextID   string            `json:"contextId"`
	Seq         uint64            `json:"seq"`
	Type        input.EventType   `json:"type"`
	PointerID   input.PointerID   `json:"pointerId"`
	PointerType input.PointerType `json:"pointerType"`
	PageX       float64           `json:"pageX"`
	PageY       float64           `json:"pageY"`
	Target      string            `json:"target"`
	Width       float64           `json:"width"`
	Height      float64           `json:"height"`
	Pressure    float64           `json:"pressure"`
	TiltX       int               `json:"tiltX"`
	TiltY       int               `json:"tiltY"`
	Twist       int               `json:"twist"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Sink receives synthesized events in dispatch order.
type Sink interface {
	Record(ctx context.Context, rec EventRecord) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, rec EventRecord) error

func (f SinkFunc) Record(ctx context.Context, rec EventRecord) error {
	return f(ctx, rec)
}

// Fanout tees every record to several sinks in order. The first sink
// error stops the fanout and propagates.
type Fanout []Sink

func (f Fanout) Record(ctx context.Context, rec EventRecord) error {
	for _, sink := range f {
		if sink == nil {
			continue
		}
		if err := sink.Record(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
