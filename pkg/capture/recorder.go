package capture

import (
	"context"
	"sync"

	"github.com/odvcencio/bidinput/pkg/input"
)

// Recorder is the in-memory sink: an ordered event log per browsing
// context, safe for concurrent use.
type Recorder struct {
	mu        sync.RWMutex
	byContext map[string][]EventRecord
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{byContext: make(map[string][]EventRecord)}
}

// Record appends the event to its context's log.
func (r *Recorder) Record(_ context.Context, rec EventRecord) error {
	r.mu.Lock()
	r.byContext[rec.ContextID] = append(r.byContext[rec.ContextID], rec)
	r.mu.Unlock()
	return nil
}

// Events returns a copy of the context's log in dispatch order.
func (r *Recorder) Events(contextID string) []EventRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := r.byContext[contextID]
	out := make([]EventRecord, len(events))
	copy(out, events)
	return out
}

// EventsOfType returns the context's log filtered to the given event
// types, preserving order. With no types it returns everything.
func (r *Recorder) EventsOfType(contextID string, types ...input.EventType) []EventRecord {
	all := r.Events(contextID)
	if len(types) == 0 {
		return all
	}
	want := make(map[input.EventType]struct{}, len(types))
	for _, t := range types {
		want[t] = struct{}{}
	}
	var out []EventRecord
	for _, rec := range all {
		if _, ok := want[rec.Type]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// Reset discards the context's log.
func (r *Recorder) Reset(contextID string) {
	r.mu.Lock()
	delete(r.byContext, contextID)
	r.mu.Unlock()
}
