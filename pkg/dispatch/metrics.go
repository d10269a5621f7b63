package dispatch

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/odvcencio/bidinput/pkg/input"
)

var (
	metricSequencesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bidinput",
		Name:      "sequences_started_total",
		Help:      "Action sequences accepted for dispatch.",
	})
	metricSequencesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bidinput",
		Name:      "sequences_completed_total",
		Help:      "Action sequences that ran every tick to completion.",
	})
	metricSequenceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bidinput",
		Name:      "sequence_failures_total",
		Help:      "Action sequences aborted, by error kind.",
	}, []string{"kind"})
	metricActiveSequences = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "bidinput",
		Name:      "sequences_active",
		Help:      "Action sequences currently executing or queued.",
	})
	metricActionsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bidinput",
		Name:      "actions_dispatched_total",
		Help:      "Individual pointer actions processed, by action kind.",
	}, []string{"kind"})
	metricEventsSynthesized = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bidinput",
		Name:      "events_synthesized_total",
		Help:      "DOM pointer events synthesized, by event type.",
	}, []string{"type"})
	metricTickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bidinput",
		Name:      "tick_duration_seconds",
		Help:      "Wall time spent executing one tick across all pointers.",
		Buckets:   prometheus.DefBuckets,
	})
)

// failureKind maps an error onto its metrics label.
func failureKind(err error) string {
	switch {
	case errors.Is(err, input.ErrMoveTargetOutOfBounds):
		return "move_target_out_of_bounds"
	case errors.Is(err, input.ErrNoSuchFrame):
		return "no_such_frame"
	case errors.Is(err, input.ErrInvalidActionState):
		return "invalid_action_state"
	case errors.Is(err, input.ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "internal"
	}
}
