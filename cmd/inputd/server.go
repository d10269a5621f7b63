package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/odvcencio/bidinput/pkg/browsing"
	"github.com/odvcencio/bidinput/pkg/capture"
	"github.com/odvcencio/bidinput/pkg/dispatch"
	"github.com/odvcencio/bidinput/pkg/input"
	"github.com/odvcencio/bidinput/pkg/observability"
	"github.com/odvcencio/bidinput/pkg/page"
)

// Server is the debug/inspection HTTP surface: it creates browsing
// contexts from declarative page specs, submits action sequences to their
// dispatchers, and exposes captured events and Prometheus metrics.
type Server struct {
	log      *observability.Logger
	manager  *browsing.Manager
	recorder *capture.Recorder
	sink     capture.Sink

	mu          sync.Mutex
	dispatchers map[string]*dispatch.Dispatcher
}

// NewServer assembles the HTTP surface. The recorder always receives
// events; extra sinks (NATS, SQLite journal) arrive pre-fanned-in.
func NewServer(log *observability.Logger, recorder *capture.Recorder, sink capture.Sink) *Server {
	return &Server{
		log:         log,
		manager:     browsing.NewManager(),
		recorder:    recorder,
		sink:        sink,
		dispatchers: make(map[string]*dispatch.Dispatcher),
	}
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/contexts", func(r chi.Router) {
		r.Get("/", s.handleListContexts)
		r.Post("/", s.handleCreateContext)
		r.Route("/{contextID}", func(r chi.Router) {
			r.Delete("/", s.handleCloseContext)
			r.Post("/actions", s.handlePerformActions)
			r.Post("/release", s.handleReleaseActions)
			r.Get("/events", s.handleListEvents)
			r.Delete("/events", s.handleResetEvents)
		})
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListContexts(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"contexts": s.manager.List()})
}

func (s *Server) handleCreateContext(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	doc, err := page.Load(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	bc := browsing.NewContext(doc, nil)
	s.manager.Add(bc)

	d := dispatch.New(
		dispatch.WithSink(s.sink),
		dispatch.WithLogger(s.log),
	)
	s.mu.Lock()
	s.dispatchers[bc.ID()] = d
	s.mu.Unlock()

	s.log.Info("context created",
		slog.String("context_id", bc.ID()),
		slog.String("session_id", d.SessionID()))
	respondJSON(w, http.StatusCreated, map[string]string{
		"contextId": bc.ID(),
		"sessionId": d.SessionID(),
	})
}

func (s *Server) handleCloseContext(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contextID")
	if err := s.manager.CloseContext(id); err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	s.mu.Lock()
	delete(s.dispatchers, id)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePerformActions(w http.ResponseWriter, r *http.Request) {
	bc, d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	actions, err := input.DecodeActions(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := d.PerformActions(r.Context(), actions, bc); err != nil {
		respondActionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReleaseActions(w http.ResponseWriter, r *http.Request) {
	bc, d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if err := d.ReleaseActions(r.Context(), bc); err != nil {
		respondActionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contextID")
	var types []input.EventType
	for _, t := range r.URL.Query()["type"] {
		types = append(types, input.EventType(t))
	}
	events := s.recorder.EventsOfType(id, types...)
	respondJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (s *Server) handleResetEvents(w http.ResponseWriter, r *http.Request) {
	s.recorder.Reset(chi.URLParam(r, "contextID"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*browsing.Context, *dispatch.Dispatcher, bool) {
	id := chi.URLParam(r, "contextID")
	bc, ok := s.manager.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, errors.New("unknown browsing context"))
		return nil, nil, false
	}
	s.mu.Lock()
	d := s.dispatchers[id]
	s.mu.Unlock()
	if d == nil {
		respondError(w, http.StatusNotFound, errors.New("unknown browsing context"))
		return nil, nil, false
	}
	return bc, d, true
}

// respondActionError maps the dispatch error taxonomy onto HTTP statuses,
// keeping each kind individually distinguishable in the payload.
func respondActionError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := "internal error"
	switch {
	case errors.Is(err, input.ErrMoveTargetOutOfBounds):
		status, kind = http.StatusUnprocessableEntity, "move target out of bounds"
	case errors.Is(err, input.ErrNoSuchFrame):
		status, kind = http.StatusNotFound, "no such frame"
	case errors.Is(err, input.ErrInvalidActionState):
		status, kind = http.StatusConflict, "invalid action state"
	case errors.Is(err, input.ErrInvalidArgument):
		status, kind = http.StatusBadRequest, "invalid argument"
	}
	respondJSON(w, status, map[string]string{
		"error":   kind,
		"message": err.Error(),
	})
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
