package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const defaultSubjectPrefix = "bidinput.events"

// NATSSink publishes event records as JSON to a per-context subject
// (<prefix>.<contextID>), letting external consumers follow dispatched
// events live.
type NATSSink struct {
	conn    *nats.Conn
	prefix  string
	ownConn bool
}

// NATSConfig configures a NATSSink.
type NATSConfig struct {
	URL           string
	Name          string
	SubjectPrefix string
	Timeout       time.Duration
}

// NewNATSSink connects to NATS and returns a publishing sink.
func NewNATSSink(cfg NATSConfig) (*NATSSink, error) {
	if cfg.URL == "" {
		cfg.URL = nats.DefaultURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	conn, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.Timeout(cfg.Timeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	sink := NewNATSSinkFromConn(conn, cfg.SubjectPrefix)
	sink.ownConn = true
	return sink, nil
}

// NewNATSSinkFromConn wraps an existing connection. The caller keeps
// ownership of the connection.
func NewNATSSinkFromConn(conn *nats.Conn, subjectPrefix string) *NATSSink {
	if subjectPrefix == "" {
		subjectPrefix = defaultSubjectPrefix
	}
	return &NATSSink{conn: conn, prefix: subjectPrefix}
}

// Record publishes the event to its context subject.
func (s *NATSSink) Record(_ context.Context, rec EventRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal event record: %w", err)
	}
	if err := s.conn.Publish(s.Subject(rec.ContextID), data); err != nil {
		return fmt.Errorf("publish event record: %w", err)
	}
	return nil
}

// Subject returns the subject records for a context are published to.
func (s *NATSSink) Subject(contextID string) string {
	return s.prefix + "." + contextID
}

// Close drains the connection if the sink owns it.
func (s *NATSSink) Close() error {
	if !s.ownConn || s.conn == nil {
		return nil
	}
	return s.conn.Drain()
}
