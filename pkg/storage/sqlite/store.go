// Package sqlite persists dispatched pointer events in a SQLite journal,
// one ordered log per browsing context.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/odvcencio/bidinput/pkg/capture"
	"github.com/odvcencio/bidinput/pkg/input"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id            TEXT PRIMARY KEY,
	context_id    TEXT NOT NULL,
	seq           INTEGER NOT NULL,
	type          TEXT NOT NULL,
	pointer_id    INTEGER NOT NULL,
	pointer_type  TEXT NOT NULL,
	page_x        REAL NOT NULL,
	page_y        REAL NOT NULL,
	target        TEXT NOT NULL,
	width         REAL NOT NULL,
	height        REAL NOT NULL,
	pressure      REAL NOT NULL,
	tilt_x        INTEGER NOT NULL,
	tilt_y        INTEGER NOT NULL,
	twist         INTEGER NOT NULL,
	recorded_at_ms INTEGER NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_events_context_seq
	ON events (context_id, seq);
`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store is a SQLite-backed event journal. It implements capture.Sink so
// it can sit directly in the dispatcher's fanout.
type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the journal at the given path.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite journal: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply journal schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database. Nil-safe so callers can defer it
// in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one event to the journal.
func (s *Store) Record(ctx context.Context, rec capture.EventRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (
			id, context_id, seq, type, pointer_id, pointer_type,
			page_x, page_y, target, width, height, pressure,
			tilt_x, tilt_y, twist, recorded_at_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.ContextID, rec.Seq, string(rec.Type), int(rec.PointerID),
		string(rec.PointerType), rec.PageX, rec.PageY, rec.Target,
		rec.Width, rec.Height, rec.Pressure,
		rec.TiltX, rec.TiltY, rec.Twist, toMillis(rec.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// ListEvents returns a context's events in dispatch order.
func (s *Store) ListEvents(ctx context.Context, contextID string) ([]capture.EventRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, context_id, seq, type, pointer_id, pointer_type,
			page_x, page_y, target, width, height, pressure,
			tilt_x, tilt_y, twist, recorded_at_ms
		FROM events WHERE context_id = ? ORDER BY seq`, contextID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []capture.EventRecord
	for rows.Next() {
		var rec capture.EventRecord
		var eventType, pointerType string
		var pointerID int
		var recordedAt int64
		if err := rows.Scan(
			&rec.ID, &rec.ContextID, &rec.Seq, &eventType, &pointerID, &pointerType,
			&rec.PageX, &rec.PageY, &rec.Target, &rec.Width, &rec.Height, &rec.Pressure,
			&rec.TiltX, &rec.TiltY, &rec.Twist, &recordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		rec.Type = input.EventType(eventType)
		rec.PointerID = input.PointerID(pointerID)
		rec.PointerType = input.PointerType(pointerType)
		rec.Timestamp = fromMillis(recordedAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

// PurgeContext drops a context's journal, mirroring the recorder's Reset.
func (s *Store) PurgeContext(ctx context.Context, contextID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE context_id = ?`, contextID); err != nil {
		return fmt.Errorf("purge context events: %w", err)
	}
	return nil
}
