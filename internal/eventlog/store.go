package eventlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages event persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the event database and applies the
// schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create event log directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) applySchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            started_at TEXT NOT NULL,
            events TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS events (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
            recorded_at TEXT NOT NULL,
            event TEXT NOT NULL,
            change TEXT NOT NULL,
            payload TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Session describes one recording run.
type Session struct {
	ID        string
	StartedAt time.Time
	Events    []string
	Count     int
}

// Entry is one recorded event.
type Entry struct {
	ID         int64
	SessionID  string
	RecordedAt time.Time
	Event      string
	Change     string
	Payload    string
}

// BeginSession registers a recording run before its first event.
func (s *Store) BeginSession(ctx context.Context, id string, events []string, startedAt time.Time) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (id, started_at, events) VALUES (?, ?, ?)`,
		id,
		startedAt.UTC().Format(time.RFC3339Nano),
		strings.Join(events, ","),
	)
	if err != nil {
		return fmt.Errorf("insert session %s: %w", id, err)
	}
	return nil
}

// Append stores one received event.
func (s *Store) Append(ctx context.Context, entry Entry) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO events (session_id, recorded_at, event, change, payload)
         VALUES (?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.RecordedAt.UTC().Format(time.RFC3339Nano),
		entry.Event,
		entry.Change,
		entry.Payload,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Sessions lists recording runs, newest first.
func (s *Store) Sessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT s.id, s.started_at, s.events, COUNT(e.id)
        FROM sessions s
        LEFT JOIN events e ON e.session_id = s.id
        GROUP BY s.id
        ORDER BY s.started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			session Session
			started string
			events  string
		)
		if err := rows.Scan(&session.ID, &started, &events, &session.Count); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		session.StartedAt, err = time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, fmt.Errorf("parse session timestamp %q: %w", started, err)
		}
		if events != "" {
			session.Events = strings.Split(events, ",")
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// Filter narrows a List call. Zero values mean no restriction.
type Filter struct {
	SessionID string
	Event     string
	Limit     int
}

// List returns recorded events, oldest first, honoring the filter.
func (s *Store) List(ctx context.Context, filter Filter) ([]Entry, error) {
	query := `SELECT id, session_id, recorded_at, event, change, payload FROM events`
	var (
		conditions []string
		args       []any
	)
	if filter.SessionID != "" {
		conditions = append(conditions, "session_id = ?")
		args = append(args, filter.SessionID)
	}
	if filter.Event != "" {
		conditions = append(conditions, "event = ?")
		args = append(args, filter.Event)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry    Entry
			recorded string
		)
		if err := rows.Scan(&entry.ID, &entry.SessionID, &recorded, &entry.Event, &entry.Change, &entry.Payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		entry.RecordedAt, err = time.Parse(time.RFC3339Nano, recorded)
		if err != nil {
			return nil, fmt.Errorf("parse event timestamp %q: %w", recorded, err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
