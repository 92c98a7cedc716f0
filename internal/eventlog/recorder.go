package eventlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"i3ctl/internal/event"
	"i3ctl/internal/logging"
)

// ErrRecorderActive reports that another recorder already holds the
// database lock.
var ErrRecorderActive = errors.New("eventlog: another recorder is writing to this database")

// Recorder appends events from a listener to the store under a fresh
// session. One recorder per database at a time, enforced with a file
// lock next to the database.
type Recorder struct {
	store     *Store
	lock      *flock.Flock
	sessionID string
	logger    *slog.Logger
}

// NewRecorder acquires the database lock and registers a new session
// identifier. Callers must Release the recorder when done.
func NewRecorder(store *Store, logger *slog.Logger) (*Recorder, error) {
	lock := flock.New(store.Path() + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("eventlog: acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrRecorderActive
	}

	return &Recorder{
		store:     store,
		lock:      lock,
		sessionID: uuid.NewString(),
		logger:    logging.NewComponentLogger(logger, "eventlog"),
	}, nil
}

// SessionID identifies the recording run started by this recorder.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Release drops the database lock.
func (r *Recorder) Release() {
	if r.lock != nil {
		_ = r.lock.Unlock()
	}
}

// Run registers the session and appends every event the listener
// yields until the context is canceled or the connection dies. A
// canceled context is a clean stop, not an error.
func (r *Recorder) Run(ctx context.Context, listener *event.Listener, events []string) error {
	if err := r.store.BeginSession(ctx, r.sessionID, events, time.Now()); err != nil {
		return err
	}
	r.logger.Info("recording started",
		logging.String(logging.FieldSession, r.sessionID),
		logging.Any("events", events))

	for {
		ev, err := listener.Next()
		if err != nil {
			if ctx.Err() != nil {
				r.logger.Info("recording stopped", logging.String(logging.FieldSession, r.sessionID))
				return nil
			}
			return fmt.Errorf("eventlog: listener: %w", err)
		}
		entry := Entry{
			SessionID:  r.sessionID,
			RecordedAt: time.Now(),
			Event:      ev.Type.String(),
			Change:     ev.Change(),
			Payload:    string(ev.Payload),
		}
		if err := r.store.Append(ctx, entry); err != nil {
			return err
		}
	}
}
