package event

import (
	"fmt"
	"io"
	"log/slog"

	"i3ctl/internal/ipc"
	"i3ctl/internal/logging"
)

// Listener drains event frames from a subscribed connection. It owns
// the read side exclusively; no exchange may run on the same connection
// while a listener is attached.
type Listener struct {
	r      io.Reader
	logger *slog.Logger
}

// NewListener wraps a connection that has completed a subscribe
// exchange.
func NewListener(r io.Reader, logger *slog.Logger) *Listener {
	return &Listener{
		r:      r,
		logger: logging.NewComponentLogger(logger, "event"),
	}
}

// Next blocks until the next event frame arrives. A reply frame on a
// subscribed connection means request traffic leaked onto it, which is
// a caller error. Closure of the connection surfaces as the underlying
// read error (io.ErrUnexpectedEOF when it dies mid-frame).
func (l *Listener) Next() (Event, error) {
	code, payload, err := ipc.ReadMessage(l.r)
	if err != nil {
		return Event{}, err
	}
	if !ipc.IsEvent(code) {
		return Event{}, fmt.Errorf("event: reply frame (type %d) on a subscribed connection", code)
	}
	ev := Event{Type: Type(ipc.EventCode(code)), Payload: payload}
	l.logger.Debug("event received",
		logging.String(logging.FieldEvent, ev.Type.String()),
		logging.Int("payload_bytes", len(payload)))
	return ev, nil
}
