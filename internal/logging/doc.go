// Package logging builds the slog loggers used across i3ctl.
//
// It provides a console handler for terminal use, a JSON handler for
// machine consumption, shared attribute helpers, and a no-op logger for
// callers that were handed nil. Components tag themselves with the
// standard component field so log lines stay attributable.
package logging
