package testsupport

import (
	"path/filepath"
	"testing"

	"i3ctl/internal/config"
)

// NewConfig produces a config seeded with a unique temp event log per
// test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.EventLog.Path = filepath.Join(t.TempDir(), "events.db")
	return &cfg
}
