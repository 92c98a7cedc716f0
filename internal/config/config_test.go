package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"i3ctl/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Output.Format != "table" || cfg.Output.Color != "auto" {
		t.Fatalf("output defaults = %+v", cfg.Output)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("logging defaults = %+v", cfg.Logging)
	}
	if cfg.EventLog.Path == "" {
		t.Fatal("default event log path empty")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("exists = true for missing file")
	}
	if resolved != path {
		t.Fatalf("resolved = %q, want %q", resolved, path)
	}
	if cfg.Output.Format != "table" {
		t.Fatalf("format = %q, want default", cfg.Output.Format)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[socket]
path = "/run/user/1000/i3/ipc.sock"

[output]
format = "JSON"
color = "never"

[logging]
level = "Debug"

[event_log]
path = "/tmp/i3ctl-test/events.db"
`)
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for present file")
	}
	if cfg.Socket.Path != "/run/user/1000/i3/ipc.sock" {
		t.Fatalf("socket.path = %q", cfg.Socket.Path)
	}
	// Enum values are normalized to lowercase before validation.
	if cfg.Output.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("normalization missed: %+v", cfg)
	}
	if cfg.Output.Color != "never" {
		t.Fatalf("color = %q", cfg.Output.Color)
	}
	if cfg.EventLog.Path != "/tmp/i3ctl-test/events.db" {
		t.Fatalf("event_log.path = %q", cfg.EventLog.Path)
	}
	// Unset sections keep their defaults.
	if cfg.Logging.Format != "console" {
		t.Fatalf("logging.format = %q, want default", cfg.Logging.Format)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		fragment string
	}{
		{
			name:     "bad output format",
			contents: "[output]\nformat = \"yaml\"\n",
			fragment: "output.format",
		},
		{
			name:     "bad color mode",
			contents: "[output]\ncolor = \"sometimes\"\n",
			fragment: "output.color",
		},
		{
			name:     "bad log level",
			contents: "[logging]\nlevel = \"trace\"\n",
			fragment: "logging.level",
		},
		{
			name:     "bad log format",
			contents: "[logging]\nformat = \"logfmt\"\n",
			fragment: "logging.format",
		},
		{
			name:     "malformed toml",
			contents: "[output\nformat =",
			fragment: "parse config",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.contents)
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.fragment) {
				t.Fatalf("error %q does not mention %q", err, tc.fragment)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("home dir: %v", err)
	}

	got, err := config.ExpandPath("~/.local/share/i3ctl/events.db")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := filepath.Join(home, ".local/share/i3ctl/events.db")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}

	got, err = config.ExpandPath("~")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != home {
		t.Fatalf("ExpandPath(~) = %q, want %q", got, home)
	}

	if got, err := config.ExpandPath(""); err != nil || got != "" {
		t.Fatalf("ExpandPath(\"\") = (%q, %v)", got, err)
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file not found after CreateSample")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}
