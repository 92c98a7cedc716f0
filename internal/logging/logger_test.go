package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"i3ctl/internal/logging"
)

func TestConsoleLineFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger = logger.With(logging.String(logging.FieldComponent, "ipc"))
	logger.Info("exchange", logging.String("msg_type", "get_version"), logging.Int("payload_bytes", 0))

	line := strings.TrimSuffix(buf.String(), "\n")
	if !strings.Contains(line, " INFO ipc: exchange") {
		t.Fatalf("line %q missing level/component/message", line)
	}
	if !strings.Contains(line, "msg_type=get_version") || !strings.Contains(line, "payload_bytes=0") {
		t.Fatalf("line %q missing attrs", line)
	}
	if strings.Contains(line, logging.FieldComponent+"=") {
		t.Fatalf("component leaked as attr in %q", line)
	}
}

func TestConsoleQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Warn("run failed", logging.Error(errors.New("no such command: foo")))
	if !strings.Contains(buf.String(), `error="no such command: foo"`) {
		t.Fatalf("line %q lacks quoted error", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("suppressed lines leaked: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("dialed", logging.String(logging.FieldSocket, "/tmp/i3.sock"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if record["level"] != "debug" {
		t.Fatalf("level = %v", record["level"])
	}
	if record["msg"] != "dialed" || record[logging.FieldSocket] != "/tmp/i3.sock" {
		t.Fatalf("record = %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("record lacks ts")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "logfmt"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerIsSilent(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("never seen", logging.Error(errors.New("boom")))
	// Nothing to assert beyond not panicking; the handler discards all.

	component := logging.NewComponentLogger(nil, "event")
	component.Info("also discarded")
}
