package event_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"i3ctl/internal/event"
	"i3ctl/internal/ipc"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		name string
		want event.Type
		ok   bool
	}{
		{"workspace", event.Workspace, true},
		{"output", event.Output, true},
		{"mode", event.Mode, true},
		{"window", event.Window, true},
		{"barconfig_update", event.BarConfigUpdate, true},
		{"binding", event.Binding, true},
		{"shutdown", event.Shutdown, true},
		{"tick", event.Tick, true},
		{"keyboard", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := event.ParseType(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseType(%q) = (%v, %v), want (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNamesRoundTrip(t *testing.T) {
	names := event.Names()
	if len(names) != 8 {
		t.Fatalf("Names() has %d entries, want 8", len(names))
	}
	for _, name := range names {
		if _, ok := event.ParseType(name); !ok {
			t.Errorf("ParseType rejects %q from Names()", name)
		}
	}
}

func TestEventDecode(t *testing.T) {
	ev := event.Event{
		Type:    event.Workspace,
		Payload: []byte(`{"change":"focus","current":{"id":7,"name":"2"}}`),
	}
	decoded, err := ev.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	change, ok := decoded.(*event.WorkspaceChange)
	if !ok {
		t.Fatalf("decoded %T, want *WorkspaceChange", decoded)
	}
	if change.Change != "focus" || change.Current == nil || change.Current.Name != "2" {
		t.Fatalf("change = %+v", change)
	}
}

func TestEventDecodeTick(t *testing.T) {
	ev := event.Event{Type: event.Tick, Payload: []byte(`{"first":true,"payload":""}`)}
	decoded, err := ev.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	tick, ok := decoded.(*event.TickPayload)
	if !ok || !tick.First {
		t.Fatalf("decoded %#v", decoded)
	}
}

func TestEventChange(t *testing.T) {
	ev := event.Event{Type: event.Window, Payload: []byte(`{"change":"new","container":{}}`)}
	if got := ev.Change(); got != "new" {
		t.Fatalf("Change() = %q, want %q", got, "new")
	}
	tick := event.Event{Type: event.Tick, Payload: []byte(`{"first":true}`)}
	if got := tick.Change(); got != "" {
		t.Fatalf("Change() on tick = %q, want empty", got)
	}
}

func TestListenerNext(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(ipc.EncodeFrame(ipc.MessageType(uint32(event.Window)|1<<31), []byte(`{"change":"focus"}`)))
	stream.Write(ipc.EncodeFrame(ipc.MessageType(uint32(event.Tick)|1<<31), []byte(`{"first":true}`)))

	listener := event.NewListener(&stream, nil)

	ev, err := listener.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Type != event.Window || ev.Change() != "focus" {
		t.Fatalf("first event = %+v", ev)
	}

	ev, err = listener.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Type != event.Tick {
		t.Fatalf("second event type = %v", ev.Type)
	}

	if _, err := listener.Next(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("drained listener error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestListenerRejectsReplyFrame(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(ipc.EncodeFrame(ipc.GetVersion, []byte(`{}`)))

	listener := event.NewListener(&stream, nil)
	if _, err := listener.Next(); err == nil {
		t.Fatal("expected error for reply frame on subscribed connection")
	}
}
