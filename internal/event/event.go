package event

import (
	"encoding/json"
	"fmt"

	"i3ctl/internal/reply"
)

// Type identifies a pushed event. The values are the low bits of the
// frame's type code; the wire additionally sets bit 31 on every event
// frame. Like message types, these are protocol-fixed.
type Type uint32

const (
	Workspace Type = iota
	Output
	Mode
	Window
	BarConfigUpdate
	Binding
	Shutdown
	Tick
)

var typeNames = map[Type]string{
	Workspace:       "workspace",
	Output:          "output",
	Mode:            "mode",
	Window:          "window",
	BarConfigUpdate: "barconfig_update",
	Binding:         "binding",
	Shutdown:        "shutdown",
	Tick:            "tick",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", uint32(t))
}

// ParseType maps a subscription name back to its event type.
func ParseType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Names returns every subscribable event name.
func Names() []string {
	names := make([]string, 0, len(typeNames))
	for t := Type(0); t <= Tick; t++ {
		names = append(names, typeNames[t])
	}
	return names
}

// Event is one decoded event frame: its type and the raw JSON payload.
// Decode interprets the payload into the matching typed shape.
type Event struct {
	Type    Type
	Payload json.RawMessage
}

// WorkspaceChange reports a workspace event. Current and Old are only
// populated for changes where they apply (e.g. "focus").
type WorkspaceChange struct {
	Change  string      `json:"change"`
	Current *reply.Node `json:"current"`
	Old     *reply.Node `json:"old"`
}

// OutputChange reports an output event.
type OutputChange struct {
	Change string `json:"change"`
}

// ModeChange reports a binding mode switch.
type ModeChange struct {
	Change      string `json:"change"`
	PangoMarkup bool   `json:"pango_markup"`
}

// WindowChange reports a window event with the affected container.
type WindowChange struct {
	Change    string     `json:"change"`
	Container reply.Node `json:"container"`
}

// BindingDetails describes the binding that fired.
type BindingDetails struct {
	Command        string   `json:"command"`
	EventStateMask []string `json:"event_state_mask"`
	InputCode      int      `json:"input_code"`
	Symbol         string   `json:"symbol"`
	InputType      string   `json:"input_type"`
}

// BindingChange reports a keyboard or mouse binding firing.
type BindingChange struct {
	Change  string         `json:"change"`
	Binding BindingDetails `json:"binding"`
}

// ShutdownChange reports the window manager shutting down or
// restarting. The connection closes right after this event.
type ShutdownChange struct {
	Change string `json:"change"`
}

// TickPayload reports a tick. The first tick after subscribing has
// First set and an empty payload.
type TickPayload struct {
	First   bool   `json:"first"`
	Payload string `json:"payload"`
}

// Decode unmarshals the payload into the typed shape for the event's
// type. BarConfigUpdate decodes into reply.BarConfig.
func (e Event) Decode() (any, error) {
	var out any
	switch e.Type {
	case Workspace:
		out = new(WorkspaceChange)
	case Output:
		out = new(OutputChange)
	case Mode:
		out = new(ModeChange)
	case Window:
		out = new(WindowChange)
	case BarConfigUpdate:
		out = new(reply.BarConfig)
	case Binding:
		out = new(BindingChange)
	case Shutdown:
		out = new(ShutdownChange)
	case Tick:
		out = new(TickPayload)
	default:
		return nil, fmt.Errorf("event: no decoder for %s", e.Type)
	}
	if err := json.Unmarshal(e.Payload, out); err != nil {
		return nil, fmt.Errorf("event: decode %s payload: %w", e.Type, err)
	}
	return out, nil
}

// Change extracts the "change" discriminator without a full decode.
// Events without one (tick) yield an empty string.
func (e Event) Change() string {
	var probe struct {
		Change string `json:"change"`
	}
	if err := json.Unmarshal(e.Payload, &probe); err != nil {
		return ""
	}
	return probe.Change
}
