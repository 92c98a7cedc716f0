package ipc

import "fmt"

// MessageType identifies an IPC request on the wire. The numeric values
// are fixed by the i3 protocol and are shared by sway; new types are
// appended, never renumbered.
type MessageType uint32

const (
	RunCommand MessageType = iota
	GetWorkspaces
	Subscribe
	GetOutputs
	GetTree
	GetMarks
	GetBarConfig
	GetVersion
	GetBindingModes
	GetConfig
	SendTick
	Sync
	GetBindingState
)

// eventFlag marks the type field of pushed event frames. Reply frames
// never have it set.
const eventFlag uint32 = 1 << 31

var messageNames = map[MessageType]string{
	RunCommand:      "run_command",
	GetWorkspaces:   "get_workspaces",
	Subscribe:       "subscribe",
	GetOutputs:      "get_outputs",
	GetTree:         "get_tree",
	GetMarks:        "get_marks",
	GetBarConfig:    "get_bar_config",
	GetVersion:      "get_version",
	GetBindingModes: "get_binding_modes",
	GetConfig:       "get_config",
	SendTick:        "send_tick",
	Sync:            "sync",
	GetBindingState: "get_binding_state",
}

func (t MessageType) String() string {
	if name, ok := messageNames[t]; ok {
		return name
	}
	return fmt.Sprintf("message_type(%d)", uint32(t))
}

// IsEvent reports whether a raw type code from the wire belongs to a
// pushed event rather than a reply.
func IsEvent(code uint32) bool {
	return code&eventFlag != 0
}

// EventCode strips the event flag from a raw type code.
func EventCode(code uint32) uint32 {
	return code &^ eventFlag
}
