package reply_test

import (
	"encoding/json"
	"testing"

	"i3ctl/internal/reply"
)

func sampleTree() *reply.Node {
	return &reply.Node{
		ID: 1, Type: "root",
		Nodes: []*reply.Node{
			{ID: 2, Type: "output", Name: "eDP-1", Nodes: []*reply.Node{
				{ID: 3, Type: "workspace", Name: "1", Nodes: []*reply.Node{
					{ID: 4, Type: "con", Name: "editor"},
					{ID: 5, Type: "con", Name: "term", Focused: true},
				}},
			}},
		},
		FloatingNodes: []*reply.Node{
			{ID: 6, Type: "floating_con", Name: "dialog"},
		},
	}
}

func TestWalkVisitsEveryNode(t *testing.T) {
	var ids []int64
	sampleTree().Walk(func(n *reply.Node) bool {
		ids = append(ids, n.ID)
		return true
	})
	want := []int64{1, 2, 3, 4, 5, 6}
	if len(ids) != len(want) {
		t.Fatalf("visited %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("visited %v, want %v", ids, want)
		}
	}
}

func TestWalkStopsEarly(t *testing.T) {
	var visited int
	sampleTree().Walk(func(n *reply.Node) bool {
		visited++
		return n.ID != 3
	})
	if visited != 3 {
		t.Fatalf("visited %d nodes after stop, want 3", visited)
	}
}

func TestFindFocused(t *testing.T) {
	focused := sampleTree().FindFocused()
	if focused == nil || focused.Name != "term" {
		t.Fatalf("FindFocused = %+v", focused)
	}

	unfocused := &reply.Node{ID: 1}
	if got := unfocused.FindFocused(); got != nil {
		t.Fatalf("FindFocused on unfocused tree = %+v", got)
	}
}

func TestNodeDecodesOptionalFields(t *testing.T) {
	raw := `{
		"id": 9, "name": "firefox", "type": "con",
		"percent": 0.5, "window": 41943051,
		"window_properties": {"class": "firefox", "instance": "Navigator"}
	}`
	var node reply.Node
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if node.Percent == nil || *node.Percent != 0.5 {
		t.Fatalf("percent = %v", node.Percent)
	}
	if node.Window == nil || *node.Window != 41943051 {
		t.Fatalf("window = %v", node.Window)
	}
	if node.WindowProperties == nil || node.WindowProperties.Class != "firefox" {
		t.Fatalf("window_properties = %+v", node.WindowProperties)
	}
}
