package reply

// Node is one container of the GET_TREE reply. The tree is rooted at a
// single node whose descendants mirror the window manager's layout.
type Node struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Type               string            `json:"type"`
	Border             string            `json:"border"`
	CurrentBorderWidth int               `json:"current_border_width"`
	Layout             string            `json:"layout"`
	Orientation        string            `json:"orientation"`
	Percent            *float64          `json:"percent"`
	Rect               Rect              `json:"rect"`
	WindowRect         Rect              `json:"window_rect"`
	DecoRect           Rect              `json:"deco_rect"`
	Geometry           Rect              `json:"geometry"`
	Window             *int64            `json:"window"`
	WindowProperties   *WindowProperties `json:"window_properties,omitempty"`
	Urgent             bool              `json:"urgent"`
	Focused            bool              `json:"focused"`
	Focus              []int64           `json:"focus"`
	Sticky             bool              `json:"sticky"`
	Marks              []string          `json:"marks,omitempty"`
	FullscreenMode     int               `json:"fullscreen_mode"`
	Nodes              []*Node           `json:"nodes"`
	FloatingNodes      []*Node           `json:"floating_nodes"`
}

// WindowProperties carries the X11 properties i3 exposes for managed
// windows. Absent under sway for Wayland-native clients.
type WindowProperties struct {
	Class        string `json:"class"`
	Instance     string `json:"instance"`
	Title        string `json:"title"`
	WindowRole   string `json:"window_role"`
	TransientFor *int64 `json:"transient_for"`
}

// Walk visits n and every descendant in depth-first order, floating
// containers included. Traversal stops when visit returns false.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, child := range n.Nodes {
		if !child.Walk(visit) {
			return false
		}
	}
	for _, child := range n.FloatingNodes {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// FindFocused returns the focused descendant, or nil when the subtree
// holds no focus.
func (n *Node) FindFocused() *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.Focused {
			found = node
			return false
		}
		return true
	})
	return found
}
