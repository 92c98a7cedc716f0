package reply

// BarIDs is the GET_BAR_CONFIG reply when no bar is named: the
// configured bar identifiers.
type BarIDs []string

// BarConfig is the GET_BAR_CONFIG reply for one named bar.
type BarConfig struct {
	ID                   string            `json:"id"`
	Mode                 string            `json:"mode"`
	Position             string            `json:"position"`
	StatusCommand        string            `json:"status_command"`
	Font                 string            `json:"font"`
	WorkspaceButtons     bool              `json:"workspace_buttons"`
	BindingModeIndicator bool              `json:"binding_mode_indicator"`
	Verbose              bool              `json:"verbose"`
	Colors               map[string]string `json:"colors"`
}
