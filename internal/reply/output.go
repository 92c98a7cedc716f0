package reply

// Output is one entry of the GET_OUTPUTS reply. Inactive outputs have
// no current workspace.
type Output struct {
	Name             string `json:"name"`
	Active           bool   `json:"active"`
	Primary          bool   `json:"primary"`
	CurrentWorkspace string `json:"current_workspace"`
	Rect             Rect   `json:"rect"`
}
