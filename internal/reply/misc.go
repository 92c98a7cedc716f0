package reply

// Marks is the GET_MARKS reply: every mark currently set.
type Marks []string

// BindingModes is the GET_BINDING_MODES reply: every mode defined in
// the window manager's configuration.
type BindingModes []string

// BindingState is the GET_BINDING_STATE reply: the currently active
// binding mode.
type BindingState struct {
	Name string `json:"name"`
}

// Config is the GET_CONFIG reply: the last loaded configuration file,
// verbatim.
type Config struct {
	Config string `json:"config"`
}
