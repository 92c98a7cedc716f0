package reply

// CommandResult reports the outcome of one command in a RUN_COMMAND
// request. i3 answers with one entry per ';'-separated command.
type CommandResult struct {
	Success    bool   `json:"success"`
	ParseError bool   `json:"parse_error,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Success is the single-field acknowledgement used by SUBSCRIBE,
// SEND_TICK, and SYNC.
type Success struct {
	Success bool `json:"success"`
}
