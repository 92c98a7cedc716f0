package config

const (
	defaultOutputFormat = "table"
	defaultOutputColor  = "auto"
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultEventLogPath = "~/.local/share/i3ctl/events.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		EventLog: EventLog{
			Path: defaultEventLogPath,
		},
	}
}
