// Package config loads, normalizes, and validates i3ctl configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/i3ctl/config.toml or
// a project-local i3ctl.toml. The Config type centralizes every knob
// the CLI needs: socket override, output rendering, logging, and the
// event log location.
//
// Always obtain settings through this package so downstream code
// receives sanitized paths and clear validation errors.
package config
