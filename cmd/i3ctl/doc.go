// Package main hosts the i3ctl CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into IPC
// exchanges with the running i3 or sway instance: one subcommand per
// message type, plus event subscription, recording, and history
// inspection. It centralizes configuration resolution, socket
// discovery, and structured logging setup so subcommands can focus on
// user experience instead of wiring.
//
// Keep this package lean: protocol behavior belongs in internal/ipc and
// friends; commands here render results and map flags.
package main
