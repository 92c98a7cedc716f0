// Package reply declares the JSON shapes the window manager answers
// with. The protocol engine treats payloads as opaque bytes; these
// types exist purely as deserialization targets for the client and the
// CLI. Field sets follow the published i3 IPC reply documentation and
// are shared by sway.
package reply
