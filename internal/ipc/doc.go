// Package ipc implements the i3/sway IPC wire protocol and ships the
// client used by the CLI.
//
// It owns the frame codec (magic constant, little-endian length and
// message-type header), the request writer and response reader built on
// top of it, and the exchange primitive that sequences one request and
// its reply on a single connection. Socket discovery follows the
// upstream convention: I3SOCK, then SWAYSOCK, then asking the running
// window manager for its socket path.
//
// A connection carries one exchange at a time. The package takes no
// locks and sets no deadlines; callers that need bounded latency wrap
// calls with SetDeadline, and concurrent callers use separate
// connections. A connection that failed mid-frame is desynchronized and
// must be discarded.
package ipc
