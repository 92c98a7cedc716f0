// Package testsupport hosts shared helpers for package tests: a fake
// window manager speaking the real wire protocol over a Unix socket,
// and config builders seeded with per-test temp paths.
package testsupport

import (
	"encoding/json"
	"net"
	"path/filepath"
	"sync"
	"testing"

	"i3ctl/internal/ipc"
)

// Frame is one wire frame the fake window manager emits. Code is the
// raw type field, so event frames carry the event bit.
type Frame struct {
	Code    uint32
	Payload []byte
}

// Handler maps one received request to the frames written back. The
// first frame is usually the reply; additional frames model pushed
// events arriving after it.
type Handler func(code uint32, payload []byte) []Frame

// FakeWM is a scripted window manager serving the IPC protocol on a
// Unix socket under the test's temp directory.
type FakeWM struct {
	t        testing.TB
	path     string
	listener net.Listener
	handler  Handler
	wg       sync.WaitGroup

	mu       sync.Mutex
	requests []uint32
}

// StartFakeWM listens on a fresh socket and serves connections with the
// given handler until the test ends.
func StartFakeWM(t testing.TB, handler Handler) *FakeWM {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wm.sock")
	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen on %s: %v", path, err)
	}

	wm := &FakeWM{t: t, path: path, listener: listener, handler: handler}
	wm.wg.Add(1)
	go wm.serve()
	t.Cleanup(wm.Close)
	return wm
}

// SocketPath returns the socket the fake listens on.
func (wm *FakeWM) SocketPath() string {
	return wm.path
}

// Requests returns the type codes received so far, in order.
func (wm *FakeWM) Requests() []uint32 {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	return append([]uint32(nil), wm.requests...)
}

// Close stops accepting and waits for in-flight connections.
func (wm *FakeWM) Close() {
	_ = wm.listener.Close()
	wm.wg.Wait()
}

func (wm *FakeWM) serve() {
	defer wm.wg.Done()
	for {
		conn, err := wm.listener.Accept()
		if err != nil {
			return
		}
		wm.wg.Add(1)
		go func(c net.Conn) {
			defer wm.wg.Done()
			defer c.Close()
			wm.serveConn(c)
		}(conn)
	}
}

func (wm *FakeWM) serveConn(conn net.Conn) {
	for {
		code, payload, err := ipc.ReadMessage(conn)
		if err != nil {
			// Client closed or test shut the socket down.
			return
		}
		wm.mu.Lock()
		wm.requests = append(wm.requests, code)
		wm.mu.Unlock()

		for _, frame := range wm.handler(code, payload) {
			if err := ipc.WriteMessage(conn, ipc.MessageType(frame.Code), frame.Payload); err != nil {
				return
			}
		}
	}
}

// ReplyJSON builds a single reply frame echoing the request code with a
// JSON-marshaled payload.
func ReplyJSON(t testing.TB, code uint32, v any) []Frame {
	t.Helper()
	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}
	return []Frame{{Code: code, Payload: payload}}
}

// EventFrame builds a pushed event frame for the given event code.
func EventFrame(eventCode uint32, payload []byte) Frame {
	return Frame{Code: eventCode | 1<<31, Payload: payload}
}
