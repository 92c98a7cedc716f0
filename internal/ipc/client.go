package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"time"

	"i3ctl/internal/logging"
	"i3ctl/internal/reply"
)

// Client owns one connection to the window manager. A client is not
// safe for concurrent use; callers serialize exchanges or dial separate
// clients.
type Client struct {
	conn   net.Conn
	logger *slog.Logger
}

// Dial discovers the IPC socket and connects to it.
func Dial(ctx context.Context, logger *slog.Logger) (*Client, error) {
	path, err := SocketPath(ctx)
	if err != nil {
		return nil, err
	}
	return DialPath(ctx, path, logger)
}

// DialPath connects to the IPC socket at the given path.
func DialPath(ctx context.Context, path string, logger *slog.Logger) (*Client, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("ipc: connect to %s: %w", path, err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Client{
		conn:   conn,
		logger: logger.With(logging.String(logging.FieldComponent, "ipc")),
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// SetDeadline bounds every pending and future read and write on the
// connection. The engine itself never sets one; a deadline that fires
// mid-frame leaves the connection desynchronized and it must be
// discarded.
func (c *Client) SetDeadline(t time.Time) error {
	return c.conn.SetDeadline(t)
}

// Conn exposes the raw connection, used to hand a subscribed client
// over to an event listener.
func (c *Client) Conn() net.Conn {
	return c.conn
}

// roundTrip performs one exchange and unmarshals the reply into out.
// Raw payload bytes for t are sent verbatim; out may be nil to discard
// the reply.
func (c *Client) roundTrip(t MessageType, payload []byte, out any) error {
	c.logger.Debug("exchange", logging.String("msg_type", t.String()), logging.Int("payload_bytes", len(payload)))
	body, err := Exchange(c.conn, t, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Type: t, Err: err}
	}
	return nil
}

// roundTripJSON marshals v as the request payload before exchanging.
func (c *Client) roundTripJSON(t MessageType, v any, out any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return &SerializationError{Type: t, Err: err}
	}
	return c.roundTrip(t, payload, out)
}

// RunCommand executes one or more ';'-separated window manager
// commands and returns a result per command.
func (c *Client) RunCommand(command string) ([]reply.CommandResult, error) {
	var results []reply.CommandResult
	if err := c.roundTrip(RunCommand, []byte(command), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Workspaces returns every workspace.
func (c *Client) Workspaces() ([]reply.Workspace, error) {
	var workspaces []reply.Workspace
	if err := c.roundTrip(GetWorkspaces, nil, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// Outputs returns every output, active or not.
func (c *Client) Outputs() ([]reply.Output, error) {
	var outputs []reply.Output
	if err := c.roundTrip(GetOutputs, nil, &outputs); err != nil {
		return nil, err
	}
	return outputs, nil
}

// Tree returns the full layout tree.
func (c *Client) Tree() (*reply.Node, error) {
	var root reply.Node
	if err := c.roundTrip(GetTree, nil, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// Marks returns every mark currently set on a container.
func (c *Client) Marks() (reply.Marks, error) {
	var marks reply.Marks
	if err := c.roundTrip(GetMarks, nil, &marks); err != nil {
		return nil, err
	}
	return marks, nil
}

// BarIDs returns the identifiers of all configured bars.
func (c *Client) BarIDs() (reply.BarIDs, error) {
	var ids reply.BarIDs
	if err := c.roundTrip(GetBarConfig, nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// BarConfig returns the configuration of one bar by identifier.
func (c *Client) BarConfig(id string) (*reply.BarConfig, error) {
	var cfg reply.BarConfig
	if err := c.roundTrip(GetBarConfig, []byte(id), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Version returns the window manager version.
func (c *Client) Version() (*reply.Version, error) {
	var version reply.Version
	if err := c.roundTrip(GetVersion, nil, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// BindingModes returns every binding mode defined in the configuration.
func (c *Client) BindingModes() (reply.BindingModes, error) {
	var modes reply.BindingModes
	if err := c.roundTrip(GetBindingModes, nil, &modes); err != nil {
		return nil, err
	}
	return modes, nil
}

// BindingState returns the currently active binding mode.
func (c *Client) BindingState() (*reply.BindingState, error) {
	var state reply.BindingState
	if err := c.roundTrip(GetBindingState, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// WMConfig returns the last loaded window manager configuration file.
func (c *Client) WMConfig() (*reply.Config, error) {
	var cfg reply.Config
	if err := c.roundTrip(GetConfig, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SendTick broadcasts a tick event with the given payload to all
// subscribers.
func (c *Client) SendTick(payload string) (*reply.Success, error) {
	var ack reply.Success
	if err := c.roundTrip(SendTick, []byte(payload), &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// SyncRequest is the sway SYNC payload: the window manager answers once
// the X11 window identified here has been repainted.
type SyncRequest struct {
	Window uint32 `json:"window"`
	Rnd    uint32 `json:"rnd"`
}

// Sync round-trips a sync request; i3 answers {"success":false} since
// sync only has meaning under sway.
func (c *Client) Sync(req SyncRequest) (*reply.Success, error) {
	var ack reply.Success
	if err := c.roundTripJSON(Sync, req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// SubscribeEvents registers this connection for the named events
// ("workspace", "window", ...). After a successful subscribe the
// connection belongs to event delivery: drain it with an event
// listener and do not issue further exchanges on it.
func (c *Client) SubscribeEvents(names []string) error {
	var ack reply.Success
	if err := c.roundTripJSON(Subscribe, names, &ack); err != nil {
		return err
	}
	if !ack.Success {
		return fmt.Errorf("ipc: subscription rejected for %v", names)
	}
	c.logger.Debug("subscribed", logging.Any("events", names))
	return nil
}
