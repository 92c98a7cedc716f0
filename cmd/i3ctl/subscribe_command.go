package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"i3ctl/internal/event"
	"i3ctl/internal/ipc"
)

// eventLine is the JSON-lines shape streamed by subscribe.
type eventLine struct {
	Event   string          `json:"event"`
	Change  string          `json:"change,omitempty"`
	Payload json.RawMessage `json:"payload"`
}

func newSubscribeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe <event>...",
		Short: "Stream window manager events as JSON lines",
		Long: "Subscribe to the named events (" + strings.Join(event.Names(), ", ") +
			") and print each one as a JSON line until interrupted.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := validateEventNames(args)
			if err != nil {
				return err
			}

			client, err := ctx.dialClient(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.SubscribeEvents(names); err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			return drainEvents(cmd.Context(), client, ctx, func(ev event.Event) error {
				return enc.Encode(eventLine{
					Event:   ev.Type.String(),
					Change:  ev.Change(),
					Payload: ev.Payload,
				})
			})
		},
	}
}

func validateEventNames(args []string) ([]string, error) {
	names := make([]string, 0, len(args))
	for _, arg := range args {
		name := strings.ToLower(strings.TrimSpace(arg))
		if _, ok := event.ParseType(name); !ok {
			return nil, fmt.Errorf("unknown event %q (known: %s)", arg, strings.Join(event.Names(), ", "))
		}
		names = append(names, name)
	}
	return names, nil
}

// drainEvents feeds every event on the subscribed client to sink until
// the context is canceled or the connection dies. Cancellation closes
// the connection to unblock the pending read and is reported as a clean
// stop.
func drainEvents(ctx context.Context, client *ipc.Client, cctx *commandContext, sink func(event.Event) error) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = client.Close()
		case <-done:
		}
	}()

	listener := event.NewListener(client.Conn(), cctx.slogger())
	for {
		ev, err := listener.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := sink(ev); err != nil {
			return err
		}
	}
}
