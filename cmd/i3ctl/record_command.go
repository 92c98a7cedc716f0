package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"i3ctl/internal/config"
	"i3ctl/internal/event"
	"i3ctl/internal/eventlog"
)

func newRecordCommand(ctx *commandContext) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "record <event>...",
		Short: "Subscribe and persist events to the event log",
		Long: "Subscribe to the named events and append each one to the " +
			"SQLite event log under a fresh session, until interrupted. " +
			"Inspect recordings with `i3ctl history`.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := validateEventNames(args)
			if err != nil {
				return err
			}

			store, err := openEventLog(ctx, dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			recorder, err := eventlog.NewRecorder(store, ctx.slogger())
			if err != nil {
				return err
			}
			defer recorder.Release()

			client, err := ctx.dialClient(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.SubscribeEvents(names); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "recording session %s to %s\n", recorder.SessionID(), store.Path())
			listener := event.NewListener(client.Conn(), ctx.slogger())

			done := make(chan struct{})
			defer close(done)
			go func() {
				select {
				case <-cmd.Context().Done():
					_ = client.Close()
				case <-done:
				}
			}()

			return recorder.Run(cmd.Context(), listener, names)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "Event log database path (defaults to the configured one)")
	return cmd
}

func openEventLog(ctx *commandContext, override string) (*eventlog.Store, error) {
	path := override
	if path == "" {
		if cfg := ctx.configValue(); cfg != nil {
			path = cfg.EventLog.Path
		}
	}
	if path == "" {
		return nil, fmt.Errorf("no event log path configured")
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return eventlog.Open(expanded)
}
