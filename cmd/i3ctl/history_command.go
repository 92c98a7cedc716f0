package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"i3ctl/internal/eventlog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		dbPath    string
		sessionID string
		eventName string
		limit     int
		sessions  bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openEventLog(ctx, dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if sessions {
				return renderSessions(cmd, ctx, store)
			}

			entries, err := store.List(cmd.Context(), eventlog.Filter{
				SessionID: strings.TrimSpace(sessionID),
				Event:     strings.TrimSpace(eventName),
				Limit:     limit,
			})
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, entries)
			}

			stdout := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(stdout, "No recorded events")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(entry.ID, 10),
					entry.RecordedAt.Local().Format(time.TimeOnly),
					shortSession(entry.SessionID),
					entry.Event,
					entry.Change,
				})
			}
			headers := []string{"ID", "Time", "Session", "Event", "Change"}
			aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}
			fmt.Fprintln(stdout, renderTable(headers, rows, aligns))
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "Event log database path (defaults to the configured one)")
	cmd.Flags().StringVar(&sessionID, "session", "", "Only events from this recording session")
	cmd.Flags().StringVar(&eventName, "event", "", "Only events of this type (e.g. window)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of events to show")
	cmd.Flags().BoolVar(&sessions, "sessions", false, "List recording sessions instead of events")
	return cmd
}

func renderSessions(cmd *cobra.Command, ctx *commandContext, store *eventlog.Store) error {
	sessions, err := store.Sessions(cmd.Context())
	if err != nil {
		return err
	}
	if ctx.jsonOutput() {
		return writeJSON(cmd, sessions)
	}
	stdout := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(stdout, "No recording sessions")
		return nil
	}
	rows := make([][]string, 0, len(sessions))
	for _, session := range sessions {
		rows = append(rows, []string{
			session.ID,
			session.StartedAt.Local().Format(time.DateTime),
			strings.Join(session.Events, ", "),
			strconv.Itoa(session.Count),
		})
	}
	headers := []string{"Session", "Started", "Events", "Count"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}
	fmt.Fprintln(stdout, renderTable(headers, rows, aligns))
	return nil
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
