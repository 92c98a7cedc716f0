package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var window uint32
	var rnd uint32
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Round-trip a sync request (sway only)",
		Long: "Send a SYNC request and wait for the acknowledgement. Sway " +
			"answers success once the identified X11 window has been " +
			"repainted; i3 always answers failure.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rnd == 0 {
				rnd = uuid.New().ID()
			}
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				ack, err := client.Sync(ipc.SyncRequest{Window: window, Rnd: rnd})
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, ack)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "sync acknowledged: %s\n", yesNo(ack.Success))
				return nil
			})
		},
	}
	cmd.Flags().Uint32Var(&window, "window", 0, "X11 window id to sync against")
	cmd.Flags().Uint32Var(&rnd, "rnd", 0, "Correlation value (random when omitted)")
	return cmd
}
