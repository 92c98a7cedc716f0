package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newTickCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tick [payload]",
		Short: "Broadcast a tick event to subscribers",
		Long: "Broadcast a tick event carrying the given payload to every " +
			"tick subscriber. Without a payload a random identifier is sent " +
			"so listeners can still correlate the tick.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := uuid.NewString()
			if len(args) == 1 {
				payload = args[0]
			}
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				ack, err := client.SendTick(payload)
				if err != nil {
					return err
				}
				if !ack.Success {
					return fmt.Errorf("tick was not acknowledged")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "tick sent: %s\n", payload)
				return nil
			})
		},
	}
}
