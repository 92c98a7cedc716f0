package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newMarksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "marks",
		Short: "List container marks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				marks, err := client.Marks()
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, marks)
				}
				stdout := cmd.OutOrStdout()
				if len(marks) == 0 {
					fmt.Fprintln(stdout, "No marks set")
					return nil
				}
				for _, mark := range marks {
					fmt.Fprintln(stdout, mark)
				}
				return nil
			})
		},
	}
}
