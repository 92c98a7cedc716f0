package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newOutputsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "outputs",
		Short: "List outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				outputs, err := client.Outputs()
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, outputs)
				}

				rows := make([][]string, 0, len(outputs))
				for _, output := range outputs {
					rows = append(rows, []string{
						output.Name,
						yesNo(output.Active),
						yesNo(output.Primary),
						output.CurrentWorkspace,
						fmt.Sprintf("%dx%d+%d+%d", output.Rect.Width, output.Rect.Height, output.Rect.X, output.Rect.Y),
					})
				}
				headers := []string{"Name", "Active", "Primary", "Workspace", "Geometry"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				return nil
			})
		},
	}
}
