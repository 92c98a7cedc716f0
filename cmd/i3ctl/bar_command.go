package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newBarCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bar [id]",
		Short: "Show bar identifiers or one bar's configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				stdout := cmd.OutOrStdout()

				if len(args) == 0 {
					ids, err := client.BarIDs()
					if err != nil {
						return err
					}
					if ctx.jsonOutput() {
						return writeJSON(cmd, ids)
					}
					if len(ids) == 0 {
						fmt.Fprintln(stdout, "No bars configured")
						return nil
					}
					for _, id := range ids {
						fmt.Fprintln(stdout, id)
					}
					return nil
				}

				cfg, err := client.BarConfig(args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, cfg)
				}
				rows := [][]string{
					{"id", cfg.ID},
					{"mode", cfg.Mode},
					{"position", cfg.Position},
					{"status_command", cfg.StatusCommand},
					{"font", cfg.Font},
					{"workspace_buttons", yesNo(cfg.WorkspaceButtons)},
					{"binding_mode_indicator", yesNo(cfg.BindingModeIndicator)},
					{"verbose", yesNo(cfg.Verbose)},
				}
				fmt.Fprintln(stdout, renderTable([]string{"Setting", "Value"}, rows, nil))
				return nil
			})
		},
	}
}
