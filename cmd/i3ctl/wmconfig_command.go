package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newWMConfigCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "wm-config",
		Short: "Print the window manager's loaded configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				cfg, err := client.WMConfig()
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, cfg)
				}
				fmt.Fprint(cmd.OutOrStdout(), cfg.Config)
				return nil
			})
		},
	}
}
