package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the window manager version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				version, err := client.Version()
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, version)
				}
				stdout := cmd.OutOrStdout()
				fmt.Fprintln(stdout, version.HumanReadable)
				if version.LoadedConfigFileName != "" {
					fmt.Fprintf(stdout, "Loaded config: %s\n", version.LoadedConfigFileName)
				}
				return nil
			})
		},
	}
}
