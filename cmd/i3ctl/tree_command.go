package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newTreeCommand(ctx *commandContext) *cobra.Command {
	var focusedOnly bool
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Dump the layout tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				root, err := client.Tree()
				if err != nil {
					return err
				}
				if focusedOnly {
					focused := root.FindFocused()
					if focused == nil {
						return fmt.Errorf("no focused container in the tree")
					}
					return writeJSON(cmd, focused)
				}
				return writeJSON(cmd, root)
			})
		},
	}
	cmd.Flags().BoolVar(&focusedOnly, "focused", false, "Print only the focused container")
	return cmd
}
