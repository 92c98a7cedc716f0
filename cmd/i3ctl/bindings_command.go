package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newBindingModesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "binding-modes",
		Short: "List configured binding modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				modes, err := client.BindingModes()
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, modes)
				}
				for _, mode := range modes {
					fmt.Fprintln(cmd.OutOrStdout(), mode)
				}
				return nil
			})
		},
	}
}

func newBindingStateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "binding-state",
		Short: "Show the active binding mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				state, err := client.BindingState()
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, state)
				}
				fmt.Fprintln(cmd.OutOrStdout(), state.Name)
				return nil
			})
		},
	}
}
