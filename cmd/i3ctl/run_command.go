package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command>...",
		Short: "Run a window manager command",
		Long: "Run one or more window manager commands. Arguments are joined " +
			"with spaces and sent as a single RUN_COMMAND request; separate " +
			"multiple commands with ';' as usual.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				results, err := client.RunCommand(command)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, results)
				}

				stdout := cmd.OutOrStdout()
				failed := 0
				for i, result := range results {
					if result.Success {
						fmt.Fprintf(stdout, "command %d: ok\n", i+1)
						continue
					}
					failed++
					detail := result.Error
					if detail == "" {
						detail = "failed"
					}
					if result.ParseError {
						detail = "parse error: " + detail
					}
					fmt.Fprintf(stdout, "command %d: %s\n", i+1, detail)
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d commands failed", failed, len(results))
				}
				return nil
			})
		},
	}
}
