package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"i3ctl/internal/ipc"
)

func newWorkspacesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "workspaces",
		Short: "List workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *ipc.Client) error {
				workspaces, err := client.Workspaces()
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, workspaces)
				}

				sort.SliceStable(workspaces, func(i, j int) bool {
					return workspaces[i].Num < workspaces[j].Num
				})

				colorize := shouldColorize(ctx)
				rows := make([][]string, 0, len(workspaces))
				for _, ws := range workspaces {
					name := ws.Name
					if ws.Focused {
						name = highlight(name, ansiGreen, colorize)
					} else if ws.Urgent {
						name = highlight(name, ansiYellow, colorize)
					}
					rows = append(rows, []string{
						strconv.Itoa(ws.Num),
						name,
						ws.Output,
						yesNo(ws.Visible),
						yesNo(ws.Focused),
						yesNo(ws.Urgent),
					})
				}
				headers := []string{"Num", "Name", "Output", "Visible", "Focused", "Urgent"}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				return nil
			})
		},
	}
}
