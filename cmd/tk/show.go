package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tickfile/tick/internal/codec"
	"github.com/tickfile/tick/internal/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a ticket's metadata and body",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		t, err := ts.ResolveTicket(args[0])
		if err != nil {
			fail(err)
		}

		if jsonOutput {
			outputJSON(t)
			return
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s: %s\n", bold(t.ID), t.Title)
		fmt.Printf("  Status:   %s\n", t.Status)
		fmt.Printf("  Type:     %s\n", t.Type)
		fmt.Printf("  Priority: P%d\n", t.Priority)
		if t.Assignee != "" {
			fmt.Printf("  Assignee: %s\n", t.Assignee)
		}
		fmt.Printf("  Created:  %s\n", codec.FormatTime(t.Created))
		if t.ClosedAt != nil {
			fmt.Printf("  Closed:   %s\n", codec.FormatTime(*t.ClosedAt))
		}
		if len(t.Deps) > 0 {
			fmt.Printf("  Deps:     %s\n", strings.Join(t.Deps, ", "))
		}
		if len(t.Links) > 0 {
			fmt.Printf("  Links:    %s\n", strings.Join(t.Links, ", "))
		}
		if t.Parent != "" {
			fmt.Printf("  Parent:   %s\n", t.Parent)
		}
		if body := strings.TrimSpace(t.Body); body != "" {
			fmt.Printf("\n%s\n", body)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tickets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		statusFilter, _ := cmd.Flags().GetString("status")

		g := loadGraph()
		var out []*types.Ticket
		for _, t := range g.Tickets() {
			if statusFilter != "" && string(t.Status) != statusFilter {
				continue
			}
			out = append(out, t)
		}

		if jsonOutput {
			if out == nil {
				out = []*types.Ticket{}
			}
			outputJSON(out)
			return
		}
		if len(out) == 0 {
			fmt.Println("No tickets")
			return
		}
		for _, t := range out {
			fmt.Printf("[P%d] %-14s %-12s %s\n", t.Priority, t.ID, t.Status, t.Title)
		}
	},
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "Filter by status")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
}
