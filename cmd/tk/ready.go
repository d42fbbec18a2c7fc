package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tickfile/tick/internal/codec"
	"github.com/tickfile/tick/internal/graph"
	"github.com/tickfile/tick/internal/types"
)

// loadGraph takes the one-scan snapshot every bulk command works from.
func loadGraph() *graph.Graph {
	tickets, err := ts.LoadAll()
	if err != nil {
		fail(err)
	}
	return graph.New(tickets)
}

var readyCmd = &cobra.Command{
	Use:   "ready",
	Short: "Show ready tickets (open or in progress, no unmet dependencies)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ready := loadGraph().Ready()

		if jsonOutput {
			if ready == nil {
				ready = []*types.Ticket{}
			}
			outputJSON(ready)
			return
		}
		if len(ready) == 0 {
			fmt.Println("No ready tickets")
			return
		}
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("%s Ready tickets (%d):\n", cyan("▸"), len(ready))
		for _, t := range ready {
			fmt.Printf("[P%d] %s: %s (%s)\n", t.Priority, t.ID, t.Title, t.Status)
		}
	},
}

var blockedCmd = &cobra.Command{
	Use:   "blocked",
	Short: "Show blocked tickets and what blocks them",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		blocked := loadGraph().Blocked()

		if jsonOutput {
			if blocked == nil {
				blocked = []*types.BlockedTicket{}
			}
			outputJSON(blocked)
			return
		}
		if len(blocked) == 0 {
			fmt.Println("No blocked tickets")
			return
		}
		red := color.New(color.FgRed).SprintFunc()
		fmt.Printf("%s Blocked tickets (%d):\n", red("✗"), len(blocked))
		for _, t := range blocked {
			fmt.Printf("[P%d] %s: %s\n", t.Priority, t.ID, t.Title)
			fmt.Printf("  blocked by %d: %s\n", t.BlockedByCount, strings.Join(t.BlockedBy, ", "))
		}
	},
}

var closedCmd = &cobra.Command{
	Use:   "closed",
	Short: "Show closed tickets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		closed := loadGraph().Closed()

		if jsonOutput {
			if closed == nil {
				closed = []*types.Ticket{}
			}
			outputJSON(closed)
			return
		}
		if len(closed) == 0 {
			fmt.Println("No closed tickets")
			return
		}
		fmt.Printf("Closed tickets (%d):\n", len(closed))
		for _, t := range closed {
			when := ""
			if t.ClosedAt != nil {
				when = " (closed " + codec.FormatTime(*t.ClosedAt) + ")"
			}
			fmt.Printf("[P%d] %s: %s%s\n", t.Priority, t.ID, t.Title, when)
		}
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ticket counts by state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stats := loadGraph().Statistics()

		if jsonOutput {
			outputJSON(stats)
			return
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("Total:       %d\n", stats.TotalTickets)
		fmt.Printf("Open:        %d\n", stats.OpenTickets)
		fmt.Printf("In Progress: %d\n", stats.InProgressTickets)
		fmt.Printf("Closed:      %d\n", stats.ClosedTickets)
		fmt.Printf("Blocked:     %d\n", stats.BlockedTickets)
		fmt.Printf("Ready:       %s\n", green(fmt.Sprintf("%d", stats.ReadyTickets)))
	},
}

func init() {
	rootCmd.AddCommand(readyCmd)
	rootCmd.AddCommand(blockedCmd)
	rootCmd.AddCommand(closedCmd)
	rootCmd.AddCommand(statsCmd)
}
