package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tickfile/tick/internal/types"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Set a ticket's status (open|in_progress|closed)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id := resolve(args[0])
		status := types.Status(args[1])
		if err := ts.SetStatus(id, status); err != nil {
			fail(err)
		}
		printTicketResult(id, fmt.Sprintf("Set %s to %s", id, status))
	},
}

var closeCmd = &cobra.Command{
	Use:   "close <id>...",
	Short: "Close one or more tickets",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		closed := []*types.Ticket{}
		green := color.New(color.FgGreen).SprintFunc()
		for _, ref := range args {
			id := resolve(ref)
			if err := ts.Close(id); err != nil {
				fail(err)
			}
			if jsonOutput {
				if t, err := ts.Get(id); err == nil {
					closed = append(closed, t)
				}
			} else {
				fmt.Printf("%s Closed %s\n", green("✓"), id)
			}
		}
		if jsonOutput {
			outputJSON(closed)
		}
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <id>...",
	Short: "Reopen one or more closed tickets",
	Long: `Reopen closed tickets by setting status to 'open' and clearing the
closed_at timestamp. A later close records a fresh timestamp.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reopened := []*types.Ticket{}
		blue := color.New(color.FgBlue).SprintFunc()
		for _, ref := range args {
			id := resolve(ref)
			if err := ts.Reopen(id); err != nil {
				fail(err)
			}
			if jsonOutput {
				if t, err := ts.Get(id); err == nil {
					reopened = append(reopened, t)
				}
			} else {
				fmt.Printf("%s Reopened %s\n", blue("↻"), id)
			}
		}
		if jsonOutput {
			outputJSON(reopened)
		}
	},
}

// printTicketResult reports a single-ticket mutation in the configured
// output format.
func printTicketResult(id, message string) {
	if jsonOutput {
		t, err := ts.Get(id)
		if err != nil {
			fail(err)
		}
		outputJSON(t)
		return
	}
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s %s\n", green("✓"), message)
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(reopenCmd)
}
