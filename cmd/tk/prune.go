package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tickfile/tick/internal/codec"
	"github.com/tickfile/tick/internal/prune"
	"github.com/tickfile/tick/internal/types"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old closed tickets that nothing active depends on",
	Long: `Delete closed tickets whose close is older than the age threshold.

A closed ticket is kept if any open or in-progress ticket still reaches
it through the dependency chain, however many hops away. Tickets with a
missing or unreadable closed_at are never pruned. With --dry-run the
eligible set is reported without deleting anything.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		days, _ := cmd.Flags().GetInt("days")
		all, _ := cmd.Flags().GetBool("all")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		res, err := prune.Run(ts, loadGraph(), prune.Options{
			Days:   days,
			All:    all,
			DryRun: dryRun,
		})
		if err != nil {
			fail(err)
		}

		for _, e := range res.Failed {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", e)
		}

		if jsonOutput {
			pruned := res.Pruned
			if pruned == nil {
				pruned = []*types.Ticket{}
			}
			outputJSON(map[string]interface{}{
				"pruned":  pruned,
				"count":   len(pruned),
				"dry_run": dryRun,
			})
			return
		}

		// An empty eligible set produces no output at all.
		if len(res.Pruned) == 0 {
			return
		}
		for _, t := range res.Pruned {
			when := t.RawClosedAt
			if t.ClosedAt != nil {
				when = codec.FormatTime(*t.ClosedAt)
			}
			fmt.Printf("%s: %s (closed %s)\n", t.ID, t.Title, when)
		}
		if dryRun {
			fmt.Printf("Would prune %d ticket(s)\n", len(res.Pruned))
		} else {
			fmt.Printf("Pruned %d ticket(s)\n", len(res.Pruned))
		}
	},
}

func init() {
	pruneCmd.Flags().Int("days", 30, "Minimum age of the close, in whole days (inclusive)")
	pruneCmd.Flags().Bool("all", false, "Ignore the age threshold")
	pruneCmd.Flags().Bool("dry-run", false, "Report what would be pruned without deleting")
	rootCmd.AddCommand(pruneCmd)
}
