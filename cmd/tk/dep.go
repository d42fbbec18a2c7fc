package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var depCmd = &cobra.Command{
	Use:   "dep <id> <dep-id>",
	Short: "Add a blocking dependency: <id> cannot be ready until <dep-id> is closed",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id := resolve(args[0])
		depID := resolve(args[1])
		if err := ts.AddDep(id, depID); err != nil {
			fail(err)
		}
		printTicketResult(id, fmt.Sprintf("%s now depends on %s", id, depID))
	},
}

var undepCmd = &cobra.Command{
	Use:   "undep <id> <dep-id>",
	Short: "Remove a blocking dependency",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id := resolve(args[0])
		depID := resolve(args[1])
		if err := ts.RemoveDep(id, depID); err != nil {
			fail(err)
		}
		printTicketResult(id, fmt.Sprintf("%s no longer depends on %s", id, depID))
	},
}

var linkCmd = &cobra.Command{
	Use:   "link <id> <other-id>",
	Short: "Add a symmetric, non-blocking link between two tickets",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id := resolve(args[0])
		otherID := resolve(args[1])
		if err := ts.AddLink(id, otherID); err != nil {
			fail(err)
		}
		printTicketResult(id, fmt.Sprintf("Linked %s and %s", id, otherID))
	},
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink <id> <other-id>",
	Short: "Remove a link between two tickets",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id := resolve(args[0])
		otherID := resolve(args[1])
		if err := ts.RemoveLink(id, otherID); err != nil {
			fail(err)
		}
		printTicketResult(id, fmt.Sprintf("Unlinked %s and %s", id, otherID))
	},
}

var parentCmd = &cobra.Command{
	Use:   "parent <id> [parent-id]",
	Short: "Set or clear a ticket's advisory parent",
	Long: `Set a ticket's parent reference, or clear it when no parent is given.
Parents are organizational only; they never block readiness or pruning.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		id := resolve(args[0])
		if len(args) == 1 {
			if err := ts.ClearParent(id); err != nil {
				fail(err)
			}
			printTicketResult(id, fmt.Sprintf("Cleared parent of %s", id))
			return
		}
		parentID := resolve(args[1])
		if err := ts.SetParent(id, parentID); err != nil {
			fail(err)
		}
		printTicketResult(id, fmt.Sprintf("Set parent of %s to %s", id, parentID))
	},
}

func init() {
	rootCmd.AddCommand(depCmd)
	rootCmd.AddCommand(undepCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
	rootCmd.AddCommand(parentCmd)
}
