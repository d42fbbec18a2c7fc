package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tickfile/tick/internal/store"
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new ticket",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := ""
		if len(args) > 0 {
			title = args[0]
		}
		ticketType, _ := cmd.Flags().GetString("type")
		priority, _ := cmd.Flags().GetInt("priority")
		assignee, _ := cmd.Flags().GetString("assignee")
		deps, _ := cmd.Flags().GetStringSlice("deps")
		parent, _ := cmd.Flags().GetString("parent")
		body, _ := cmd.Flags().GetString("body")
		explicitID, _ := cmd.Flags().GetString("id")

		if assignee == "" {
			assignee = actor
		}

		// Dep and parent references may be partial; resolve them up
		// front so the stored lists carry full IDs.
		resolvedDeps := make([]string, 0, len(deps))
		for _, d := range deps {
			resolvedDeps = append(resolvedDeps, resolve(d))
		}
		if parent != "" {
			parent = resolve(parent)
		}

		ticket, err := ts.Create(title, store.CreateOptions{
			ID:       explicitID,
			Type:     ticketType,
			Priority: priority,
			Assignee: assignee,
			Deps:     resolvedDeps,
			Parent:   parent,
			Body:     body,
		})
		if err != nil {
			fail(err)
		}

		if jsonOutput {
			outputJSON(ticket)
			return
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Created ticket: %s\n", green("✓"), ticket.ID)
		fmt.Printf("  Title: %s\n", ticket.Title)
		fmt.Printf("  Priority: P%d\n", ticket.Priority)
		fmt.Printf("  Status: %s\n", ticket.Status)
	},
}

func init() {
	createCmd.Flags().StringP("type", "t", "task", "Ticket type (bug|feature|task|chore)")
	createCmd.Flags().IntP("priority", "p", 2, "Priority (0-4, 0=highest)")
	createCmd.Flags().StringP("assignee", "a", "", "Assignee")
	createCmd.Flags().StringSlice("deps", []string{}, "Blocking dependencies (comma-separated ticket IDs)")
	createCmd.Flags().String("parent", "", "Advisory parent ticket")
	createCmd.Flags().StringP("body", "b", "", "Free-form body text")
	createCmd.Flags().String("id", "", "Explicit ticket ID (e.g. for imports)")
	rootCmd.AddCommand(createCmd)
}
