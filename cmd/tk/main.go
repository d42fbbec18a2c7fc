// Command tk is a plain-text ticket tracker: one file per ticket, with
// first-class blocking dependencies, ready/blocked queries, and pruning
// of aged-out closed tickets.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tickfile/tick/internal/config"
	"github.com/tickfile/tick/internal/store"
	"github.com/tickfile/tick/internal/types"
)

var (
	ticketDir  string
	idPrefix   string
	actor      string
	jsonOutput bool

	ts *store.FileStorage
)

var rootCmd = &cobra.Command{
	Use:   "tk",
	Short: "tk - Plain-text ticket tracker",
	Long: `A lightweight ticket tracker storing one plain-text file per ticket,
with first-class blocking dependencies.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Priority: flags > env/config file > defaults
		if !cmd.Flags().Changed("json") {
			jsonOutput = config.GetBool("json")
		}
		if !cmd.Flags().Changed("dir") && ticketDir == "" {
			ticketDir = config.GetString("dir")
		}
		if !cmd.Flags().Changed("actor") && actor == "" {
			actor = config.GetString("actor")
		}
		if idPrefix == "" {
			idPrefix = config.GetString("prefix")
		}

		// Commands that work without an existing ticket directory
		switch cmd.Name() {
		case "init", "help", "version", "completion":
			return
		}

		if ticketDir == "" {
			ticketDir = config.FindTicketDir()
		}
		if ticketDir == "" {
			fail(fmt.Errorf("no %s directory found (run 'tk init' first)", config.TicketDirName))
		}

		var err error
		ts, err = store.New(ticketDir, idPrefix)
		if err != nil {
			fail(err)
		}
	},
}

// fail prints an error to stderr and exits 1. Resolution and validation
// failures abort the enclosing command immediately; "nothing matched"
// outcomes are not failures and never come through here.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// resolve turns a ticket reference into a full ID or aborts the command.
func resolve(ref string) string {
	id, err := ts.Resolve(ref)
	if err != nil {
		fail(err)
	}
	return id
}

func outputJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fail(fmt.Errorf("%w: encode JSON: %v", types.ErrIO, err))
	}
}

func main() {
	if err := config.Initialize(); err != nil {
		fail(fmt.Errorf("load configuration: %w", err))
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ticketDir, "dir", "", "Ticket directory (default: nearest .tickets)")
	rootCmd.PersistentFlags().StringVar(&actor, "actor", "", "Acting user (for assignee defaults)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON format")
}
