package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tickfile/tick/internal/config"
	"github.com/tickfile/tick/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a ticket directory in the current project",
	Run: func(cmd *cobra.Command, args []string) {
		prefix, _ := cmd.Flags().GetString("prefix")

		dir := ticketDir
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				fail(err)
			}
			dir = filepath.Join(cwd, config.TicketDirName)
		}

		s, err := store.Init(dir, prefix)
		if err != nil {
			fail(err)
		}

		// Persist the prefix so every later invocation, from any
		// subdirectory, generates matching IDs.
		configPath := filepath.Join(s.Dir(), "config.yaml")
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			contents := fmt.Sprintf("prefix: %s\n", s.Prefix())
			if err := os.WriteFile(configPath, []byte(contents), 0644); err != nil {
				fail(err)
			}
		}

		if jsonOutput {
			outputJSON(map[string]string{"dir": s.Dir(), "prefix": s.Prefix()})
			return
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Initialized ticket directory: %s\n", green("✓"), s.Dir())
		fmt.Printf("  ID prefix: %s-\n", s.Prefix())
	},
}

func init() {
	initCmd.Flags().String("prefix", "", "ID prefix for new tickets (default: derived from directory name)")
	rootCmd.AddCommand(initCmd)
}
