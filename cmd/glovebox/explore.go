// ABOUTME: CLI command launching the interactive neighbor browser.
// ABOUTME: Loads the vector table and hands it to the bubbletea explore model.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/2389-research/glovebox/internal/tui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse the vector space interactively",
	Long:  "Interactive TUI for querying nearest neighbors word by word.",
	RunE:  runExplore,
}

// Flags
var exploreLimit int

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().IntVar(&exploreLimit, "limit", 10, "Neighbors to show per query")
}

func runExplore(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	model := tui.NewExploreModel(table, exploreLimit)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
