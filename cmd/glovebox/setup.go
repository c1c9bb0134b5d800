// ABOUTME: Cobra command for interactive vector file setup.
// ABOUTME: Launches a bubbletea TUI wizard to collect and validate vector settings.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/2389-research/glovebox/internal/config"
	"github.com/2389-research/glovebox/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure your vector file",
	Long:  "Interactive wizard to point glovebox at a pre-trained word vector file.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := tui.NewSetupModel(
		cfg.Vectors.Path,
		cfg.Vectors.Dimension,
		cfg.Vocab.Top,
	)

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Println("Setup cancelled.")
		return nil
	}

	path, dimension, topN := final.Result()
	cfg.Vectors.Path = path
	cfg.Vectors.Dimension = dimension
	cfg.Vocab.Top = topN

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		fmt.Println("Config saved successfully.")
	} else {
		fmt.Printf("Config saved to %s\n", configPath)
	}
	return nil
}
