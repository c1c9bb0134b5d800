// ABOUTME: Root Cobra command and global flags for the glovebox CLI.
// ABOUTME: Sets up lifecycle hooks for config loading and artifact store initialization.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/2389-research/glovebox/internal/config"
	"github.com/2389-research/glovebox/internal/embeddings"
	"github.com/2389-research/glovebox/internal/storage"
	"github.com/2389-research/glovebox/internal/vocab"
)

var globalConfig *config.Config
var globalStore storage.MatrixStore

var (
	vectorsFlag string
	vocabFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "glovebox",
	Short: "Embedding matrices from vocabularies and pre-trained word vectors",
	Long: `
 ██████╗ ██╗      ██████╗ ██╗   ██╗███████╗██████╗  ██████╗ ██╗  ██╗
██╔════╝ ██║     ██╔═══██╗██║   ██║██╔════╝██╔══██╗██╔═══██╗╚██╗██╔╝
██║  ███╗██║     ██║   ██║██║   ██║█████╗  ██████╔╝██║   ██║ ╚███╔╝
██║   ██║██║     ██║   ██║╚██╗ ██╔╝██╔══╝  ██╔══██╗██║   ██║ ██╔██╗
╚██████╔╝███████╗╚██████╔╝ ╚████╔╝ ███████╗██████╔╝╚██████╔╝██╔╝ ██╗
 ╚═════╝ ╚══════╝ ╚═════╝   ╚═══╝  ╚══════╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝

   WORD VECTORS ON TAP

Build dense embedding matrices from a vocabulary and a pre-trained
word vector file. Inspect, search, and serve them to agents.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "setup" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg

		dataDir, err := cfg.GetDataDir()
		if err != nil {
			return fmt.Errorf("failed to resolve data dir: %w", err)
		}
		store, err := storage.NewMatrixFileStore(dataDir)
		if err != nil {
			return fmt.Errorf("failed to open matrix store: %w", err)
		}
		globalStore = store

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if globalStore != nil {
			_ = globalStore.Close()
			globalStore = nil
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vectorsFlag, "vectors", "", "Path to the pre-trained vector file")
	rootCmd.PersistentFlags().StringVar(&vocabFlag, "vocab", "", "Path to the vocabulary file")
}

// resolveVectorsPath returns the vector file path from the --vectors flag or
// the config.
func resolveVectorsPath() (string, error) {
	if vectorsFlag != "" {
		return config.ExpandPath(vectorsFlag)
	}
	return globalConfig.GetVectorsPath()
}

// loadTable reads the vector file into memory, reporting progress on stderr
// since large dumps take a while.
func loadTable() (*embeddings.Table, error) {
	path, err := resolveVectorsPath()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "Loading vectors from %s...\n", path)
	table, err := embeddings.LoadTable(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load vectors: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d vectors (dimension %d)\n", table.Len(), table.Dimension())
	return table, nil
}

// resolveVocabPath returns the vocabulary file path from the --vocab flag or
// the config, or empty when neither is set.
func resolveVocabPath() (string, error) {
	if vocabFlag != "" {
		return config.ExpandPath(vocabFlag)
	}
	return globalConfig.GetVocabPath()
}

// loadVocabIfSet reads the vocabulary named by --vocab or the config, or
// returns nil when none is configured.
func loadVocabIfSet() (*vocab.Index, error) {
	path, err := resolveVocabPath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	idx, err := vocab.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return idx, nil
}

// requireVocab is loadVocabIfSet for commands that cannot run without one.
func requireVocab() (*vocab.Index, error) {
	idx, err := loadVocabIfSet()
	if err != nil {
		return nil, err
	}
	if idx == nil {
		return nil, fmt.Errorf("no vocabulary configured (pass --vocab or run 'glovebox setup')")
	}
	return idx, nil
}
