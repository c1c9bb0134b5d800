// ABOUTME: CLI commands for vocabulary operations.
// ABOUTME: Provides build and info subcommands for word-per-line vocabulary files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/2389-research/glovebox/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Manage vocabularies",
	Long:  "Build and inspect rank-ordered vocabulary files.",
}

var vocabBuildCmd = &cobra.Command{
	Use:   "build <text-file>...",
	Short: "Build a vocabulary from text files",
	Long: `Tokenize the given text files and write a vocabulary ordered by word
frequency, most frequent first. The line number of each word (zero-based)
is its rank.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVocabBuild,
}

var vocabInfoCmd = &cobra.Command{
	Use:   "info <vocab-file>",
	Short: "Show vocabulary statistics",
	Long:  "Print the word count and the highest-ranked words of a vocabulary file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runVocabInfo,
}

// Flags
var (
	vocabTop int
	vocabOut string
)

func init() {
	rootCmd.AddCommand(vocabCmd)
	vocabCmd.AddCommand(vocabBuildCmd)
	vocabCmd.AddCommand(vocabInfoCmd)

	vocabBuildCmd.Flags().IntVar(&vocabTop, "top", 0, "Keep only the N most frequent words (0 = config default)")
	vocabBuildCmd.Flags().StringVar(&vocabOut, "out", "vocab.txt", "Output vocabulary file")
}

func runVocabBuild(cmd *cobra.Command, args []string) error {
	texts := make([]string, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		texts = append(texts, string(data))
	}

	top := vocabTop
	if top <= 0 {
		top = globalConfig.GetVocabTop()
	}

	idx, err := vocab.Build(texts, top)
	if err != nil {
		return fmt.Errorf("failed to build vocabulary: %w", err)
	}
	if err := idx.Save(vocabOut); err != nil {
		return fmt.Errorf("failed to save vocabulary: %w", err)
	}

	fmt.Printf("Vocabulary written: %s (%d words from %d file(s))\n", vocabOut, idx.Size(), len(args))
	return nil
}

func runVocabInfo(cmd *cobra.Command, args []string) error {
	idx, err := vocab.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Words: %d\n", idx.Size())

	preview := idx.Size()
	if preview > 10 {
		preview = 10
	}
	if preview > 0 {
		fmt.Println("Top ranks:")
		for rank := 0; rank < preview; rank++ {
			word, err := idx.Word(rank)
			if err != nil {
				return err
			}
			fmt.Printf("  %4d  %s\n", rank, word)
		}
	}
	return nil
}
