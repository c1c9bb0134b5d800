// ABOUTME: CLI command for looking up a single word's vector and rank.
// ABOUTME: Out-of-table words report the zero-row fallback instead of failing.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up a word's vector",
	Long: `Print the pre-trained vector for a word, and its vocabulary rank when a
vocabulary is configured. A word without a vector is reported, not an
error: its matrix row is simply all zeros.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	word := args[0]

	table, err := loadTable()
	if err != nil {
		return err
	}
	index, err := loadVocabIfSet()
	if err != nil {
		return err
	}

	fmt.Printf("Word: %s\n", word)
	if index != nil {
		if rank, ok := index.Rank(word); ok {
			fmt.Printf("Rank: %d of %d\n", rank, index.Size())
		} else {
			fmt.Printf("Rank: not in vocabulary (%d words)\n", index.Size())
		}
	}

	vec, ok := table.Lookup(word)
	if !ok {
		fmt.Printf("No vector; the matrix row for %q would be all zeros.\n", word)
		return nil
	}

	fmt.Printf("Dimension: %d\n", len(vec))
	fmt.Printf("Vector: %s\n", vectorString(vec))
	return nil
}

// vectorString renders all components space separated.
func vectorString(vec []float64) string {
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = fmt.Sprintf("%.6g", v)
	}
	return strings.Join(parts, " ")
}
