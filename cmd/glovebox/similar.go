// ABOUTME: CLI command for nearest-neighbor word search.
// ABOUTME: Ranks table words by cosine similarity to the query word.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var similarCmd = &cobra.Command{
	Use:   "similar <word>",
	Short: "Find similar words",
	Long:  "List the words whose vectors are closest to the query word by cosine similarity.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimilar,
}

// Flags
var similarLimit int

func init() {
	rootCmd.AddCommand(similarCmd)

	similarCmd.Flags().IntVar(&similarLimit, "limit", 10, "Maximum number of neighbors to show")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	word := args[0]

	table, err := loadTable()
	if err != nil {
		return err
	}

	results, err := table.Similar(word, similarLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Nearest to %q:\n", word)
	for i, r := range results {
		fmt.Printf("%3d. %-24s %.4f\n", i+1, r.Word, r.Score)
	}
	return nil
}
