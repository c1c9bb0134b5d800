// ABOUTME: CLI commands for embedding matrix operations.
// ABOUTME: Provides build, info, and list subcommands over the artifact store.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/2389-research/glovebox/internal/matrix"
	"github.com/2389-research/glovebox/internal/storage"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Manage embedding matrices",
	Long:  "Build dense embedding matrices and inspect stored artifacts.",
}

var matrixBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build an embedding matrix",
	Long: `Build the dense (vocabulary x dimension) matrix. Row r holds the vector
of the rank-r word; words without a pre-trained vector get a zero row.
The result is saved to the artifact store.`,
	RunE: runMatrixBuild,
}

var matrixInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show matrix artifact statistics",
	Long:  "Print the shape, coverage, and row norm distribution of a stored matrix.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatrixInfo,
}

var matrixListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored matrix artifacts",
	Long:  "List matrix artifacts in the data directory, newest first.",
	RunE:  runMatrixList,
}

// Flags
var (
	matrixDim     int
	matrixWorkers int
	matrixName    string
)

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.AddCommand(matrixBuildCmd)
	matrixCmd.AddCommand(matrixInfoCmd)
	matrixCmd.AddCommand(matrixListCmd)

	matrixBuildCmd.Flags().IntVar(&matrixDim, "dim", 0, "Expected vector dimension (0 = detect)")
	matrixBuildCmd.Flags().IntVar(&matrixWorkers, "workers", 0, "Parallel row fill workers (0 = config default)")
	matrixBuildCmd.Flags().StringVar(&matrixName, "name", "", "Artifact name (default: matrix-<timestamp>)")
}

func runMatrixBuild(cmd *cobra.Command, args []string) error {
	index, err := requireVocab()
	if err != nil {
		return err
	}
	table, err := loadTable()
	if err != nil {
		return err
	}

	dim := matrixDim
	if dim <= 0 {
		dim = globalConfig.Vectors.Dimension
	}
	if dim <= 0 {
		dim = table.Dimension()
	}

	workers := matrixWorkers
	if workers <= 0 {
		workers = globalConfig.Build.Workers
	}

	m, err := matrix.Build(index, table, dim, matrix.WithWorkers(workers))
	if err != nil {
		return fmt.Errorf("failed to build matrix: %w", err)
	}
	hits, misses := matrix.Coverage(index, table)

	name := matrixName
	if name == "" {
		name = fmt.Sprintf("matrix-%s", time.Now().UTC().Format("20060102-150405"))
	}

	vocabPath, _ := resolveVocabPath()
	vectorsPath, _ := resolveVectorsPath()
	meta, err := globalStore.Save(name, m, storage.Metadata{
		VocabPath:   vocabPath,
		VectorsPath: vectorsPath,
		Hits:        hits,
		Misses:      misses,
	})
	if err != nil {
		return fmt.Errorf("failed to save matrix: %w", err)
	}

	fmt.Printf("Matrix built: %dx%d\n", m.Rows(), m.Cols())
	fmt.Printf("Coverage: %d/%d words have vectors (%d zero rows)\n", hits, index.Size(), misses)
	fmt.Printf("Artifact saved: %s (ID: %s)\n", name, meta.ID.String()[:8])
	return nil
}

func runMatrixInfo(cmd *cobra.Command, args []string) error {
	m, meta, err := globalStore.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load matrix: %w", err)
	}

	fmt.Printf("Name: %s\n", args[0])
	fmt.Printf("ID: %s\n", meta.ID)
	fmt.Printf("Created: %s\n", meta.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Shape: %dx%d\n", m.Rows(), m.Cols())
	if meta.VocabPath != "" {
		fmt.Printf("Vocabulary: %s\n", meta.VocabPath)
	}
	if meta.VectorsPath != "" {
		fmt.Printf("Vectors: %s\n", meta.VectorsPath)
	}
	fmt.Printf("Coverage: %d hits, %d misses\n", meta.Hits, meta.Misses)
	fmt.Printf("Zero rows: %d\n", m.ZeroRows())

	if m.Rows() > 0 {
		norms := m.RowNorms()
		fmt.Printf("Row norms: mean %.4f", stat.Mean(norms, nil))
		if m.Rows() > 1 {
			fmt.Printf(", stddev %.4f", stat.StdDev(norms, nil))
		}
		fmt.Println()
	}
	return nil
}

func runMatrixList(cmd *cobra.Command, args []string) error {
	artifacts, err := globalStore.List()
	if err != nil {
		return fmt.Errorf("failed to list artifacts: %w", err)
	}

	if len(artifacts) == 0 {
		fmt.Println("No matrices found.")
		return nil
	}

	for _, a := range artifacts {
		fmt.Printf("%s  %dx%d  %s  (%d zero rows)\n",
			a.Meta.CreatedAt.Format("2006-01-02 15:04:05"),
			a.Meta.Rows,
			a.Meta.Cols,
			a.Name,
			a.Meta.Misses,
		)
	}
	return nil
}
