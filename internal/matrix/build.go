// ABOUTME: Builds the dense embedding matrix from a vocabulary index and a vector table.
// ABOUTME: Row r holds an exact copy of the rank-r word's vector, all zeros when absent.
package matrix

import (
	"fmt"
	"sync"

	"github.com/2389-research/glovebox/internal/embeddings"
	"github.com/2389-research/glovebox/internal/vocab"
)

// Option configures a build.
type Option func(*buildConfig)

type buildConfig struct {
	workers int
}

// WithWorkers fills rows with n goroutines over disjoint row ranges. Every
// worker count produces output identical to the serial build, because each
// row depends only on its own word. n <= 1 builds serially.
func WithWorkers(n int) Option {
	return func(c *buildConfig) {
		c.workers = n
	}
}

// Build produces the (index.Size() x dim) embedding matrix. Row r is an
// exact copy of the table vector for the word with rank r, with no
// normalization or transformation. Words without a table entry keep their
// zero row: out-of-table words are expected, and the caller can measure
// them with Coverage.
//
// dim must be positive and, when the table holds any vectors, equal to the
// table dimension; a mismatch returns an error and no matrix. An empty
// index yields a 0-row matrix, not an error.
func Build(index *vocab.Index, table *embeddings.Table, dim int, opts ...Option) (*Matrix, error) {
	if index == nil {
		return nil, fmt.Errorf("vocabulary index is required")
	}
	if table == nil {
		return nil, fmt.Errorf("vector table is required")
	}
	if dim <= 0 {
		return nil, fmt.Errorf("dimension must be positive, got %d", dim)
	}
	if table.Len() > 0 && table.Dimension() != dim {
		return nil, fmt.Errorf("dimension %d does not match table dimension %d", dim, table.Dimension())
	}

	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := New(index.Size(), dim)
	if err != nil {
		return nil, err
	}
	if m.rows == 0 {
		return m, nil
	}

	words := index.Words()
	fill := func(lo, hi int) {
		for r := lo; r < hi; r++ {
			if vec, ok := table.Lookup(words[r]); ok {
				copy(m.Row(r), vec)
			}
		}
	}

	workers := cfg.workers
	if workers <= 1 {
		fill(0, m.rows)
		return m, nil
	}
	if workers > m.rows {
		workers = m.rows
	}

	// Each worker owns a contiguous row range, so no two goroutines touch
	// the same backing memory.
	chunk := (m.rows + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < m.rows; lo += chunk {
		hi := lo + chunk
		if hi > m.rows {
			hi = m.rows
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fill(lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return m, nil
}

// Coverage reports how many index words have table vectors (hits) and how
// many fall back to zero rows (misses).
func Coverage(index *vocab.Index, table *embeddings.Table) (hits, misses int) {
	if index == nil || table == nil {
		return 0, 0
	}
	for _, w := range index.Words() {
		if _, ok := table.Lookup(w); ok {
			hits++
		} else {
			misses++
		}
	}
	return hits, misses
}
