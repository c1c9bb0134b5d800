// ABOUTME: In-memory table of pre-trained word vectors with a fixed dimension.
// ABOUTME: Hash-backed so downstream matrix construction pays one O(1) lookup per word.
package embeddings

import "fmt"

// Table holds word vectors of a single fixed dimension.
type Table struct {
	dim     int
	vectors map[string][]float64
}

// NewTable creates an empty table for vectors of the given dimension.
func NewTable(dim int) (*Table, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("dimension must be positive, got %d", dim)
	}
	return &Table{
		dim:     dim,
		vectors: make(map[string][]float64),
	}, nil
}

// Add stores a copy of vec under word. The vector length must match the
// table dimension. When word is already present the first vector is kept,
// so a table built from a file with repeated words reflects the earliest
// line regardless of how the file is traversed.
func (t *Table) Add(word string, vec []float64) error {
	if word == "" {
		return fmt.Errorf("empty word")
	}
	if len(vec) != t.dim {
		return fmt.Errorf("vector for %q has %d values, table dimension is %d", word, len(vec), t.dim)
	}
	if _, exists := t.vectors[word]; exists {
		return nil
	}

	v := make([]float64, t.dim)
	copy(v, vec)
	t.vectors[word] = v
	return nil
}

// Lookup returns the stored vector for word. The returned slice is the
// table's own storage and must not be modified.
func (t *Table) Lookup(word string) ([]float64, bool) {
	v, ok := t.vectors[word]
	return v, ok
}

// Dimension returns the vector dimension.
func (t *Table) Dimension() int {
	return t.dim
}

// Len returns the number of stored words.
func (t *Table) Len() int {
	return len(t.vectors)
}
