// ABOUTME: Nearest-neighbor search over a vector table using cosine similarity.
// ABOUTME: Brute-force scan with deterministic ordering on score ties.
package embeddings

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// SearchResult pairs a word with its similarity score.
type SearchResult struct {
	Word  string
	Score float64
}

// SearchOptions configures a nearest-neighbor search.
type SearchOptions struct {
	Limit   int      // maximum results, default 10
	Exclude []string // words to omit from results
}

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 for mismatched lengths or zero-magnitude inputs.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}

	return floats.Dot(a, b) / (normA * normB)
}

// Nearest returns the stored words most similar to the query vector,
// score descending. Equal scores order lexicographically, so the result
// never depends on map iteration order.
func (t *Table) Nearest(query []float64, opts SearchOptions) ([]SearchResult, error) {
	if len(query) != t.dim {
		return nil, fmt.Errorf("query has %d values, table dimension is %d", len(query), t.dim)
	}

	exclude := make(map[string]bool, len(opts.Exclude))
	for _, w := range opts.Exclude {
		exclude[w] = true
	}

	results := make([]SearchResult, 0, len(t.vectors))
	for word, vec := range t.vectors {
		if exclude[word] {
			continue
		}
		results = append(results, SearchResult{
			Word:  word,
			Score: CosineSimilarity(query, vec),
		})
	}

	// Sort by score descending, word ascending on ties
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Word < results[j].Word
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > len(results) {
		limit = len(results)
	}

	return results[:limit], nil
}

// Similar returns the words most similar to word, excluding word itself.
func (t *Table) Similar(word string, limit int) ([]SearchResult, error) {
	vec, ok := t.Lookup(word)
	if !ok {
		return nil, fmt.Errorf("word %q not in table", word)
	}
	return t.Nearest(vec, SearchOptions{Limit: limit, Exclude: []string{word}})
}
