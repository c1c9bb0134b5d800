// ABOUTME: Vocabulary index mapping words to unique ranks contiguous in [0, N).
// ABOUTME: Ranks address matrix rows, so every constructor validates contiguity up front.
package vocab

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Index maps words to ranks. Ranks are unique and contiguous in [0, N),
// which is the invariant downstream matrix construction depends on; the
// constructors reject any input that would break it.
type Index struct {
	words []string       // rank -> word
	ranks map[string]int // word -> rank
}

// New builds an index from a word list, assigning rank by position.
func New(words []string) (*Index, error) {
	idx := &Index{
		words: make([]string, len(words)),
		ranks: make(map[string]int, len(words)),
	}
	for i, w := range words {
		if err := validWord(w); err != nil {
			return nil, fmt.Errorf("rank %d: %w", i, err)
		}
		if prev, dup := idx.ranks[w]; dup {
			return nil, fmt.Errorf("duplicate word %q at ranks %d and %d", w, prev, i)
		}
		idx.words[i] = w
		idx.ranks[w] = i
	}
	return idx, nil
}

// FromRanks builds an index from an explicit word-to-rank mapping. Ranks
// must be unique and cover [0, len(m)) exactly.
func FromRanks(m map[string]int) (*Index, error) {
	words := make([]string, len(m))
	seen := make([]bool, len(m))
	for w, r := range m {
		if r < 0 || r >= len(m) {
			return nil, fmt.Errorf("word %q: rank %d out of range [0, %d)", w, r, len(m))
		}
		if seen[r] {
			return nil, fmt.Errorf("word %q: rank %d already assigned", w, r)
		}
		seen[r] = true
		words[r] = w
	}
	return New(words)
}

// Rank returns the rank assigned to word.
func (ix *Index) Rank(word string) (int, bool) {
	r, ok := ix.ranks[word]
	return r, ok
}

// Word returns the word at the given rank.
func (ix *Index) Word(rank int) (string, error) {
	if rank < 0 || rank >= len(ix.words) {
		return "", fmt.Errorf("rank %d out of range [0, %d)", rank, len(ix.words))
	}
	return ix.words[rank], nil
}

// Size returns the number of indexed words.
func (ix *Index) Size() int {
	return len(ix.words)
}

// Words returns a copy of the word list in rank order.
func (ix *Index) Words() []string {
	out := make([]string, len(ix.words))
	copy(out, ix.words)
	return out
}

// wordPattern matches letter runs with optional internal apostrophes, so
// contractions like don't survive as single tokens.
var wordPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Tokenize lowercases text and extracts word tokens. Digits and
// punctuation split tokens.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Build constructs an index from raw texts, most frequent word first.
// Equal counts order lexicographically, so the result depends only on the
// word frequencies and never on input order. topN <= 0 keeps every word.
// Function words are kept: pre-trained tables carry vectors for them and
// dropping them would leave needless zero rows.
func Build(texts []string, topN int) (*Index, error) {
	counts := make(map[string]int)
	for _, t := range texts {
		for _, w := range Tokenize(t) {
			counts[w]++
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no words found in %d text(s)", len(texts))
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if topN > 0 && topN < len(words) {
		words = words[:topN]
	}

	return New(words)
}

// validWord rejects words the line-oriented vocabulary format cannot
// round-trip.
func validWord(w string) error {
	if w == "" {
		return fmt.Errorf("empty word")
	}
	if strings.ContainsAny(w, " \t\n\r") {
		return fmt.Errorf("word %q contains whitespace", w)
	}
	return nil
}
