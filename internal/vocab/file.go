// ABOUTME: Line-oriented vocabulary file format, rank = zero-based line number.
// ABOUTME: Compatible with the word-per-line vocab.txt files shipped alongside vector dumps.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Read parses a word-per-line vocabulary from r. The zero-based line
// number becomes the rank. Blank lines are an error because they would
// break rank contiguity.
func Read(r io.Reader) (*Index, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			return nil, fmt.Errorf("line %d: empty word", line)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	return New(words)
}

// Load reads a vocabulary file from disk.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary: %w", err)
	}
	defer func() { _ = f.Close() }()

	idx, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return idx, nil
}

// Save writes the index to path, one word per line in rank order.
func (ix *Index) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	var sb strings.Builder
	for _, w := range ix.words {
		sb.WriteString(w)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write vocabulary: %w", err)
	}
	return nil
}
