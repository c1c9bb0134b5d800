// ABOUTME: Loader for whitespace-separated text vector files (GloVe format).
// ABOUTME: One word per line followed by its components, dimension fixed by the first line.
package embeddings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineSize bounds a single vector line. 300-dimension dumps stay well
// under 16KB; anything past 1MB is not a vector file.
const maxLineSize = 1024 * 1024

// ReadTable parses a text vector file from r. Each line is a word followed
// by its vector components, whitespace separated. The first line fixes the
// dimension; later lines with a different component count are an error.
// Repeated words keep the earliest line. The whole file is read in one
// pass.
func ReadTable(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var table *Table
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word and vector components", line)
		}

		word := fields[0]
		vec := make([]float64, len(fields)-1)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad component %q for %q: %w", line, field, word, err)
			}
			vec[i] = v
		}

		if table == nil {
			t, err := NewTable(len(vec))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			table = t
		}
		if err := table.Add(word, vec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vectors: %w", err)
	}
	if table == nil {
		return nil, fmt.Errorf("no vectors found")
	}
	return table, nil
}

// LoadTable reads a vector file from disk.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vectors: %w", err)
	}
	defer func() { _ = f.Close() }()

	table, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ProbeFile parses only the first vector line of path and returns the
// dimension. Cheap pre-flight validation for multi-gigabyte files.
func ProbeFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open vectors: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return 0, fmt.Errorf("%s line %d: expected word and vector components", path, line)
		}
		for _, field := range fields[1:] {
			if _, err := strconv.ParseFloat(field, 64); err != nil {
				return 0, fmt.Errorf("%s line %d: bad component %q: %w", path, line, field, err)
			}
		}
		return len(fields) - 1, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read vectors: %w", err)
	}
	return 0, fmt.Errorf("%s: no vectors found", path)
}
