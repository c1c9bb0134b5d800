// ABOUTME: Tests for the GloVe-format text vector file loader.
// ABOUTME: Covers parsing, blank lines, duplicates, malformed input, and probing.
package embeddings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTable(t *testing.T) {
	table, err := ReadTable(strings.NewReader("cat 0.1 0.2\ndog 0.3 0.4\n"))
	if err != nil {
		t.Fatalf("ReadTable error: %v", err)
	}
	if table.Dimension() != 2 {
		t.Errorf("expected dimension 2, got %d", table.Dimension())
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", table.Len())
	}

	vec, ok := table.Lookup("dog")
	if !ok {
		t.Fatal("expected dog to be present")
	}
	if vec[0] != 0.3 || vec[1] != 0.4 {
		t.Errorf("expected [0.3 0.4], got %v", vec)
	}
}

func TestReadTableSkipsBlankLines(t *testing.T) {
	table, err := ReadTable(strings.NewReader("\ncat 0.1 0.2\n\n\ndog 0.3 0.4\n"))
	if err != nil {
		t.Fatalf("ReadTable error: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", table.Len())
	}
}

func TestReadTableTabSeparated(t *testing.T) {
	table, err := ReadTable(strings.NewReader("cat\t0.1\t0.2\n"))
	if err != nil {
		t.Fatalf("ReadTable error: %v", err)
	}
	if _, ok := table.Lookup("cat"); !ok {
		t.Error("expected tab-separated line to parse")
	}
}

func TestReadTableDuplicateKeepsFirst(t *testing.T) {
	table, err := ReadTable(strings.NewReader("cat 0.1 0.2\ncat 0.9 0.9\n"))
	if err != nil {
		t.Fatalf("ReadTable error: %v", err)
	}

	vec, _ := table.Lookup("cat")
	if vec[0] != 0.1 || vec[1] != 0.2 {
		t.Errorf("expected earliest line kept for repeated word, got %v", vec)
	}
}

func TestReadTableInconsistentDimension(t *testing.T) {
	_, err := ReadTable(strings.NewReader("cat 0.1 0.2\ndog 0.3\n"))
	if err == nil {
		t.Fatal("expected error for inconsistent dimension")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error to name line 2, got %v", err)
	}
}

func TestReadTableBadComponent(t *testing.T) {
	_, err := ReadTable(strings.NewReader("cat abc 0.2\n"))
	if err == nil {
		t.Fatal("expected error for non-numeric component")
	}
	if !strings.Contains(err.Error(), "bad component") {
		t.Errorf("expected bad component error, got %v", err)
	}
}

func TestReadTableWordOnly(t *testing.T) {
	_, err := ReadTable(strings.NewReader("cat\n"))
	if err == nil {
		t.Fatal("expected error for line without components")
	}
}

func TestReadTableEmpty(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !strings.Contains(err.Error(), "no vectors") {
		t.Errorf("expected no vectors error, got %v", err)
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt")
	if err := os.WriteFile(path, []byte("cat 0.1 0.2\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", table.Len())
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadTableWrapsPathInError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt")
	if err := os.WriteFile(path, []byte("cat abc\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := LoadTable(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected error to include the file path, got %v", err)
	}
}

func TestProbeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt")
	if err := os.WriteFile(path, []byte("cat 0.1 0.2 0.3\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	dim, err := ProbeFile(path)
	if err != nil {
		t.Fatalf("ProbeFile error: %v", err)
	}
	if dim != 3 {
		t.Errorf("expected dimension 3, got %d", dim)
	}
}

func TestProbeFileSkipsLeadingBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt")
	if err := os.WriteFile(path, []byte("\n\ncat 0.1 0.2\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	dim, err := ProbeFile(path)
	if err != nil {
		t.Fatalf("ProbeFile error: %v", err)
	}
	if dim != 2 {
		t.Errorf("expected dimension 2, got %d", dim)
	}
}

func TestProbeFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := ProbeFile(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}
