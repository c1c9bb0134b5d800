// ABOUTME: Tests for the fixed-dimension word vector table.
// ABOUTME: Covers dimension checks, duplicate policy, and vector copying.
package embeddings

import "testing"

func TestNewTable(t *testing.T) {
	table, err := NewTable(50)
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}
	if table.Dimension() != 50 {
		t.Errorf("expected dimension 50, got %d", table.Dimension())
	}
	if table.Len() != 0 {
		t.Errorf("expected empty table, got %d entries", table.Len())
	}
}

func TestNewTableRejectsBadDimension(t *testing.T) {
	for _, dim := range []int{0, -1} {
		if _, err := NewTable(dim); err == nil {
			t.Errorf("expected error for dimension %d", dim)
		}
	}
}

func TestAddAndLookup(t *testing.T) {
	table, _ := NewTable(2)
	if err := table.Add("cat", []float64{0.1, 0.2}); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	vec, ok := table.Lookup("cat")
	if !ok {
		t.Fatal("expected cat to be present")
	}
	if vec[0] != 0.1 || vec[1] != 0.2 {
		t.Errorf("expected [0.1 0.2], got %v", vec)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", table.Len())
	}
}

func TestAddCopiesVector(t *testing.T) {
	table, _ := NewTable(2)
	src := []float64{0.1, 0.2}
	if err := table.Add("cat", src); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	// Mutating the caller's slice must not change the stored vector
	src[0] = 99

	vec, _ := table.Lookup("cat")
	if vec[0] != 0.1 {
		t.Errorf("expected stored vector unaffected by caller mutation, got %v", vec)
	}
}

func TestAddWrongDimension(t *testing.T) {
	table, _ := NewTable(2)
	err := table.Add("cat", []float64{0.1, 0.2, 0.3})
	if err == nil {
		t.Fatal("expected error for wrong vector length")
	}
}

func TestAddEmptyWord(t *testing.T) {
	table, _ := NewTable(2)
	if err := table.Add("", []float64{0.1, 0.2}); err == nil {
		t.Fatal("expected error for empty word")
	}
}

func TestAddDuplicateKeepsFirst(t *testing.T) {
	table, _ := NewTable(2)
	if err := table.Add("cat", []float64{0.1, 0.2}); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	// Second add of the same word is accepted but ignored
	if err := table.Add("cat", []float64{0.9, 0.9}); err != nil {
		t.Fatalf("duplicate Add error: %v", err)
	}

	vec, _ := table.Lookup("cat")
	if vec[0] != 0.1 || vec[1] != 0.2 {
		t.Errorf("expected first vector kept, got %v", vec)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 entry after duplicate, got %d", table.Len())
	}
}

func TestLookupMissing(t *testing.T) {
	table, _ := NewTable(2)
	if _, ok := table.Lookup("zebra"); ok {
		t.Error("expected lookup miss for absent word")
	}
}
