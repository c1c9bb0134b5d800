// ABOUTME: Tests for vocabulary index construction, rank lookups, and tokenization.
// ABOUTME: Covers contiguity validation, frequency ordering, and duplicate detection.
package vocab

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	idx, err := New([]string{"cat", "dog", "fish"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if idx.Size() != 3 {
		t.Errorf("expected size 3, got %d", idx.Size())
	}

	for i, word := range []string{"cat", "dog", "fish"} {
		rank, ok := idx.Rank(word)
		if !ok {
			t.Fatalf("expected %q to be indexed", word)
		}
		if rank != i {
			t.Errorf("expected %q at rank %d, got %d", word, i, rank)
		}
	}
}

func TestNewEmptyList(t *testing.T) {
	idx, err := New(nil)
	if err != nil {
		t.Fatalf("expected empty word list to be accepted, got %v", err)
	}
	if idx.Size() != 0 {
		t.Errorf("expected size 0, got %d", idx.Size())
	}
}

func TestNewDuplicateWord(t *testing.T) {
	_, err := New([]string{"cat", "dog", "cat"})
	if err == nil {
		t.Fatal("expected error for duplicate word")
	}
	if !strings.Contains(err.Error(), "cat") {
		t.Errorf("expected error to name the word, got %v", err)
	}
}

func TestNewInvalidWord(t *testing.T) {
	for _, words := range [][]string{
		{"cat", ""},
		{"cat", "two words"},
		{"cat", "tab\tword"},
	} {
		if _, err := New(words); err == nil {
			t.Errorf("expected error for word list %q", words)
		}
	}
}

func TestFromRanks(t *testing.T) {
	idx, err := FromRanks(map[string]int{"cat": 0, "dog": 1, "fish": 2})
	if err != nil {
		t.Fatalf("FromRanks error: %v", err)
	}

	word, err := idx.Word(1)
	if err != nil {
		t.Fatalf("Word error: %v", err)
	}
	if word != "dog" {
		t.Errorf("expected dog at rank 1, got %q", word)
	}
}

func TestFromRanksOutOfRange(t *testing.T) {
	_, err := FromRanks(map[string]int{"cat": 0, "dog": 5})
	if err == nil {
		t.Fatal("expected error for out-of-range rank")
	}
}

func TestFromRanksNegative(t *testing.T) {
	_, err := FromRanks(map[string]int{"cat": -1, "dog": 0})
	if err == nil {
		t.Fatal("expected error for negative rank")
	}
}

func TestFromRanksDuplicateRank(t *testing.T) {
	_, err := FromRanks(map[string]int{"cat": 0, "dog": 0})
	if err == nil {
		t.Fatal("expected error for duplicate rank")
	}
}

func TestFromRanksGap(t *testing.T) {
	// Ranks 0 and 2 with nothing at 1: rank 2 is out of [0, 2)
	_, err := FromRanks(map[string]int{"cat": 0, "dog": 2})
	if err == nil {
		t.Fatal("expected error for non-contiguous ranks")
	}
}

func TestRankMissing(t *testing.T) {
	idx, _ := New([]string{"cat"})
	if _, ok := idx.Rank("zebra"); ok {
		t.Error("expected miss for absent word")
	}
}

func TestWordOutOfRange(t *testing.T) {
	idx, _ := New([]string{"cat"})
	for _, rank := range []int{-1, 1, 100} {
		if _, err := idx.Word(rank); err == nil {
			t.Errorf("expected error for rank %d", rank)
		}
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	idx, _ := New([]string{"cat", "dog"})
	words := idx.Words()
	words[0] = "mutated"

	got, _ := idx.Word(0)
	if got != "cat" {
		t.Errorf("expected index unaffected by caller mutation, got %q", got)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"basic", "The cat sat.", []string{"the", "cat", "sat"}},
		{"contraction", "Don't stop", []string{"don't", "stop"}},
		{"curly apostrophe", "don’t", []string{"don’t"}},
		{"digits split", "abc123def", []string{"abc", "def"}},
		{"punctuation split", "cat,dog;fish", []string{"cat", "dog", "fish"}},
		{"unicode letters", "Café naïve", []string{"café", "naïve"}},
		{"empty", "", nil},
		{"only punctuation", "123 !!!", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestBuildFrequencyOrder(t *testing.T) {
	idx, err := Build([]string{"the cat sat on the mat", "the dog sat"}, 0)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	// the appears 3 times, sat twice, the rest once each in word order
	want := []string{"the", "sat", "cat", "dog", "mat", "on"}
	if idx.Size() != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), idx.Size())
	}
	for i, w := range want {
		got, _ := idx.Word(i)
		if got != w {
			t.Errorf("rank %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestBuildTopN(t *testing.T) {
	idx, err := Build([]string{"the cat sat on the mat", "the dog sat"}, 2)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if idx.Size() != 2 {
		t.Fatalf("expected 2 words with topN 2, got %d", idx.Size())
	}

	got, _ := idx.Word(0)
	if got != "the" {
		t.Errorf("expected most frequent word first, got %q", got)
	}
}

func TestBuildOrderIndependence(t *testing.T) {
	texts := []string{"the cat sat on the mat", "the dog sat", "fish swim"}
	reversed := []string{"fish swim", "the dog sat", "the cat sat on the mat"}

	a, err := Build(texts, 0)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	b, err := Build(reversed, 0)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if a.Size() != b.Size() {
		t.Fatalf("expected same size, got %d and %d", a.Size(), b.Size())
	}
	for i := 0; i < a.Size(); i++ {
		wa, _ := a.Word(i)
		wb, _ := b.Word(i)
		if wa != wb {
			t.Errorf("rank %d: %q vs %q for reordered input", i, wa, wb)
		}
	}
}

func TestBuildNoWords(t *testing.T) {
	_, err := Build([]string{"123", "!!!"}, 0)
	if err == nil {
		t.Fatal("expected error when no words are found")
	}
}
