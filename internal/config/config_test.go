// ABOUTME: Tests for glovebox configuration loading and path expansion.
// ABOUTME: Covers YAML parsing, defaults, path expansion, and data dir resolution.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde slash", "~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"absolute", "/tmp/foo", "/tmp/foo"},
		{"relative", "foo/bar", "foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	// Set config path to a non-existent location
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Vectors.Path != "" {
		t.Error("expected empty vectors path in default config")
	}
	if cfg.HasVectors() {
		t.Error("expected HasVectors() to be false for default config")
	}
	if cfg.GetVocabTop() != DefaultVocabTop {
		t.Errorf("expected default vocab top %d, got %d", DefaultVocabTop, cfg.GetVocabTop())
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "glovebox")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configData := `vectors:
  path: "~/vectors/glove.6B.100d.txt"
  dimension: 100
  url: "https://example.com/glove.6B.zip"
vocab:
  path: "~/vectors/vocab.txt"
  top: 5000
build:
  workers: 4
data:
  dir: "~/glovebox-data"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configData), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Vectors.Dimension != 100 {
		t.Errorf("expected dimension 100, got %d", cfg.Vectors.Dimension)
	}
	if cfg.Vectors.URL != "https://example.com/glove.6B.zip" {
		t.Errorf("expected url from config, got %q", cfg.Vectors.URL)
	}
	if cfg.Build.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Build.Workers)
	}
	if !cfg.HasVectors() {
		t.Error("expected HasVectors() to be true")
	}
	if cfg.GetVocabTop() != 5000 {
		t.Errorf("expected vocab top 5000, got %d", cfg.GetVocabTop())
	}

	home, _ := os.UserHomeDir()
	expectedVectors := filepath.Join(home, "vectors", "glove.6B.100d.txt")
	if got, err := cfg.GetVectorsPath(); err != nil {
		t.Fatalf("GetVectorsPath() error: %v", err)
	} else if got != expectedVectors {
		t.Errorf("GetVectorsPath() = %q, want %q", got, expectedVectors)
	}

	expectedVocab := filepath.Join(home, "vectors", "vocab.txt")
	if got, err := cfg.GetVocabPath(); err != nil {
		t.Fatalf("GetVocabPath() error: %v", err)
	} else if got != expectedVocab {
		t.Errorf("GetVocabPath() = %q, want %q", got, expectedVocab)
	}

	expectedData := filepath.Join(home, "glovebox-data")
	if got, err := cfg.GetDataDir(); err != nil {
		t.Fatalf("GetDataDir() error: %v", err)
	} else if got != expectedData {
		t.Errorf("GetDataDir() = %q, want %q", got, expectedData)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		Vectors: VectorsConfig{
			Path:      "~/saved-vectors.txt",
			Dimension: 50,
		},
		Vocab: VocabConfig{
			Top: 1000,
		},
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.Vectors.Path != "~/saved-vectors.txt" {
		t.Errorf("expected saved vectors path, got %q", loaded.Vectors.Path)
	}
	if loaded.Vectors.Dimension != 50 {
		t.Errorf("expected dimension 50, got %d", loaded.Vectors.Dimension)
	}
	if loaded.Vocab.Top != 1000 {
		t.Errorf("expected vocab top 1000, got %d", loaded.Vocab.Top)
	}
}

func TestGetVectorsPathUnconfigured(t *testing.T) {
	cfg := &Config{}
	_, err := cfg.GetVectorsPath()
	if err == nil {
		t.Fatal("expected error when no vector file is configured")
	}
}

func TestGetVocabPathUnset(t *testing.T) {
	cfg := &Config{}
	got, err := cfg.GetVocabPath()
	if err != nil {
		t.Fatalf("GetVocabPath() error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty path when unset, got %q", got)
	}
}

func TestGetVocabTopIgnoresNonPositive(t *testing.T) {
	for _, top := range []int{0, -5} {
		cfg := &Config{Vocab: VocabConfig{Top: top}}
		if got := cfg.GetVocabTop(); got != DefaultVocabTop {
			t.Errorf("expected default for top=%d, got %d", top, got)
		}
	}
}

func TestGetDataDirDefault(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	cfg := &Config{}
	got, err := cfg.GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir() error: %v", err)
	}
	expected := filepath.Join(dataHome, "glovebox", "matrices")
	if got != expected {
		t.Errorf("GetDataDir() = %q, want %q", got, expected)
	}
}
