// ABOUTME: Configuration management for glovebox with YAML config loading.
// ABOUTME: Handles vector file settings, vocabulary defaults, and ~ expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config stores glovebox configuration loaded from ~/.config/glovebox/config.yaml.
type Config struct {
	Vectors VectorsConfig `yaml:"vectors"`
	Vocab   VocabConfig   `yaml:"vocab"`
	Build   BuildConfig   `yaml:"build"`
	Data    DataConfig    `yaml:"data"`
}

// VectorsConfig holds the pre-trained vector file settings.
type VectorsConfig struct {
	Path      string `yaml:"path"`
	Dimension int    `yaml:"dimension"`
	URL       string `yaml:"url"`
}

// VocabConfig holds vocabulary defaults.
type VocabConfig struct {
	Path string `yaml:"path"`
	Top  int    `yaml:"top"`
}

// BuildConfig holds matrix build settings.
type BuildConfig struct {
	Workers int `yaml:"workers"`
}

// DataConfig holds optional path overrides for artifact storage.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// HasVectors returns true if a vector file is configured.
func (c *Config) HasVectors() bool {
	return c.Vectors.Path != ""
}

// GetVectorsPath returns the configured vector file path with ~ expanded.
func (c *Config) GetVectorsPath() (string, error) {
	if c.Vectors.Path == "" {
		return "", fmt.Errorf("no vector file configured (run 'glovebox setup' or pass --vectors)")
	}
	return ExpandPath(c.Vectors.Path)
}

// GetVocabPath returns the configured vocabulary file path with ~ expanded,
// or empty when unset.
func (c *Config) GetVocabPath() (string, error) {
	if c.Vocab.Path == "" {
		return "", nil
	}
	return ExpandPath(c.Vocab.Path)
}

// DefaultVocabTop is the vocabulary size cutoff used when none is configured.
const DefaultVocabTop = 20000

// GetVocabTop returns the configured vocabulary size cutoff.
func (c *Config) GetVocabTop() int {
	if c.Vocab.Top <= 0 {
		return DefaultVocabTop
	}
	return c.Vocab.Top
}

// GetDataDir returns the matrix artifact directory.
func (c *Config) GetDataDir() (string, error) {
	if c.Data.Dir != "" {
		return ExpandPath(c.Data.Dir)
	}
	return MatrixDataDir()
}

// MatrixDataDir returns the default matrix artifact directory.
func MatrixDataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "glovebox", "matrices"), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "glovebox", "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Load reads config from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
