// ABOUTME: Interface definition for matrix artifact storage.
// ABOUTME: Defines the contract for saving, loading, and listing built matrices.
package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/2389-research/glovebox/internal/matrix"
)

// Metadata describes a stored matrix artifact.
type Metadata struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Rows        int       `json:"rows"`
	Cols        int       `json:"cols"`
	VocabPath   string    `json:"vocab_path,omitempty"`
	VectorsPath string    `json:"vectors_path,omitempty"`
	Hits        int       `json:"hits"`
	Misses      int       `json:"misses"`
}

// Artifact pairs an artifact name with its metadata.
type Artifact struct {
	Name string
	Meta Metadata
}

// MatrixStore defines operations for matrix artifact persistence.
type MatrixStore interface {
	// Save persists a matrix and its metadata under name, filling in the
	// ID and creation time when unset. Returns the stored metadata.
	Save(name string, m *matrix.Matrix, meta Metadata) (Metadata, error)

	// Load reads the matrix and metadata stored under name.
	Load(name string) (*matrix.Matrix, Metadata, error)

	// List returns stored artifacts, newest first.
	List() ([]Artifact, error)

	// Close releases any resources held by the store.
	Close() error
}
