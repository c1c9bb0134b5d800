// ABOUTME: File-based matrix artifact storage in a data directory.
// ABOUTME: Each artifact is a raw little-endian data file plus a JSON metadata sidecar.
package storage

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2389-research/glovebox/internal/matrix"
)

// MatrixFileStore stores matrices as paired .mat/.json files in a data
// directory. The .mat file is the raw row-major float64 data in
// little-endian order; the .json sidecar carries the shape and provenance.
type MatrixFileStore struct {
	dataDir string
}

// NewMatrixFileStore creates a store rooted at dataDir.
func NewMatrixFileStore(dataDir string) (*MatrixFileStore, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	return &MatrixFileStore{dataDir: dataDir}, nil
}

// Save writes name.mat and name.json atomically. A zero ID or CreatedAt is
// filled in; Rows and Cols always come from the matrix itself.
func (s *MatrixFileStore) Save(name string, m *matrix.Matrix, meta Metadata) (Metadata, error) {
	if err := validName(name); err != nil {
		return Metadata{}, err
	}
	if m == nil {
		return Metadata{}, fmt.Errorf("matrix is required")
	}

	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}
	meta.Rows = m.Rows()
	meta.Cols = m.Cols()

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return Metadata{}, fmt.Errorf("failed to create data directory: %w", err)
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, m.Data()); err != nil {
		return Metadata{}, fmt.Errorf("failed to encode matrix: %w", err)
	}
	if err := writeFileAtomic(s.matPath(name), buf.Bytes()); err != nil {
		return Metadata{}, fmt.Errorf("failed to write matrix: %w", err)
	}

	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := writeFileAtomic(s.metaPath(name), append(metaBytes, '\n')); err != nil {
		return Metadata{}, fmt.Errorf("failed to write metadata: %w", err)
	}

	return meta, nil
}

// Load reads the artifact stored under name. The data file length must
// match the shape recorded in the metadata sidecar.
func (s *MatrixFileStore) Load(name string) (*matrix.Matrix, Metadata, error) {
	if err := validName(name); err != nil {
		return nil, Metadata{}, err
	}

	metaBytes, err := os.ReadFile(s.metaPath(name))
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("failed to read metadata: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, Metadata{}, fmt.Errorf("failed to parse metadata: %w", err)
	}

	raw, err := os.ReadFile(s.matPath(name))
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("failed to read matrix: %w", err)
	}
	want := meta.Rows * meta.Cols * 8
	if len(raw) != want {
		return nil, Metadata{}, fmt.Errorf("matrix file is %d bytes, metadata says %dx%d (%d bytes)", len(raw), meta.Rows, meta.Cols, want)
	}

	data := make([]float64, meta.Rows*meta.Cols)
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, data); err != nil {
		return nil, Metadata{}, fmt.Errorf("failed to decode matrix: %w", err)
	}

	m, err := matrix.FromData(meta.Rows, meta.Cols, data)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("invalid shape in metadata: %w", err)
	}
	return m, meta, nil
}

// List returns artifacts sorted by creation time, newest first.
func (s *MatrixFileStore) List() ([]Artifact, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var artifacts []Artifact
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		metaBytes, err := os.ReadFile(filepath.Join(s.dataDir, entry.Name()))
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(metaBytes, &meta); err != nil {
			continue
		}

		artifacts = append(artifacts, Artifact{
			Name: strings.TrimSuffix(entry.Name(), ".json"),
			Meta: meta,
		})
	}

	// Sort by date descending (most recent first)
	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Meta.CreatedAt.After(artifacts[j].Meta.CreatedAt)
	})

	return artifacts, nil
}

// Close releases any resources held by the store.
func (s *MatrixFileStore) Close() error {
	return nil
}

func (s *MatrixFileStore) matPath(name string) string {
	return filepath.Join(s.dataDir, name+".mat")
}

func (s *MatrixFileStore) metaPath(name string) string {
	return filepath.Join(s.dataDir, name+".json")
}

// validName keeps artifact names inside the data directory.
func validName(name string) error {
	if name == "" {
		return fmt.Errorf("artifact name is required")
	}
	if name != filepath.Base(name) || strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("artifact name %q must not contain path separators", name)
	}
	return nil
}

// writeFileAtomic writes data to path via a temp file and rename, so a
// crash never leaves a partial artifact behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
