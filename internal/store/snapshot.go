// Snapshot persistence: the catalog as a single JSON file.
//
// Save writes to a temp file in the target directory and renames it over
// the snapshot, so readers of the path always see either the previous or
// the new complete collection, never a partial write.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
)

// SnapshotBackend persists the catalog as one JSON file at a fixed path.
type SnapshotBackend struct {
	path string
}

// NewSnapshotBackend returns a backend writing to path. The file does not
// need to exist yet; Load treats a missing file as an empty catalog.
func NewSnapshotBackend(path string) *SnapshotBackend {
	return &SnapshotBackend{path: path}
}

// Path returns the snapshot file location.
func (b *SnapshotBackend) Path() string { return b.path }

// Load reads and decodes the snapshot. A missing file fails soft to an
// empty collection; a corrupt file is an error.
func (b *SnapshotBackend) Load(_ context.Context) ([]domain.Perfume, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", b.path, err)
	}
	var items []domain.Perfume
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", b.path, err)
	}
	return items, nil
}

// Save atomically replaces the snapshot with the full collection.
func (b *SnapshotBackend) Save(_ context.Context, items []domain.Perfume) error {
	if items == nil {
		items = []domain.Perfume{}
	}
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, ".perfumes-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot %s: %w", b.path, err)
	}
	return nil
}
