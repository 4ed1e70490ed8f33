package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bensethbell/domainwatch/internal/domain"
)

// ErrCorruptStore marks an artifact that exists but cannot be parsed.
// Callers must treat this as fatal for the cycle: silently resetting to an
// empty store would make every monitored domain look newly changed.
var ErrCorruptStore = errors.New("corrupt status store")

// FileStore persists the status set as a single JSON artifact. Writes go to
// a temp file in the same directory and are renamed over the artifact, so a
// reader never observes a partial write.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns an empty set when no artifact exists yet (first run).
func (f *FileStore) Load() (domain.StatusSet, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.StatusSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read status store: %w", err)
	}

	var set domain.StatusSet
	if err := json.Unmarshal(b, &set); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, f.Path, err)
	}
	if set == nil {
		set = domain.StatusSet{}
	}
	return set, nil
}

// Save atomically replaces the artifact with the given set.
func (f *FileStore) Save(set domain.StatusSet) error {
	b, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal status store: %w", err)
	}
	b = append(b, '\n')

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, ".status-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store: %w", err)
	}

	if err := os.Rename(tmpName, f.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace status store: %w", err)
	}
	return nil
}
