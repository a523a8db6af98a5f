package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each slot in its own JSON file under a data directory,
// one value per key, replaced wholesale on every write.
type FileStore struct {
	dir string
}

// OpenFile creates the data directory if needed and returns a FileStore.
func OpenFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return raw, nil
}

func (s *FileStore) Save(key string, value []byte) error {
	// Write-then-rename so a crash mid-write never corrupts the slot.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace slot %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
