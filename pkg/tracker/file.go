package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists published IDs as a JSON file. This is the default
// backend for CLI usage: human-inspectable, survives restarts, and absence
// simply means nothing has been published yet.
type FileStore struct {
	path string
	ids  []string
}

// fileRecord is the on-disk format.
type fileRecord struct {
	Published []string `json:"published"`
}

// NewFileStore creates a file-backed store at the given path. The parent
// directory is created if needed; the file itself is created on first Add.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create tracker dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads the full published set from disk. A missing file yields an
// empty set.
func (s *FileStore) Load(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.ids = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tracker file: %w", err)
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse tracker file %s: %w", s.path, err)
	}
	s.ids = rec.Published
	return rec.Published, nil
}

// Add appends the IDs and rewrites the file synchronously. The write is
// complete before Add returns, so a crash after a publish cannot lose the
// markers.
func (s *FileStore) Add(ctx context.Context, ids []string) error {
	seen := make(map[string]struct{}, len(s.ids))
	for _, id := range s.ids {
		seen[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		s.ids = append(s.ids, id)
		seen[id] = struct{}{}
	}

	data, err := json.MarshalIndent(fileRecord{Published: s.ids}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tracker: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write tracker file: %w", err)
	}
	return nil
}

// Close does nothing for file stores.
func (s *FileStore) Close() error { return nil }

// Path returns the tracker file path.
func (s *FileStore) Path() string { return s.path }

// Clear removes the tracker file. The next Load yields an empty set.
func (s *FileStore) Clear() error {
	s.ids = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove tracker file: %w", err)
	}
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
