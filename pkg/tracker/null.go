package tracker

import "context"

// NullStore is a store that never persists anything. Dedup still works
// within the process lifetime via the Tracker's in-memory set, but every
// restart is a fresh start. Useful for tests and throwaway runs.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore {
	return &NullStore{}
}

// Load always returns an empty set.
func (s *NullStore) Load(ctx context.Context) ([]string, error) {
	return nil, nil
}

// Add does nothing.
func (s *NullStore) Add(ctx context.Context, ids []string) error {
	return nil
}

// Close does nothing.
func (s *NullStore) Close() error { return nil }

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
