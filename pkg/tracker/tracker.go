package tracker

import (
	"context"

	"github.com/matzehuels/canvascast/pkg/errors"
)

// Store is the persistence backend for a Tracker.
type Store interface {
	// Load returns every published ID in the store. A missing or empty
	// store returns an empty slice, not an error.
	Load(ctx context.Context) ([]string, error)

	// Add durably records the given IDs. IDs already present are ignored.
	Add(ctx context.Context, ids []string) error

	// Close releases resources held by the store.
	Close() error
}

// Tracker is the persisted set of published node IDs.
type Tracker struct {
	store     Store
	published map[string]struct{}
}

// New creates a tracker backed by the given store and loads the persisted
// set. A nil store means no persistence (NullStore).
func New(ctx context.Context, store Store) (*Tracker, error) {
	if store == nil {
		store = NewNullStore()
	}
	ids, err := store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "load tracker")
	}
	published := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		published[id] = struct{}{}
	}
	return &Tracker{store: store, published: published}, nil
}

// IsPublished reports whether the ID has been published before.
func (t *Tracker) IsPublished(id string) bool {
	_, ok := t.published[id]
	return ok
}

// MarkPublished adds the IDs to the in-memory set and flushes them to the
// store before returning. If the flush fails the in-memory set keeps the new
// IDs: the publish already happened, so the current process must not resend,
// and the caller decides whether a failed flush is fatal.
func (t *Tracker) MarkPublished(ctx context.Context, ids []string) error {
	fresh := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := t.published[id]; ok {
			continue
		}
		t.published[id] = struct{}{}
		fresh = append(fresh, id)
	}
	if len(fresh) == 0 {
		return nil
	}
	if err := t.store.Add(ctx, fresh); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "persist %d published IDs", len(fresh))
	}
	return nil
}

// Count returns the number of published IDs.
func (t *Tracker) Count() int { return len(t.published) }

// IDs returns every published ID in unspecified order.
func (t *Tracker) IDs() []string {
	ids := make([]string, 0, len(t.published))
	for id := range t.published {
		ids = append(ids, id)
	}
	return ids
}

// Close closes the underlying store.
func (t *Tracker) Close() error { return t.store.Close() }
