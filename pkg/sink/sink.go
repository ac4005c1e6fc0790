package sink

import (
	"context"

	"github.com/matzehuels/canvascast/pkg/syndicate"
)

// Sink names for configuration and diagnostics.
const (
	NameJJ  = "jj"
	NameDir = "dir"
)

// Sink is the capability a publish destination must provide.
type Sink interface {
	// Publish durably stores the whole batch. When dryRun is true no
	// durable side effect may occur, but the call still succeeds and makes
	// observable what would happen.
	//
	// The sequence of side effects behind Publish is not transactional: on
	// error, effects of earlier steps stand, and the caller must not mark
	// the batch as published (so the next cycle retries it wholesale).
	Publish(ctx context.Context, batch syndicate.Batch, dryRun bool) error

	// Name returns a stable, space-free identifier for this destination,
	// used in diagnostics and to disambiguate configured sinks.
	Name() string
}

// slugsFor precomputes the slug of every item in the batch. Sinks need the
// full map up front so cross-references can point at files that are written
// later in the same publish.
func slugsFor(batch syndicate.Batch) map[string]string {
	slugs := make(map[string]string, len(batch))
	for id, item := range batch {
		slugs[id] = Slug(item.Text)
	}
	return slugs
}
