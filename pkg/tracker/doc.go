// Package tracker records which node IDs have already been published.
//
// # Overview
//
// A [Tracker] is the deduplication gate of the pipeline: it holds the set of
// published node IDs in memory for O(1) membership checks and flushes every
// addition to a persistent [Store] before returning. Construction loads the
// full persisted set; a missing or empty store is a fresh start, not an
// error.
//
// Once an ID is marked published it is excluded from every future batch,
// even if the source node's content changes later. That makes publication
// permanent by design: edits to already-published nodes are never re-synced.
//
// # Stores
//
// Three backends are provided:
//   - [FileStore]: a JSON file, the default for CLI use
//   - [RedisStore]: a Redis set, for trackers shared between machines
//   - [NullStore]: no persistence, for disposable runs and tests
//
// The tracker is owned by the single pipeline goroutine; stores do their own
// locking only where the backend requires it.
package tracker
