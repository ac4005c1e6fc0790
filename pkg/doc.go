// Package pkg provides the core libraries for canvascast canvas syndication.
//
// # Overview
//
// Canvascast turns marked nodes of an Obsidian JSON Canvas file into
// microblog posts, publishing each node exactly once. The pkg directory is
// organized by concern:
//
//  1. [canvas] - JSON Canvas parsing and node/edge types
//  2. [syndicate] - adjacency index, node selection, publish batches
//  3. [tracker] - the persisted published-set (file, redis or none)
//  4. [sink] - publish destinations (Jujutsu repository, plain directory)
//  5. [watch] - debounced file-change triggers
//  6. [pipeline] - orchestration of one publish cycle and the watch loop
//
// # Architecture
//
// The typical data flow through canvascast:
//
//	notes.canvas file change
//	         ↓
//	    [watch] package (debounced trigger)
//	         ↓
//	    [canvas] package (parse nodes + edges)
//	         ↓
//	    [syndicate] package (index, select, batch)
//	         ↓
//	    [tracker] package (drop already-published IDs)
//	         ↓
//	    [sink] package (render markdown, commit, push)
//
// The [pipeline] package drives this sequence; [config], [errors] and
// [buildinfo] carry the ambient concerns.
package pkg
