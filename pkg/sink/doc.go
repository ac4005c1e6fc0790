// Package sink publishes syndication batches to destinations.
//
// # Overview
//
// A [Sink] is anything that can durably store a batch of microblog items.
// Sinks receive the entire unpublished batch in one Publish call, never one
// item at a time, because destinations render cross-references between items
// that go out together: each item's front matter links to its in-neighbors
// (context_for_this) and out-neighbors (further_thinking) within the batch.
//
// Two implementations are provided:
//
//   - [JJSink] publishes to a Jujutsu (jj) repository: fetch, create a
//     change after a bookmark, write one markdown file per item, advance the
//     bookmark, push. The sequence is a series of external side effects with
//     no rollback; if a step fails, earlier steps stand and the whole batch
//     is retried on the next cycle. File names embed the node ID, so
//     re-writes are idempotent at the file level even though the repository
//     effects are not.
//   - [DirSink] writes the same rendered files into a plain directory, with
//     no version control. Useful for previewing output or feeding a static
//     site generator directly.
//
// With dryRun set, Publish must not leave durable side effects. Both sinks
// log every command and file they would have produced and report success.
//
// # Output format
//
// File naming and content are fixed by [Slug], [Filename], and [RenderPost]:
// `<slug>-<nodeID>.md` containing a YAML front-matter block (title, date,
// optional neighbor link lists) followed by the item's raw text.
package sink
