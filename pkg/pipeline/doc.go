// Package pipeline orchestrates the publish cycle.
//
// # Overview
//
// A [Runner] ties the other packages together: it reads the canvas, selects
// marker-colored nodes, drops everything the tracker already knows, and hands
// the remaining batch to the configured sink. On sink success (and outside
// dry-run) the batch is recorded in the tracker so later cycles skip it.
//
// The runner is strictly sequential. [Runner.RunOnce] performs exactly one
// cycle; [Runner.Watch] performs a startup cycle and then one cycle per
// trigger, never overlapping. Cycle errors are reported but do not stop the
// watch loop: a malformed canvas or a failed push leaves the tracker
// untouched and the next trigger simply retries.
//
// # Usage
//
//	r, err := pipeline.NewRunner(pipeline.Options{CanvasPath: path}, tr, snk, logger)
//	if err != nil {
//	    return err
//	}
//	stats, err := r.RunOnce(ctx)
package pipeline
