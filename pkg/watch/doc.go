// Package watch turns file-system notifications into debounced triggers.
//
// # Overview
//
// A [Watcher] observes a single canvas file and emits one trigger on its
// Events channel after the file has changed and then stayed quiet for the
// configured debounce window. Editors typically produce bursts of writes
// (and some save atomically via rename), so the watcher observes the file's
// parent directory, filters events down to the watched path, and coalesces
// each burst into a single trigger.
//
// Errors from the underlying notification mechanism are logged and do not
// stop the watcher; only closing the mechanism ends the event stream.
//
// # Usage
//
//	w, err := watch.New(path, 2*time.Second, logger)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	go w.Run(ctx)
//	for range w.Events() {
//	    // one trigger per quiet-period
//	}
package watch
