package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when no debounce is configured.
const DefaultDebounce = 2 * time.Second

// Watcher emits debounced change triggers for one file.
type Watcher struct {
	path     string
	debounce time.Duration
	fw       *fsnotify.Watcher
	events   chan struct{}
	logger   *log.Logger
}

// New creates a watcher for the given file. The file's parent directory is
// registered with the notification mechanism so atomic-save renames are
// seen; events for sibling files are filtered out.
func New(path string, debounce time.Duration, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		fw:       fw,
		events:   make(chan struct{}, 1),
		logger:   logger,
	}, nil
}

// Events returns the trigger channel. It carries at most one pending
// trigger; bursts arriving while a trigger is pending collapse into it. The
// channel is closed when Run returns.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Run consumes file-system notifications until ctx is cancelled or the
// underlying watcher is closed. It owns the debounce timer: every relevant
// event pushes the deadline out, and a trigger is emitted only once the file
// has been quiet for the full debounce window.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.events)

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("file event", "op", ev.Op.String(), "file", ev.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = timer.C
			} else {
				if !timer.Stop() {
					<-pending
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)

		case <-pending:
			timer = nil
			pending = nil
			select {
			case w.events <- struct{}{}:
			default:
				// A trigger is already queued; this burst rides along.
			}
		}
	}
}

// relevant reports whether a notification concerns the watched file and a
// content-affecting operation.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// Close shuts down the underlying notification mechanism. Run returns
// shortly after.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
