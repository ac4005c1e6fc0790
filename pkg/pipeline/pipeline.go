package pipeline

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/canvascast/pkg/canvas"
	"github.com/matzehuels/canvascast/pkg/errors"
	"github.com/matzehuels/canvascast/pkg/sink"
	"github.com/matzehuels/canvascast/pkg/syndicate"
	"github.com/matzehuels/canvascast/pkg/tracker"
)

// Options configures a Runner.
type Options struct {
	// CanvasPath is the canvas file read at the start of every cycle.
	CanvasPath string

	// MarkerColor selects which nodes are published. Empty means the red
	// preset.
	MarkerColor string

	// DryRun makes every cycle side-effect free: the sink reports what it
	// would do and the tracker is never written.
	DryRun bool

	// Selector overrides the marker-color policy entirely. When set,
	// MarkerColor is ignored.
	Selector syndicate.Selector
}

// Stats summarizes one completed cycle.
type Stats struct {
	// Selected is how many nodes the selector accepted.
	Selected int
	// Skipped is how many selected nodes were already published.
	Skipped int
	// Published is how many items went to the sink this cycle.
	Published int
}

// Runner executes publish cycles against a single canvas file.
type Runner struct {
	opts    Options
	sel     syndicate.Selector
	tracker *tracker.Tracker
	sink    sink.Sink
	logger  *log.Logger
}

// ==============================================================================
// Construction
// ==============================================================================

// NewRunner validates the options and wires up a runner. The canvas file must
// exist at construction time; it may still disappear or turn malformed
// between cycles, which surfaces as a per-cycle error instead.
func NewRunner(opts Options, tr *tracker.Tracker, s sink.Sink, logger *log.Logger) (*Runner, error) {
	if err := canvas.ValidatePath(opts.CanvasPath); err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "runner requires a tracker")
	}
	if s == nil {
		return nil, errors.New(errors.ErrCodeInvalidSink, "runner requires a sink")
	}
	if logger == nil {
		logger = log.Default()
	}

	sel := opts.Selector
	if sel == nil {
		color := opts.MarkerColor
		if color == "" {
			color = canvas.ColorRed
		}
		sel = syndicate.DefaultSelector(color)
	}

	return &Runner{
		opts:    opts,
		sel:     sel,
		tracker: tr,
		sink:    s,
		logger:  logger,
	}, nil
}

// ==============================================================================
// Cycles
// ==============================================================================

// RunOnce performs a single publish cycle: read, select, dedupe, publish,
// record. An error leaves the tracker unchanged so the same batch is retried
// on the next cycle; the one exception is a tracker flush failure after a
// successful publish, which is returned but does not roll back the in-memory
// set.
func (r *Runner) RunOnce(ctx context.Context) (Stats, error) {
	c, err := canvas.ReadFile(r.opts.CanvasPath)
	if err != nil {
		return Stats{}, err
	}

	selected := syndicate.Collect(c, r.sel)
	batch := make(syndicate.Batch, len(selected))
	for id, item := range selected {
		if r.tracker.IsPublished(id) {
			continue
		}
		batch[id] = item
	}
	stats := Stats{
		Selected:  len(selected),
		Skipped:   len(selected) - len(batch),
		Published: len(batch),
	}

	if len(batch) == 0 {
		r.logger.Info("no new items", "selected", stats.Selected, "skipped", stats.Skipped)
		return stats, nil
	}

	r.logger.Info("publishing batch",
		"sink", r.sink.Name(),
		"items", len(batch),
		"dry_run", r.opts.DryRun)
	if err := r.sink.Publish(ctx, batch, r.opts.DryRun); err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInternal
		}
		return stats, errors.Wrap(code, err, "publish to %s", r.sink.Name())
	}

	if r.opts.DryRun {
		r.logger.Info("dry run, nothing marked published", "items", len(batch))
		return stats, nil
	}
	if err := r.tracker.MarkPublished(ctx, batch.IDs()); err != nil {
		// The publish went through; only persistence of the dedupe set
		// failed. The in-memory set still has the IDs.
		return stats, err
	}

	r.logger.Info("cycle complete", "published", stats.Published, "skipped", stats.Skipped)
	return stats, nil
}

// Watch runs one startup cycle and then one cycle per value received on
// triggers. It returns when ctx is cancelled or triggers is closed. Cycle
// errors are logged, not returned: the loop stays alive so a later change to
// the canvas can succeed.
func (r *Runner) Watch(ctx context.Context, triggers <-chan struct{}) error {
	r.logger.Info("startup pass", "canvas", r.opts.CanvasPath)
	if _, err := r.RunOnce(ctx); err != nil {
		r.logger.Error("cycle failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-triggers:
			if !ok {
				return nil
			}
			r.logger.Info("canvas changed", "canvas", r.opts.CanvasPath)
			if _, err := r.RunOnce(ctx); err != nil {
				r.logger.Error("cycle failed", "error", err)
			}
		}
	}
}
