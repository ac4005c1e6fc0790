package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/canvascast/pkg/watch"
)

// runCommand creates the run command: startup pass plus watch loop.
func (c *CLI) runCommand() *cobra.Command {
	opts := &commonOpts{}
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "run [file.canvas]",
		Short: "Watch a canvas file and publish on change",
		Long: `Run one startup cycle, then watch the canvas file and run another cycle
each time it changes. Bursts of writes within the debounce window collapse
into a single cycle. Cycle errors are logged and the loop keeps running;
stop with Ctrl-C.

Examples:
  canvascast run notes.canvas
  canvascast run notes.canvas --debounce 5s
  canvascast run notes.canvas --dry-run --sink dir`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), opts, debounce, args)
		},
	}

	addCommonFlags(cmd, opts)
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "quiet period after a change before publishing (overrides config)")
	return cmd
}

func (c *CLI) runWatch(ctx context.Context, opts *commonOpts, debounce time.Duration, args []string) error {
	cfg, err := c.loadConfig(opts)
	if err != nil {
		return err
	}
	path, err := canvasPath(cfg, args)
	if err != nil {
		return err
	}

	r, tr, err := c.newRunner(ctx, cfg, path, opts.dryRun)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	w, err := watch.New(path, parseDebounce(debounce, cfg), c.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	go w.Run(ctx)

	printInfo("Watching %s", path)
	if opts.dryRun {
		printDetail("dry run, nothing will be marked as published")
	}

	return r.Watch(ctx, w.Events())
}
