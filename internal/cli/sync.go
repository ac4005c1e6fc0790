package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/canvascast/pkg/errors"
)

// syncCommand creates the sync command: a single publish cycle, no watching.
func (c *CLI) syncCommand() *cobra.Command {
	opts := &commonOpts{}

	cmd := &cobra.Command{
		Use:   "sync [file.canvas]",
		Short: "Publish new marked nodes once",
		Long: `Run one publish cycle: read the canvas, select marker-colored text nodes,
skip everything already published, and send the rest to the configured sink.

Examples:
  canvascast sync notes.canvas
  canvascast sync notes.canvas --dry-run
  canvascast sync notes.canvas --sink dir --config canvascast.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.sync(cmd.Context(), opts, args)
		},
	}

	addCommonFlags(cmd, opts)
	return cmd
}

func (c *CLI) sync(ctx context.Context, opts *commonOpts, args []string) error {
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

	p := newProgress(c.Logger)
	stats, err := r.RunOnce(ctx)
	if err != nil {
		// The publish succeeded but the dedupe set could not be persisted.
		// The in-memory set already holds the IDs, so don't fail the run.
		if errors.Is(err, errors.ErrCodeStorage) && stats.Published > 0 {
			printWarning("Published, but persisting the tracker failed: %v", errors.UserMessage(err))
		} else {
			return err
		}
	}
	p.done("Cycle complete")

	switch {
	case stats.Published == 0:
		printInfo("No new items")
		printDetail("%d selected, %d already published", stats.Selected, stats.Skipped)
	case opts.dryRun:
		printSuccess("Would publish %d item(s)", stats.Published)
		printDetail("dry run, nothing was marked as published")
	default:
		printSuccess("Published %d item(s)", stats.Published)
		printDetail("%d selected, %d already published", stats.Selected, stats.Skipped)
	}
	return nil
}
