// Package cli implements the canvascast command-line interface.
//
// The main commands are:
//   - sync: run one publish cycle over a canvas file
//   - run: watch a canvas file and publish on change
//   - tracker: inspect or reset the persisted published-set
//
// All commands support --verbose (-v) for debug-level logging and --config
// for a TOML settings file; flags override the file, which overrides the
// built-in defaults.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/canvascast/pkg/buildinfo"
	"github.com/matzehuels/canvascast/pkg/config"
	"github.com/matzehuels/canvascast/pkg/errors"
	"github.com/matzehuels/canvascast/pkg/pipeline"
	"github.com/matzehuels/canvascast/pkg/sink"
	"github.com/matzehuels/canvascast/pkg/tracker"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "canvascast"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Canvascast syndicates marked canvas nodes as microblog posts",
		Long:         `Canvascast watches an Obsidian JSON Canvas file, selects marker-colored text nodes, and publishes each one exactly once to a configured destination.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.syncCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.trackerCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Flags
// =============================================================================

// commonOpts holds the flags shared by sync and run.
type commonOpts struct {
	configPath  string
	sinkName    string
	markerColor string
	dryRun      bool
}

func addCommonFlags(cmd *cobra.Command, opts *commonOpts) {
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&opts.sinkName, "sink", "", "publish destination (jj or dir)")
	cmd.Flags().StringVar(&opts.markerColor, "marker-color", "", `node color that marks posts ("1"-"6" or #rrggbb)`)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "log what would be published without side effects")
}

// loadConfig assembles the effective configuration: defaults, then the TOML
// file, then flags.
func (c *CLI) loadConfig(opts *commonOpts) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.sinkName != "" {
		cfg.Sink = opts.sinkName
	}
	if opts.markerColor != "" {
		cfg.MarkerColor = opts.markerColor
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// canvasPath picks the canvas file from the positional argument or, failing
// that, the config file.
func canvasPath(cfg config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Canvas != "" {
		return cfg.Canvas, nil
	}
	return "", errors.New(errors.ErrCodeInvalidPath,
		"no canvas file given (pass one as an argument or set canvas in the config)")
}

// =============================================================================
// Component Factories
// =============================================================================

// newTracker builds the published-set tracker for the configured backend.
func (c *CLI) newTracker(ctx context.Context, cfg config.Config) (*tracker.Tracker, error) {
	store, err := c.newTrackerStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return tracker.New(ctx, store)
}

func (c *CLI) newTrackerStore(ctx context.Context, cfg config.Config) (tracker.Store, error) {
	switch cfg.Tracker.Backend {
	case config.BackendNone:
		return tracker.NewNullStore(), nil
	case config.BackendRedis:
		return tracker.NewRedisStore(ctx, tracker.RedisConfig{
			Addr:     cfg.Tracker.Redis.Addr,
			Password: cfg.Tracker.Redis.Password,
			DB:       cfg.Tracker.Redis.DB,
			Key:      cfg.Tracker.Redis.Key,
		})
	default:
		path, err := cfg.TrackerPath()
		if err != nil {
			return nil, err
		}
		return tracker.NewFileStore(path)
	}
}

// newSink builds the configured publish destination.
func (c *CLI) newSink(cfg config.Config) (sink.Sink, error) {
	switch cfg.Sink {
	case sink.NameDir:
		return sink.NewDirSink(sink.DirConfig{
			Path:       cfg.Dir.Path,
			LinkPrefix: cfg.Dir.LinkPrefix,
		}, c.Logger)
	default:
		return sink.NewJJSink(sink.JJConfig{
			RepoPath: cfg.JJ.Repo,
			Bookmark: cfg.JJ.Bookmark,
			Remote:   cfg.JJ.Remote,
			Folder:   cfg.JJ.Folder,
		}, c.Logger)
	}
}

// newRunner wires config, tracker and sink into a pipeline runner. The
// returned tracker must be closed by the caller.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, canvas string, dryRun bool) (*pipeline.Runner, *tracker.Tracker, error) {
	tr, err := c.newTracker(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	snk, err := c.newSink(cfg)
	if err != nil {
		_ = tr.Close()
		return nil, nil, err
	}
	r, err := pipeline.NewRunner(pipeline.Options{
		CanvasPath:  canvas,
		MarkerColor: cfg.MarkerColor,
		DryRun:      dryRun,
	}, tr, snk, c.Logger)
	if err != nil {
		_ = tr.Close()
		return nil, nil, err
	}
	return r, tr, nil
}

// parseDebounce resolves the effective quiet period: an explicit flag beats
// the config file.
func parseDebounce(flagValue time.Duration, cfg config.Config) time.Duration {
	if flagValue > 0 {
		return flagValue
	}
	return cfg.Debounce.Std()
}
