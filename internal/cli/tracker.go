package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/canvascast/pkg/config"
	"github.com/matzehuels/canvascast/pkg/errors"
	"github.com/matzehuels/canvascast/pkg/tracker"
)

// trackerCommand creates the tracker management command group.
func (c *CLI) trackerCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Manage the persisted published-set",
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")

	cmd.AddCommand(c.trackerPathCommand(&configPath))
	cmd.AddCommand(c.trackerListCommand(&configPath))
	cmd.AddCommand(c.trackerClearCommand(&configPath))

	return cmd
}

// trackerPathCommand creates the "tracker path" subcommand.
func (c *CLI) trackerPathCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the published-set is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			switch cfg.Tracker.Backend {
			case config.BackendRedis:
				key := cfg.Tracker.Redis.Key
				if key == "" {
					key = tracker.DefaultRedisKey
				}
				fmt.Printf("redis://%s/%d %s\n", cfg.Tracker.Redis.Addr, cfg.Tracker.Redis.DB, key)
			case config.BackendNone:
				fmt.Println("(not persisted)")
			default:
				path, err := cfg.TrackerPath()
				if err != nil {
					return err
				}
				fmt.Println(path)
			}
			return nil
		},
	}
}

// trackerListCommand creates the "tracker list" subcommand.
func (c *CLI) trackerListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List published node IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			tr, err := c.newTracker(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = tr.Close() }()

			ids := tr.IDs()
			if len(ids) == 0 {
				printInfo("No published items")
				return nil
			}
			sort.Strings(ids)
			printInfo("%d published item(s)", len(ids))
			for _, id := range ids {
				printItem(id)
			}
			return nil
		},
	}
}

// trackerClearCommand creates the "tracker clear" subcommand. A cleared set
// means every marked node republishes on the next cycle.
func (c *CLI) trackerClearCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget every published node ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			store, err := c.newTrackerStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			switch s := store.(type) {
			case *tracker.FileStore:
				if err := s.Clear(); err != nil {
					return err
				}
				printSuccess("Cleared published-set")
				printDetail("File: %s", s.Path())
			case *tracker.RedisStore:
				if err := s.Clear(cmd.Context()); err != nil {
					return err
				}
				printSuccess("Cleared published-set")
				printDetail("Key: %s", s.Key())
			case *tracker.NullStore:
				printInfo("Tracker backend %q has nothing to clear", config.BackendNone)
			default:
				return errors.New(errors.ErrCodeInvalidConfig,
					"tracker backend %q does not support clearing", cfg.Tracker.Backend)
			}
			return nil
		},
	}
}
