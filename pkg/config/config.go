package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/canvascast/pkg/canvas"
	"github.com/matzehuels/canvascast/pkg/errors"
	"github.com/matzehuels/canvascast/pkg/sink"
	"github.com/matzehuels/canvascast/pkg/tracker"
	"github.com/matzehuels/canvascast/pkg/watch"
)

// Tracker backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Duration is a time.Duration that unmarshals from TOML strings like "750ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the full runtime configuration.
type Config struct {
	// Canvas is the watched canvas file. Usually given as a CLI argument;
	// the file setting is a fallback.
	Canvas string `toml:"canvas"`

	// MarkerColor selects which nodes get published. A JSON Canvas preset
	// digit ("1" through "6") or a "#rrggbb" literal.
	MarkerColor string `toml:"marker_color"`

	// Sink names the publish destination, "jj" or "dir".
	Sink string `toml:"sink"`

	// Debounce is the quiet period between a file change and a publish
	// cycle.
	Debounce Duration `toml:"debounce"`

	JJ      JJ           `toml:"jj"`
	Dir     Dir          `toml:"dir"`
	Tracker TrackerStore `toml:"tracker"`
}

// JJ configures the Jujutsu repository sink.
type JJ struct {
	Repo     string `toml:"repo"`
	Bookmark string `toml:"bookmark"`
	Remote   string `toml:"remote"`
	Folder   string `toml:"folder"`
}

// Dir configures the plain-directory sink.
type Dir struct {
	Path       string `toml:"path"`
	LinkPrefix string `toml:"link_prefix"`
}

// TrackerStore configures where the published set is persisted.
type TrackerStore struct {
	// Backend is "file", "redis" or "none".
	Backend string `toml:"backend"`
	// Path is the file backend's location. Empty means the per-user data
	// directory.
	Path  string `toml:"path"`
	Redis Redis  `toml:"redis"`
}

// Redis holds connection settings for the redis tracker backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MarkerColor: canvas.ColorRed,
		Sink:        sink.NameJJ,
		Debounce:    Duration(watch.DefaultDebounce),
		JJ: JJ{
			Bookmark: "main",
			Remote:   "origin",
			Folder:   "t",
		},
		Dir: Dir{
			LinkPrefix: sink.DefaultLinkPrefix,
		},
		Tracker: TrackerStore{
			Backend: BackendFile,
			Redis: Redis{
				Addr: "localhost:6379",
				Key:  tracker.DefaultRedisKey,
			},
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path. An empty
// path skips the file entirely; a named file must exist and parse. Unknown
// keys are rejected so typos fail loudly instead of silently using a default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks the settings that do not depend on the file system. Sink
// constructors do their own path validation later.
func (c *Config) Validate() error {
	if !validMarkerColor(c.MarkerColor) {
		return errors.New(errors.ErrCodeInvalidConfig,
			"marker_color %q is neither a preset digit nor #rrggbb", c.MarkerColor)
	}
	switch c.Sink {
	case sink.NameJJ, sink.NameDir:
	default:
		return errors.New(errors.ErrCodeInvalidSink, "unknown sink %q (want %q or %q)",
			c.Sink, sink.NameJJ, sink.NameDir)
	}
	switch c.Tracker.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown tracker backend %q (want %q, %q or %q)",
			c.Tracker.Backend, BackendFile, BackendRedis, BackendNone)
	}
	if c.Debounce < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "debounce must not be negative")
	}
	return nil
}

// TrackerPath returns the configured file-backend path, falling back to the
// per-user data directory ($XDG_DATA_HOME or ~/.local/share).
func (c *Config) TrackerPath() (string, error) {
	if c.Tracker.Path != "" {
		return c.Tracker.Path, nil
	}
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "resolve home directory")
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "canvascast", "published.json"), nil
}

// validMarkerColor accepts the JSON Canvas preset digits and hex literals.
func validMarkerColor(s string) bool {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '6' {
		return true
	}
	if len(s) == 7 && s[0] == '#' {
		for _, r := range s[1:] {
			switch {
			case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			default:
				return false
			}
		}
		return true
	}
	return false
}
