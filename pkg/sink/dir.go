package sink

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/canvascast/pkg/errors"
	"github.com/matzehuels/canvascast/pkg/syndicate"
)

// DefaultLinkPrefix is the href prefix DirSink uses when none is configured.
const DefaultLinkPrefix = "/t/"

// DirConfig configures a DirSink.
type DirConfig struct {
	// Path is the output directory. Created if it does not exist, but its
	// parent must exist.
	Path string
	// LinkPrefix overrides the href prefix of cross-references.
	// Defaults to DefaultLinkPrefix.
	LinkPrefix string
}

// DirSink writes rendered item files into a plain directory with no version
// control. Useful for previewing output or feeding a static site generator
// whose repository is managed elsewhere.
type DirSink struct {
	cfg    DirConfig
	logger *log.Logger
	now    func() time.Time
}

// NewDirSink validates the configuration and creates the sink.
func NewDirSink(cfg DirConfig, logger *log.Logger) (*DirSink, error) {
	if cfg.Path == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "output path must not be empty")
	}
	parent := filepath.Dir(cfg.Path)
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "parent of output path does not exist: %s", parent)
	}
	if cfg.LinkPrefix == "" {
		cfg.LinkPrefix = DefaultLinkPrefix
	}
	if logger == nil {
		logger = log.Default()
	}
	return &DirSink{cfg: cfg, logger: logger, now: time.Now}, nil
}

// Name returns "dir".
func (s *DirSink) Name() string { return NameDir }

// Publish writes one file per batch item. Unlike JJSink there are no
// external commands, but the same non-transactional policy applies: a write
// failure leaves earlier files in place and fails the batch.
func (s *DirSink) Publish(ctx context.Context, batch syndicate.Batch, dryRun bool) error {
	s.logger.Info("publishing to directory", "items", len(batch), "path", s.cfg.Path)
	if len(batch) == 0 {
		return nil
	}

	if !dryRun {
		if err := os.MkdirAll(s.cfg.Path, 0755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create %s", s.cfg.Path)
		}
	}

	slugs := slugsFor(batch)
	date := s.now()
	for id, item := range batch {
		target := filepath.Join(s.cfg.Path, Filename(slugs[id], id))
		contents := RenderPost(item, batch, slugs, s.cfg.LinkPrefix, date)

		if dryRun {
			s.logger.Info("dry-run: would write", "file", target, "bytes", len(contents))
			continue
		}
		if err := os.WriteFile(target, []byte(contents), 0644); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write %s", target)
		}
		s.logger.Debug("wrote file", "file", target)
	}
	return nil
}

// Ensure DirSink implements Sink.
var _ Sink = (*DirSink)(nil)
