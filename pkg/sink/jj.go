package sink

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/canvascast/pkg/errors"
	"github.com/matzehuels/canvascast/pkg/syndicate"
)

// JJConfig configures a JJSink.
type JJConfig struct {
	// RepoPath is the jj repository root. Must exist and be a directory.
	RepoPath string
	// Bookmark is the bookmark to insert after and advance (e.g. "main").
	Bookmark string
	// Remote is the remote to push to (e.g. "origin").
	Remote string
	// Folder is the directory within the repository for microblog files
	// (e.g. "t"). It also determines the href prefix of cross-references.
	Folder string
}

// commandFunc executes an external jj invocation in dir and returns stdout.
// Swappable in tests to simulate step failures.
type commandFunc func(ctx context.Context, dir string, args ...string) (string, error)

// JJSink publishes batches to a Jujutsu repository. Each successful publish
// is one new change positioned after the configured bookmark, containing one
// markdown file per item, after which the bookmark is advanced and pushed.
type JJSink struct {
	cfg    JJConfig
	logger *log.Logger
	run    commandFunc
	now    func() time.Time
}

// NewJJSink validates the configuration and creates the sink. The repository
// path must exist and be a directory; both failures are construction-time
// configuration errors, not per-cycle ones.
func NewJJSink(cfg JJConfig, logger *log.Logger) (*JJSink, error) {
	info, err := os.Stat(cfg.RepoPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository path %s", cfg.RepoPath)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "repository path is not a directory: %s", cfg.RepoPath)
	}
	if cfg.Bookmark == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "bookmark must not be empty")
	}
	if cfg.Remote == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "remote must not be empty")
	}
	if cfg.Folder == "" {
		cfg.Folder = "t"
	}
	if logger == nil {
		logger = log.Default()
	}
	return &JJSink{
		cfg:    cfg,
		logger: logger,
		run:    execJJ,
		now:    time.Now,
	}, nil
}

// Name returns "jj".
func (s *JJSink) Name() string { return NameJJ }

// Publish runs the jj publish sequence for the batch:
//
//	jj git fetch
//	jj new --insert-after <bookmark> -m <message>
//	write one file per item under <repo>/<folder>/
//	jj bookmark move <bookmark>
//	jj git push --remote <remote> --bookmark <bookmark>
//
// The sequence aborts at the first failing step; earlier steps are not
// rolled back. With dryRun set, commands and files are logged instead of
// executed and written.
func (s *JJSink) Publish(ctx context.Context, batch syndicate.Batch, dryRun bool) error {
	s.logger.Info("publishing to jj repository", "items", len(batch), "repo", s.cfg.RepoPath)
	if len(batch) == 0 {
		return nil
	}

	if err := s.runJJ(ctx, dryRun, "git", "fetch"); err != nil {
		return err
	}

	slugs := slugsFor(batch)
	message := CommitMessage(batch, slugs)

	if err := s.runJJ(ctx, dryRun, "new", "--insert-after", s.cfg.Bookmark, "-m", message); err != nil {
		return err
	}

	date := s.now()
	for id, item := range batch {
		filename := Filename(slugs[id], id)
		contents := RenderPost(item, batch, slugs, s.hrefPrefix(), date)
		if err := s.writeFile(filename, contents, dryRun); err != nil {
			return err
		}
	}

	if err := s.runJJ(ctx, dryRun, "bookmark", "move", s.cfg.Bookmark); err != nil {
		return err
	}
	if err := s.runJJ(ctx, dryRun, "git", "push", "--remote", s.cfg.Remote, "--bookmark", s.cfg.Bookmark); err != nil {
		return err
	}

	s.logger.Info("published to jj repository", "items", len(batch), "bookmark", s.cfg.Bookmark)
	return nil
}

// hrefPrefix derives the link prefix from the repository folder, e.g. "/t/".
func (s *JJSink) hrefPrefix() string {
	return "/" + path.Clean(filepath.ToSlash(s.cfg.Folder)) + "/"
}

// runJJ executes one jj step, or logs it in dry-run mode.
func (s *JJSink) runJJ(ctx context.Context, dryRun bool, args ...string) error {
	display := "jj " + strings.Join(args, " ")
	if dryRun {
		s.logger.Info("dry-run: would execute", "command", display)
		return nil
	}

	s.logger.Debug("executing", "command", display)
	if _, err := s.run(ctx, s.cfg.RepoPath, args...); err != nil {
		return errors.Wrap(errors.ErrCodeCommandFailed, err, "%s", display)
	}
	return nil
}

// writeFile writes one item file under the repository folder, creating the
// folder if needed.
func (s *JJSink) writeFile(filename, contents string, dryRun bool) error {
	target := filepath.Join(s.cfg.RepoPath, s.cfg.Folder, filename)
	if dryRun {
		s.logger.Info("dry-run: would write", "file", target, "bytes", len(contents))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", filepath.Dir(target))
	}
	if err := os.WriteFile(target, []byte(contents), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", target)
	}
	s.logger.Debug("wrote file", "file", target)
	return nil
}

// execJJ is the production commandFunc: it runs the jj binary in dir and
// surfaces stderr in the error on non-zero exit.
func execJJ(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "jj", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", errors.Wrap(errors.ErrCodeCommandFailed, err, "%s", msg)
		}
		return "", err
	}
	return stdout.String(), nil
}

// Ensure JJSink implements Sink.
var _ Sink = (*JJSink)(nil)
