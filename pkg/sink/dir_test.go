package sink

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/canvascast/pkg/errors"
	"github.com/matzehuels/canvascast/pkg/syndicate"
)

func newTestDirSink(t *testing.T) (*DirSink, string) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out")

	s, err := NewDirSink(DirConfig{Path: out}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewDirSink: %v", err)
	}
	s.now = func() time.Time { return time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC) }
	return s, out
}

func TestNewDirSinkValidation(t *testing.T) {
	logger := log.New(io.Discard)

	if _, err := NewDirSink(DirConfig{}, logger); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("empty path should be INVALID_CONFIG, got %v", err)
	}
	if _, err := NewDirSink(DirConfig{Path: "/no/such/parent/out"}, logger); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("missing parent should be INVALID_CONFIG, got %v", err)
	}
}

func TestDirSinkPublish(t *testing.T) {
	s, out := newTestDirSink(t)

	batch := syndicate.Batch{
		"a": {ID: "a", Text: "Alpha note", OutNeighborIDs: []string{"b"}},
		"b": {ID: "b", Text: "Beta note", InNeighborIDs: []string{"a"}},
	}
	if err := s.Publish(context.Background(), batch, false); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "beta-note-b.md"))
	if err != nil {
		t.Fatalf("item file not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `title: "Beta note"`) {
		t.Errorf("content = %s", content)
	}
	// DirSink uses the default /t/ link prefix.
	if !strings.Contains(content, `href: "/t/alpha-note-a.md"`) {
		t.Errorf("cross-reference missing:\n%s", content)
	}
}

func TestDirSinkCustomLinkPrefix(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	s, err := NewDirSink(DirConfig{Path: out, LinkPrefix: "/notes/"}, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}

	batch := syndicate.Batch{
		"a": {ID: "a", Text: "one", OutNeighborIDs: []string{"b"}},
		"b": {ID: "b", Text: "two"},
	}
	if err := s.Publish(context.Background(), batch, false); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(out, "one-a.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `href: "/notes/two-b.md"`) {
		t.Errorf("custom prefix not applied:\n%s", data)
	}
}

func TestDirSinkDryRun(t *testing.T) {
	s, out := newTestDirSink(t)

	batch := syndicate.Batch{"a": {ID: "a", Text: "Dry note"}}
	if err := s.Publish(context.Background(), batch, true); err != nil {
		t.Fatalf("dry-run Publish should succeed: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("dry run created the output directory")
	}
}

func TestDirSinkRetryOverwritesFiles(t *testing.T) {
	s, out := newTestDirSink(t)
	batch := syndicate.Batch{"a": {ID: "a", Text: "Same note"}}

	if err := s.Publish(context.Background(), batch, false); err != nil {
		t.Fatal(err)
	}
	// The file name embeds the node ID, so a retried batch overwrites
	// instead of duplicating.
	if err := s.Publish(context.Background(), batch, false); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("entries = %d, want 1", len(entries))
	}
}

func TestDirSinkName(t *testing.T) {
	s, _ := newTestDirSink(t)
	if s.Name() != "dir" {
		t.Errorf("Name = %q", s.Name())
	}
}
