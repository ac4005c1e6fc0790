package watch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestWatcher(t *testing.T, debounce time.Duration) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.canvas")
	if err := os.WriteFile(path, []byte(`{"nodes":[],"edges":[]}`), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, debounce, log.New(io.Discard))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w, path
}

func waitTrigger(t *testing.T, w *Watcher, timeout time.Duration) bool {
	t.Helper()
	select {
	case _, ok := <-w.Events():
		return ok
	case <-time.After(timeout):
		return false
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	w, path := newTestWatcher(t, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// A burst of writes within the quiet period yields exactly one trigger.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte(`{"nodes":[],"edges":[]}`), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !waitTrigger(t, w, 2*time.Second) {
		t.Fatal("expected a trigger after the burst settled")
	}

	// Quiet: no spurious second trigger.
	select {
	case <-w.Events():
		t.Fatal("unexpected trigger without file changes")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSeparateBurstsSeparateTriggers(t *testing.T) {
	w, path := newTestWatcher(t, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(path, []byte(`{"nodes":[],"edges":[]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if !waitTrigger(t, w, 2*time.Second) {
		t.Fatal("no trigger for first change")
	}

	if err := os.WriteFile(path, []byte(`{"nodes":[],"edges":[]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if !waitTrigger(t, w, 2*time.Second) {
		t.Fatal("no trigger for second change")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	w, path := newTestWatcher(t, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	sibling := filepath.Join(filepath.Dir(path), "other.txt")
	if err := os.WriteFile(sibling, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
		t.Fatal("sibling file change must not trigger")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherAtomicReplace(t *testing.T) {
	w, path := newTestWatcher(t, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Atomic save: write a temp file, rename over the target.
	tmp := filepath.Join(filepath.Dir(path), "notes.canvas.tmp")
	if err := os.WriteFile(tmp, []byte(`{"nodes":[],"edges":[]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	if !waitTrigger(t, w, 2*time.Second) {
		t.Fatal("atomic replace should trigger")
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	w, _ := newTestWatcher(t, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := New("/no/such/dir/notes.canvas", 0, log.New(io.Discard))
	if err == nil {
		t.Fatal("expected an error for a missing parent directory")
	}
}
