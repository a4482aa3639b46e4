package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func newTestWatcher(t *testing.T, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestNew(t *testing.T) {
	w := newTestWatcher(t)
	if w.debounce != 100*time.Millisecond {
		t.Errorf("default debounce = %v, want 100ms", w.debounce)
	}

	w = newTestWatcher(t, WithDebounce(20*time.Millisecond))
	if w.debounce != 20*time.Millisecond {
		t.Errorf("debounce = %v, want 20ms", w.debounce)
	}
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestConvertOp(t *testing.T) {
	tests := []struct {
		in     fsnotify.Op
		want   Operation
		wantOK bool
	}{
		{fsnotify.Write, OpWrite, true},
		{fsnotify.Create, OpCreate, true},
		{fsnotify.Create | fsnotify.Write, OpCreate, true},
		{fsnotify.Remove, OpRemove, true},
		{fsnotify.Rename, OpRename, true},
		{fsnotify.Chmod, 0, false},
	}

	for _, tt := range tests {
		got, ok := convertOp(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("convertOp(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestWatcher_WatchUnwatch(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)

	existing := filepath.Join(dir, "keys.toml")
	if err := os.WriteFile(existing, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(existing); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	// A file that does not exist yet can be watched for creation
	if err := w.Watch(filepath.Join(dir, "later.toml")); err != nil {
		t.Fatalf("Watch() for non-existent file error = %v", err)
	}
	if err := w.Watch(existing); err != nil {
		t.Errorf("repeated Watch() error = %v", err)
	}

	if files := w.WatchedFiles(); len(files) != 2 {
		t.Errorf("WatchedFiles() = %v, want 2 files", files)
	}

	if err := w.Unwatch(existing); err != nil {
		t.Errorf("Unwatch() error = %v", err)
	}
	if err := w.Unwatch(existing); !errors.Is(err, ErrNotWatching) {
		t.Errorf("expected ErrNotWatching, got %v", err)
	}

	if err := w.Watch(filepath.Join(dir, "missing", "keys.toml")); err == nil {
		t.Error("Watch() in a missing directory should fail")
	}
}

func TestWatcher_Closed(t *testing.T) {
	w := newTestWatcher(t)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := w.Watch(t.TempDir()); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("expected ErrWatcherClosed, got %v", err)
	}
}

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.toml")
	other := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t, WithDebounce(20*time.Millisecond))
	events := make(chan Event, 10)
	w.OnChange(func(ev Event) { events <- ev })
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	// Changes to unwatched files in the same directory are ignored
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("b"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case ev := <-events:
		want, _ := filepath.Abs(path)
		if ev.Path != want {
			t.Errorf("Path = %q, want %q", ev.Path, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	// Rapid writes are coalesced into one event
	select {
	case ev := <-events:
		t.Errorf("unexpected second event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestQueueEventCoalesces(t *testing.T) {
	w := newTestWatcher(t, WithDebounce(30*time.Millisecond))
	events := make(chan Event, 10)
	w.OnChange(func(ev Event) { events <- ev })

	w.queueEvent("/x/keys.toml", OpCreate)
	w.queueEvent("/x/keys.toml", OpWrite)
	w.queueEvent("/y/keys.toml", OpWrite)
	w.queueEvent("/y/keys.toml", OpRemove)

	got := map[string]Operation{}
	for i := 0; i < 2; i++ {
		select {
		case ev := <-events:
			got[ev.Path] = ev.Op
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for events")
		}
	}

	if got["/x/keys.toml"] != OpCreate {
		t.Errorf("create + write = %v, want create", got["/x/keys.toml"])
	}
	if got["/y/keys.toml"] != OpRemove {
		t.Errorf("write + remove = %v, want remove", got["/y/keys.toml"])
	}
}
