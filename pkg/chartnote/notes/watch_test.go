package notes

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/chartnote-go/internal/logger"
)

func waitEvent(t *testing.T, w *Watcher, want string) Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				t.Fatal("event channel closed")
			}
			if ev.Path == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("no event for %s", want)
		}
	}
}

func TestWatcher(t *testing.T) {
	root := t.TempDir()
	w, err := NewWatcher(logger.Discard(), root, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	note := filepath.Join(w.root, "chart.md")
	if err := os.WriteFile(note, []byte("```d3\n```\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if ev := waitEvent(t, w, note); ev.Removed {
		t.Errorf("write event Removed = true, want false")
	}

	if err := os.Remove(note); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if ev := waitEvent(t, w, note); !ev.Removed {
		t.Errorf("remove event Removed = false, want true")
	}
}

func TestWatcherNewDirectory(t *testing.T) {
	root := t.TempDir()
	w, err := NewWatcher(logger.Discard(), root, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	sub := filepath.Join(w.root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	// Give the watcher time to register the new directory.
	time.Sleep(200 * time.Millisecond)

	note := filepath.Join(sub, "n.md")
	if err := os.WriteFile(note, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	waitEvent(t, w, note)
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(logger.Discard(), t.TempDir(), 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(5 * time.Second):
		t.Error("event channel not closed")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(logger.Discard(), filepath.Join(t.TempDir(), "missing"), time.Millisecond); err == nil {
		t.Error("NewWatcher() expected error")
	}
}
