package notes

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ukaji3/chartnote-go/internal/logger"
)

// Event reports a note that changed on disk.
type Event struct {
	Path    string
	Removed bool
}

// Watcher reports note changes below a vault directory. Bursts of writes to
// the same note are coalesced into one event per debounce window.
type Watcher struct {
	log      *logger.Logger
	base     *fsnotify.Watcher
	root     string
	debounce time.Duration
	events   chan Event
	done     chan struct{}
	once     sync.Once
}

// NewWatcher starts watching root and all its non-hidden subdirectories.
func NewWatcher(log *logger.Logger, root string, debounce time.Duration) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		log.Debug("Unable to create absolute path", logger.Fields{"path": root})
		return nil, err
	}
	base, err := fsnotify.NewWatcher()
	if err != nil {
		log.Debug("Unable to create watcher", logger.Fields{"path": absRoot})
		return nil, err
	}
	w := &Watcher{
		log:      log,
		base:     base,
		root:     absRoot,
		debounce: debounce,
		events:   make(chan Event),
		done:     make(chan struct{}),
	}
	if err := w.addTree(absRoot); err != nil {
		base.Close()
		return nil, err
	}
	go w.eventLoop()
	return w, nil
}

// Events returns the channel of note changes. It is closed after Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.once.Do(func() { close(w.done) })
	return nil
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.base.Add(path); err != nil {
			w.log.Warn("Unable to watch directory", logger.Fields{"path": path, "error": err.Error()})
		}
		return nil
	})
}

func (w *Watcher) eventLoop() {
	defer close(w.events)
	defer w.base.Close()

	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.base.Events:
			if !ok {
				return
			}
			if w.processEvent(ev, pending) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.base.Errors:
			if !ok {
				return
			}
			w.log.Warn("Watcher error", logger.Fields{"error": err.Error()})
		case <-timer.C:
			if !w.flush(pending) {
				return
			}
		}
	}
}

// processEvent records a pending note change; it reports whether one was
// recorded.
func (w *Watcher) processEvent(ev fsnotify.Event, pending map[string]bool) bool {
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if !isHidden(filepath.Base(ev.Name)) {
				w.log.Debug("Watching new directory", logger.Fields{"path": ev.Name})
				if err := w.addTree(ev.Name); err != nil {
					w.log.Warn("Unable to watch new directory", logger.Fields{"path": ev.Name, "error": err.Error()})
				}
			}
			return false
		}
	}
	if !IsNote(ev.Name) {
		return false
	}
	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		pending[ev.Name] = true
	case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
		pending[ev.Name] = false
	default:
		return false
	}
	return true
}

// flush emits pending events in path order. It returns false when the
// watcher was closed meanwhile.
func (w *Watcher) flush(pending map[string]bool) bool {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		select {
		case w.events <- Event{Path: p, Removed: pending[p]}:
		case <-w.done:
			return false
		}
		delete(pending, p)
	}
	return true
}
