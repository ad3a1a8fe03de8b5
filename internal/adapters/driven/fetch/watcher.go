package fetch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/riklabs/rigveda-cli/internal/logger"
)

// debounceWindow coalesces the event bursts editors and sync tools
// produce when rewriting a file.
const debounceWindow = 500 * time.Millisecond

// Watcher observes a local data directory and fires a callback when any
// corpus JSON file changes, so cached snapshots can be invalidated.
type Watcher struct {
	watcher   *fsnotify.Watcher
	onChange  func()
	mu        sync.Mutex
	pending   *time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher starts watching the data directory (and the partition
// subdirectory when present). onChange runs debounced, on the watcher
// goroutine.
func NewWatcher(dir string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	// The partition subdirectory may not exist for legacy-only layouts.
	if sub := filepath.Join(dir, filepath.Dir(filepath.FromSlash(partitionPathFmt))); sub != dir {
		if err := fw.Add(sub); err != nil {
			logger.Debug("Not watching %s: %v", sub, err)
		}
	}

	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	logger.Info("Watching %s for corpus changes", dir)
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("Corpus file changed: %s", event.Name)
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// relevant filters for mutations of JSON files.
func relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}

// schedule arms the debounce timer, replacing any pending fire.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(debounceWindow, w.onChange)
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.pending != nil {
			w.pending.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}
