package codebase

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 100 * time.Millisecond

// FileWatcher keeps a Codebase in sync with the file system. Events for
// the same path within the debounce interval are coalesced.
type FileWatcher struct {
	codebase *Codebase
	watcher  *fsnotify.Watcher
	debounce time.Duration
	stopCh   chan struct{}
	done     chan struct{}

	mu      sync.Mutex
	pending map[string]fsnotify.Op

	// OnChange, if set, is called after the index was updated for a path.
	OnChange func(path string)
}

func NewFileWatcher(c *Codebase) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		codebase: c,
		watcher:  w,
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
		pending:  make(map[string]fsnotify.Op),
	}, nil
}

func (w *FileWatcher) Start() error {
	if err := w.addTree(w.codebase.RootDir()); err != nil {
		return err
	}
	go w.run()
	return nil
}

func (w *FileWatcher) Stop() {
	close(w.stopCh)
	<-w.done
	w.watcher.Close()
}

func (w *FileWatcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			log.Warningf("watch %s: %v", path, err)
		}
		return nil
	})
}

func (w *FileWatcher) run() {
	defer close(w.done)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warningf("watcher: %v", err)
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *FileWatcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				log.Warningf("watch %s: %v", event.Name, err)
			}
			return
		}
	}
	if !w.codebase.Accepts(event.Name) {
		return
	}
	w.mu.Lock()
	w.pending[event.Name] |= event.Op
	w.mu.Unlock()
}

func (w *FileWatcher) flush() {
	w.mu.Lock()
	pending := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.mu.Unlock()

	for path, op := range pending {
		if _, err := os.Stat(path); err != nil || op.Has(fsnotify.Remove) && !op.Has(fsnotify.Create) {
			log.Debugf("removed %s", path)
			w.codebase.RemoveFile(path)
		} else {
			log.Debugf("changed %s", path)
			if err := w.codebase.ScanFile(path); err != nil {
				log.Warningf("rescan %s: %v", path, err)
				continue
			}
		}
		if w.OnChange != nil {
			w.OnChange(path)
		}
	}
}
