// Package watch re-extracts tagged comments from files as they change
// on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"tdl/pkg/core"
)

// Handler receives the comments re-extracted from a changed file. It
// is called with an empty slice when a file no longer contains any
// tagged comments.
type Handler func(path string, comments []core.Comment)

// Watcher monitors a directory tree and re-extracts tagged comments
// from supported files as they are written.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	root        string
	opts        core.Options
	excludeDirs []string
	handler     Handler
	logger      *zap.Logger
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// New creates a watcher over root. excludeDirs follows the same
// semantics as core.CollectFiles.
func New(root string, opts core.Options, excludeDirs []string, handler Handler, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if excludeDirs == nil {
		excludeDirs = core.DefaultExcludeDirs
	}

	return &Watcher{
		watcher:     fsw,
		root:        root,
		opts:        opts,
		excludeDirs: excludeDirs,
		handler:     handler,
		logger:      logger,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond, // absorb rapid editor saves
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start registers the directory tree and begins processing events in a
// goroutine. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addDirs(w.root); err != nil {
		// The event loop never launched; leave the watcher stoppable
		// and release the fsnotify handle.
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		_ = w.watcher.Close()
		return err
	}
	w.logger.Info("watching for changes", zap.String("root", w.root))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.watcher.Close()
}

// addDirs registers dir and every non-excluded subdirectory.
func (w *Watcher) addDirs(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && slices.Contains(w.excludeDirs, d.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}

	// New directories must be registered to keep the tree covered.
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		if event.Op.Has(fsnotify.Create) && !slices.Contains(w.excludeDirs, filepath.Base(event.Name)) {
			if err := w.addDirs(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
			}
		}
		return
	}

	// Files are only rescanned once content has been written; the
	// Create event can precede the first write.
	if !event.Op.Has(fsnotify.Write) {
		return
	}
	if _, ok := core.CommentCharFor(event.Name); !ok {
		return
	}
	if !w.shouldProcess(event.Name) {
		return
	}

	comments, err := core.ExtractComments(event.Name, w.opts)
	if err != nil {
		w.logger.Warn("failed to rescan file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.handler(event.Name, comments)
}

// shouldProcess debounces bursts of events for the same path.
func (w *Watcher) shouldProcess(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	for p, last := range w.debounceMap {
		if now.Sub(last) >= w.debounceDur {
			delete(w.debounceMap, p)
		}
	}
	if _, ok := w.debounceMap[path]; ok {
		return false
	}
	w.debounceMap[path] = now
	return true
}
