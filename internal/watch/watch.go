// Package watch re-runs an action when a file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last change before the
// action runs.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches one file. The parent directory is watched instead of
// the file itself so that editors which replace the file on save are
// still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *zap.Logger
	onChange func(context.Context)
}

// New creates a watcher for path that calls onChange after changes
// settle for debounce.
func New(path string, debounce time.Duration, log *zap.Logger, onChange func(context.Context)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		log:      log,
		onChange: onChange,
	}
}

// Run blocks until ctx is done, calling onChange from the calling
// goroutine. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.log.Info("watching", zap.String("path", w.path))

	tick := time.NewTicker(w.debounce / 4)
	defer tick.Stop()

	var last time.Time
	pending := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("file event", zap.String("op", ev.Op.String()))
			last = time.Now()
			pending = true

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))

		case now := <-tick.C:
			if pending && now.Sub(last) >= w.debounce {
				pending = false
				w.onChange(ctx)
			}
		}
	}
}
