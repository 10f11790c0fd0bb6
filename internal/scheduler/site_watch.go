package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Silverados/sitenav/internal/logger"
)

// Trigger requests an out-of-band reload.
type Trigger interface {
	Trigger() bool
}

const watchOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// SiteWatcher triggers a reload when the site file changes on disk.
//
// It watches the parent directory rather than the file: editors and config
// management replace the file by rename, which drops a watch on the file
// itself.
type SiteWatcher struct {
	path     string
	trigger  Trigger
	logger   logger.Logger
	debounce time.Duration
}

// NewSiteWatcher creates a watcher for path. Bursts of events within debounce
// collapse into a single trigger.
func NewSiteWatcher(path string, trigger Trigger, log logger.Logger, debounce time.Duration) *SiteWatcher {
	return &SiteWatcher{
		path:     filepath.Clean(path),
		trigger:  trigger,
		logger:   log.With(logger.String("path", path)),
		debounce: debounce,
	}
}

// Run watches until ctx is done.
func (w *SiteWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.logger.Info("watching site file", logger.Duration("debounce", w.debounce))

	// Stopped timer; armed by the first relevant event.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("site file event", logger.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", logger.Error(err))

		case <-timer.C:
			if w.trigger.Trigger() {
				w.logger.Info("site file changed, reload triggered")
			} else {
				w.logger.Debug("site file changed, reload already pending")
			}

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *SiteWatcher) relevant(event fsnotify.Event) bool {
	return filepath.Clean(event.Name) == w.path && event.Op&watchOps != 0
}
