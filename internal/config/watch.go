package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/doccore/internal/logging"
)

// reloadDelay coalesces the bursts of events editors produce on save.
const reloadDelay = 50 * time.Millisecond

// Watch reloads the settings file at path whenever it is written, created or
// renamed into place, and calls onChange with the new settings. Files that
// fail to load are logged and skipped; the previous settings stay in effect.
//
// onChange runs on the watcher's goroutine. Watching stops when ctx is done.
func Watch(ctx context.Context, path string, logger *logging.Logger, onChange func(Settings)) error {
	if logger == nil {
		logger = logging.Null()
	}
	logger = logger.WithComponent("config")

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	// The directory is watched so saves that replace the file are seen.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer w.Close()

		timer := time.NewTimer(reloadDelay)
		timer.Stop()

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
					continue
				}
				timer.Reset(reloadDelay)

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)

			case <-timer.C:
				s, err := Load(abs)
				if err != nil {
					logger.Error("reload failed: %v", err)
					continue
				}
				logger.Info("reloaded %s", abs)
				onChange(s)
			}
		}
	}()

	return nil
}
