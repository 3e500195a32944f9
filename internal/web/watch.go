package web

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AdrianaGRO/PyArch.dev/internal/logger"
)

const reloadDebounce = 200 * time.Millisecond

// Watch reloads the templates whenever a file under dir changes. It is meant
// for development with TEMPLATE_DIR pointing at the source tree. The watcher
// stops when ctx is done.
func (r *Renderer) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create template watcher: %w", err)
	}

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	logger.Info("Watching templates for changes", slog.String("dir", dir))
	go r.watchLoop(ctx, watcher)
	return nil
}

func (r *Renderer) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						logger.Warn("Failed to watch new template directory", slog.String("dir", event.Name), slog.String("error", err.Error()))
					}
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				if err := r.Reload(); err != nil {
					logger.Error("Template reload failed", slog.String("error", err.Error()))
					return
				}
				logger.Info("Templates reloaded", slog.String("trigger", event.Name))
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Template watcher error", slog.String("error", err.Error()))
		}
	}
}
