package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/descape/descape/internal/logger"
)

// Watch re-cleans markdown files as they change under root until ctx is
// cancelled. onFile is invoked with each processed file's outcome.
// Writes performed by the runner itself do not loop: cleaning is
// idempotent, so the follow-up event finds nothing to change and no
// write happens.
func (r *Runner) Watch(ctx context.Context, root string, onFile func(FileResult)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", root, err)
	}

	if info.IsDir() {
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("watching %s: %w", root, err)
		}
	} else {
		if err := watcher.Add(filepath.Dir(root)); err != nil {
			return fmt.Errorf("watching %s: %w", root, err)
		}
	}

	logger.Info("watching for changes", "path", root)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			// New directories need their own watch.
			if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
				if err := watcher.Add(event.Name); err != nil {
					logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
				continue
			}

			if !r.matchesExtension(event.Name) {
				continue
			}
			logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			fr := r.ProcessFile(event.Name)
			if onFile != nil {
				onFile(fr)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
