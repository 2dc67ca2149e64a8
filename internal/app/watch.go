package app

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/sameunit/internal/adapters/watcher"
	"go.trai.ch/sameunit/internal/core/domain"
)

// Watch runs the scripts once and again whenever a script file below
// opts.Paths changes, until ctx is done. Run errors are logged, not returned.
func (a *App) Watch(ctx context.Context, opts RunOptions) error {
	if a.newWatcher == nil {
		return domain.ErrWatcherFailed
	}
	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	roots, explicit := watchRoots(defaultPaths(opts.Paths))
	for _, root := range roots {
		if err := w.Start(ctx, root); err != nil {
			return err
		}
	}

	pattern := opts.Pattern
	if pattern == "" {
		pattern = domain.DefaultScriptPattern
	}

	trigger := make(chan struct{}, 1)
	d := watcher.NewDebouncer(a.debounce, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	go func() {
		for event := range w.Events() {
			matched, _ := filepath.Match(pattern, filepath.Base(event.Path))
			if matched || explicit[event.Path] {
				d.Add(event.Path)
			}
		}
	}()

	for {
		a.runOnce(ctx, opts)
		a.logger.Info("Watching for changes...")

		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
		}
	}
}

func (a *App) runOnce(ctx context.Context, opts RunOptions) {
	if err := a.Run(ctx, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}

// watchRoots returns the absolute directories to watch for paths and the set
// of explicitly named files.
func watchRoots(paths []string) ([]string, map[string]bool) {
	var roots []string
	explicit := make(map[string]bool)
	seen := make(map[string]bool)

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		dir := abs
		if info, err := os.Stat(abs); err == nil && !info.IsDir() {
			explicit[abs] = true
			dir = filepath.Dir(abs)
		}
		if !seen[dir] {
			seen[dir] = true
			roots = append(roots, dir)
		}
	}
	return roots, explicit
}

