package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/sceneio"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

// watchState tracks which scenes depend on which files and which
// directories are registered with the watcher.
type watchState struct {
	watcher *fsnotify.Watcher
	index   map[string][]string
	dirs    map[string]struct{}
}

func (w *watchState) refresh(ctx context.Context, a *App) {
	logger := ctxlog.FromContext(ctx)

	scenes, err := a.Scenes()
	if err != nil {
		logger.Warn("Failed to list input scenes.", "error", err)
		return
	}
	w.index = make(map[string][]string)
	for file, users := range a.dependents(ctx, scenes) {
		w.index[filepath.Clean(file)] = users
	}

	for file := range w.index {
		dir := filepath.Dir(file)
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			logger.Warn("Failed to watch directory.", "dir", dir, "error", err)
			continue
		}
		w.dirs[dir] = struct{}{}
		logger.Debug("Watching directory.", "dir", dir)
	}
	for _, in := range a.config.Inputs {
		// New scene files dropped into an input directory become inputs.
		dir := filepath.Clean(in)
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := w.watcher.Add(dir); err == nil {
			w.dirs[dir] = struct{}{}
		}
	}
}

// Watch recompiles input scenes whenever a file their compile reads is
// written, created or renamed. It blocks until ctx is cancelled. Compile
// failures are logged and do not stop watching.
func (a *App) Watch(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	state := &watchState{watcher: watcher, dirs: make(map[string]struct{})}
	state.refresh(ctx, a)
	logger.Info("Watching for changes.", "files", len(state.index), "dirs", len(state.dirs))

	pending := make(map[string]struct{})
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped.")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(ev.Name)
			users, known := state.index[name]
			if !known && ev.Has(fsnotify.Create) && sceneio.IsSceneFile(name) {
				state.refresh(ctx, a)
				users = state.index[name]
			}
			if len(users) == 0 {
				continue
			}
			logger.Debug("Input changed.", "file", name, "op", ev.Op.String(), "scenes", len(users))
			for _, s := range users {
				pending[s] = struct{}{}
			}
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error.", "error", err)

		case <-timer.C:
			batch := make([]string, 0, len(pending))
			for s := range pending {
				batch = append(batch, s)
			}
			sort.Strings(batch)
			clear(pending)

			if _, err := a.compileScenes(ctx, batch); err != nil {
				logger.Error("Recompile failed.", "error", err)
			}
			// Edited scenes may reference different templates now.
			state.refresh(ctx, a)
		}
	}
}
