package app

import (
	"context"
	"fmt"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/deps"
)

// PrintDeps writes the transitive build inputs of every input scene to the
// app's output, one path per line. Each scene's block starts with the scene
// itself.
func (a *App) PrintDeps(ctx context.Context) error {
	scenes, err := a.Scenes()
	if err != nil {
		return err
	}
	for _, p := range scenes {
		inputs, err := deps.Closure(ctx, a.loader, p)
		if err != nil {
			return fmt.Errorf("failed to collect inputs of %s: %w", p, err)
		}
		for _, in := range inputs {
			if _, err := fmt.Fprintln(a.outW, in); err != nil {
				return err
			}
		}
	}
	ctxlog.FromContext(ctx).Debug("Dependency listing finished.", "scenes", len(scenes))
	return nil
}

// dependents maps every file path on disk read by the compile of a scene
// to the scenes that read it. Scenes whose inputs cannot be collected map
// only to themselves so that fixing them triggers a recompile.
func (a *App) dependents(ctx context.Context, scenes []string) map[string][]string {
	logger := ctxlog.FromContext(ctx)
	out := make(map[string][]string)
	for _, p := range scenes {
		inputs, err := deps.Closure(ctx, a.loader, p)
		if err != nil {
			logger.Warn("Failed to collect scene inputs.", "scene", p, "error", err)
			inputs = []string{p}
		}
		for _, in := range inputs {
			file := a.loader.Resolve(in)
			out[file] = append(out[file], p)
		}
	}
	return out
}
