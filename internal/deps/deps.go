// Package deps lists the files a scene compile reads.
package deps

import (
	"context"
	"strings"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/scene"
)

// Reader loads a scene by path.
type Reader interface {
	ReadScene(ctx context.Context, path string) (*scene.Scene, error)
}

// Inputs returns the paths the compile of s reads directly, in declaration
// order without duplicates: referenced templates, legacy spine scenes,
// particle effects and generic resources.
func Inputs(s *scene.Scene) []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(p string) {
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, p := range Templates(s) {
		add(p)
	}
	for _, f := range s.SpineScenes {
		add(f.SpineScene)
	}
	for _, f := range s.Particlefxs {
		add(f.Particlefx)
	}
	for _, f := range s.Resources {
		add(f.Path)
	}
	return out
}

// Templates returns the distinct template paths referenced by the default
// layout nodes of s.
func Templates(s *scene.Scene) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, n := range s.Nodes {
		if !n.IsTemplate() || n.Template == "" {
			continue
		}
		if _, ok := seen[n.Template]; ok {
			continue
		}
		seen[n.Template] = struct{}{}
		out = append(out, n.Template)
	}
	return out
}

// Closure returns path followed by every input its compile reads,
// including those of referenced templates, transitively. Each template is
// read once.
func Closure(ctx context.Context, r Reader, path string) ([]string, error) {
	w := &walker{
		reader: r,
		seen:   map[string]struct{}{path: {}},
		out:    []string{path},
	}
	if err := w.visit(ctx, path, []string{path}); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Build inputs collected.", "scene", path, "count", len(w.out))
	return w.out, nil
}

type walker struct {
	reader Reader
	seen   map[string]struct{}
	out    []string
}

func (w *walker) visit(ctx context.Context, path string, stack []string) error {
	s, err := w.reader.ReadScene(ctx, path)
	if err != nil {
		return err
	}

	templates := map[string]struct{}{}
	for _, t := range Templates(s) {
		templates[t] = struct{}{}
	}

	for _, in := range Inputs(s) {
		if _, ok := templates[in]; ok {
			for _, p := range stack {
				if p == in {
					chain := strings.Join(append(append([]string{}, stack...), in), " -> ")
					return scene.NewCompileError(path, scene.ErrCyclicTemplate, in,
						"template reference cycle: %s", chain)
				}
			}
		}
		if _, ok := w.seen[in]; ok {
			continue
		}
		w.seen[in] = struct{}{}
		w.out = append(w.out, in)

		if _, ok := templates[in]; ok {
			if err := w.visit(ctx, in, append(stack, in)); err != nil {
				return err
			}
		}
	}
	return nil
}
