package engine

import (
	"context"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/registry"
	"github.com/vk/scenec/internal/scene"
)

// Reader loads a scene by path. It owns all I/O; its errors are returned
// to the caller of Transform unchanged.
type Reader interface {
	ReadScene(ctx context.Context, path string) (*scene.Scene, error)
}

// Options controls a compile.
type Options struct {
	// Compiling enables compiled-extension rewriting and all resource
	// validation. When false the engine runs in editor (preview) mode.
	Compiling bool

	// Exists, when set, confirms that declared resource paths exist.
	// Only consulted when Compiling is true.
	Exists registry.ExistsFunc
}

// Engine expands templates and flattens scenes.
type Engine struct {
	reader Reader
	opts   Options
}

// New creates an engine reading referenced templates through reader.
func New(reader Reader, opts Options) *Engine {
	return &Engine{reader: reader, opts: opts}
}

// Transform compiles s into a flattened scene. s itself is not modified.
func (e *Engine) Transform(ctx context.Context, s *scene.Scene) (*scene.Scene, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scene transform started.", "scene", s.Path, "compiling", e.opts.Compiling)

	working, err := s.Clone()
	if err != nil {
		return nil, err
	}

	sess := newSession(e.reader)
	sess.push(s.Path)
	out, err := e.transform(ctx, sess, working, true)
	if err != nil {
		return nil, err
	}

	logger.Debug("Scene transform finished.",
		"scene", s.Path,
		"nodes", len(out.Nodes),
		"layouts", len(out.Layouts),
		"templates_read", sess.cache.Len(),
	)
	return out, nil
}

// TransformPath reads the scene at path with the engine's reader and
// compiles it. The read shares the run's cache with template reads.
func (e *Engine) TransformPath(ctx context.Context, path string) (*scene.Scene, error) {
	sess := newSession(e.reader)
	s, err := sess.cache.Read(ctx, e.reader, path)
	if err != nil {
		return nil, err
	}
	sess.push(path)
	return e.transform(ctx, sess, s, true)
}

func (e *Engine) newRegistry(path string) *registry.Registry {
	var opts []registry.Option
	if e.opts.Exists != nil {
		opts = append(opts, registry.WithExistenceCheck(e.opts.Exists))
	}
	return registry.New(path, e.opts.Compiling, opts...)
}
