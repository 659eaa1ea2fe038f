package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vk/scenec/internal/codec"
	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/fsutil"
	"github.com/vk/scenec/internal/sceneio"
)

// Output describes one compiled scene.
type Output struct {
	Input  string // project path of the source scene
	Path   string // file written on disk
	Nodes  int
	Result codec.Result
}

// Scenes expands the configured inputs into sorted, distinct project paths.
// An input is a file or a directory on disk; when nothing exists at the
// given path it is resolved as a project path instead. Directories
// contribute every scene file beneath them.
func (a *App) Scenes() ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	add := func(osPath string) error {
		p, err := a.loader.ProjectPath(osPath)
		if err != nil {
			return fmt.Errorf("failed to resolve input %s: %w", osPath, err)
		}
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
		return nil
	}

	for _, in := range a.config.Inputs {
		osPath := in
		info, err := os.Stat(osPath)
		if err != nil {
			osPath = a.loader.Resolve(in)
			if info, err = os.Stat(osPath); err != nil {
				return nil, fmt.Errorf("failed to find input %s: %w", in, err)
			}
		}

		if !info.IsDir() {
			if err := add(osPath); err != nil {
				return nil, err
			}
			continue
		}

		files, err := fsutil.FindFilesByExtension(osPath, sceneio.Extensions...)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", in, err)
		}
		for _, f := range files {
			if err := add(f); err != nil {
				return nil, err
			}
		}
	}

	sort.Strings(out)
	return out, nil
}

// OutputPath returns the file a compiled scene is written to.
func (a *App) OutputPath(projectPath string) string {
	name := filepath.FromSlash(sceneio.TrimExt(projectPath)) + a.codec.Extension()
	return filepath.Join(a.config.OutDir, name)
}

// Compile transforms the scene at projectPath and writes the encoded
// result below the output directory.
func (a *App) Compile(ctx context.Context, projectPath string) (*Output, error) {
	logger := ctxlog.FromContext(ctx)

	s, err := a.engine.TransformPath(ctx, projectPath)
	if err != nil {
		return nil, err
	}

	outPath := a.OutputPath(projectPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	res, err := codec.Encode(f, s, a.codec)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(outPath)
		return nil, fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	logger.Info("Scene compiled.",
		"input", projectPath,
		"output", outPath,
		"nodes", len(s.Nodes),
		"layouts", len(s.Layouts),
		"bytes", res.Bytes,
		"digest", res.Digest,
	)
	return &Output{Input: projectPath, Path: outPath, Nodes: len(s.Nodes), Result: res}, nil
}

// CompileAll compiles every input scene with at most WorkerCount scenes in
// flight. Outputs are returned in input order. The first failure cancels
// the remaining compiles.
func (a *App) CompileAll(ctx context.Context) ([]*Output, error) {
	scenes, err := a.Scenes()
	if err != nil {
		return nil, err
	}
	return a.compileScenes(ctx, scenes)
}

func (a *App) compileScenes(ctx context.Context, scenes []string) ([]*Output, error) {
	ctxlog.FromContext(ctx).Debug("Compiling scenes.", "count", len(scenes), "workers", a.config.WorkerCount)

	outputs := make([]*Output, len(scenes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)
	for i, p := range scenes {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := a.Compile(gctx, p)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
