// Package sceneio reads scene files from a project directory. Scene paths
// inside scenes are project-absolute ("/gui/button.gui") and are resolved
// against the project root.
package sceneio

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/fsutil"
	"github.com/vk/scenec/internal/hcl"
	"github.com/vk/scenec/internal/jsonc"
	"github.com/vk/scenec/internal/scene"
)

// Scene file extensions. The HCL format is the default.
const (
	ExtHCL   = ".gui"
	ExtJSON  = ".gui.json"
	ExtJSONC = ".gui.jsonc"
)

// Extensions lists every extension recognized as a scene file.
var Extensions = []string{ExtHCL, ExtJSON, ExtJSONC}

// IsSceneFile reports whether name has a scene file extension.
func IsSceneFile(name string) bool {
	return fsutil.HasExtension(name, Extensions...)
}

// TrimExt removes the scene extension from name.
func TrimExt(name string) string {
	for _, ext := range []string{ExtJSONC, ExtJSON, ExtHCL} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

// ReadError reports a scene file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read scene %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Loader reads scenes relative to a project root.
type Loader struct {
	root string
}

// NewLoader creates a loader for the project at root.
func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// Root returns the project root directory.
func (l *Loader) Root() string {
	return l.root
}

// Resolve maps a project path to a path on disk.
func (l *Loader) Resolve(p string) string {
	clean := path.Clean("/" + filepath.ToSlash(p))
	return filepath.Join(l.root, filepath.FromSlash(strings.TrimPrefix(clean, "/")))
}

// ProjectPath maps a path on disk under the root to a project path.
func (l *Loader) ProjectPath(osPath string) (string, error) {
	absRoot, err := filepath.Abs(l.root)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(osPath)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside the project root %s", osPath, l.root)
	}
	return "/" + filepath.ToSlash(rel), nil
}

// Exists reports whether the project path names an existing file.
func (l *Loader) Exists(p string) bool {
	info, err := os.Stat(l.Resolve(p))
	return err == nil && !info.IsDir()
}

// ReadScene reads and decodes the scene at the project path p. The format
// is chosen by extension: JSON and JSONC files use the jsonc decoder,
// everything else is HCL.
func (l *Loader) ReadScene(ctx context.Context, p string) (*scene.Scene, error) {
	logger := ctxlog.FromContext(ctx)
	file := l.Resolve(p)
	logger.Debug("Reading scene file.", "path", p, "file", file)

	src, err := os.ReadFile(file)
	if err != nil {
		return nil, &ReadError{Path: p, Err: err}
	}

	if strings.HasSuffix(p, ExtJSON) || strings.HasSuffix(p, ExtJSONC) {
		return jsonc.Decode(ctx, src, p)
	}
	return hcl.Decode(ctx, src, p)
}
