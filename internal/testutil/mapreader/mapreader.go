// Package mapreader serves scenes from memory for engine and dependency
// tests.
package mapreader

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vk/scenec/internal/scene"
)

// ErrSceneNotFound is returned for unknown paths.
var ErrSceneNotFound = errors.New("scene not found")

// Reader is an in-memory scene reader. It records how often each path was
// read.
type Reader struct {
	mu     sync.Mutex
	scenes map[string]*scene.Scene
	reads  map[string]int
}

// New creates a reader serving the given scenes by path.
func New(scenes map[string]*scene.Scene) *Reader {
	r := &Reader{
		scenes: make(map[string]*scene.Scene, len(scenes)),
		reads:  make(map[string]int),
	}
	for path, s := range scenes {
		s.Path = path
		r.scenes[path] = s
	}
	return r
}

// ReadScene returns a copy of the scene stored under path.
func (r *Reader) ReadScene(_ context.Context, path string) (*scene.Scene, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reads[path]++
	s, ok := r.scenes[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrSceneNotFound)
	}
	return s.Clone()
}

// Reads returns how many times path was read.
func (r *Reader) Reads(path string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads[path]
}
