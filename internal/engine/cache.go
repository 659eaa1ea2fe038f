package engine

import (
	"context"
	"strings"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/scene"
)

// Cache holds parsed scenes by path for the duration of one Transform.
type Cache struct {
	scenes map[string]*scene.Scene
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{scenes: make(map[string]*scene.Scene)}
}

// Len returns the number of cached scenes.
func (c *Cache) Len() int {
	return len(c.scenes)
}

// Read returns a private copy of the scene at path, reading it through r
// on first use. Callers may modify the returned scene freely.
func (c *Cache) Read(ctx context.Context, r Reader, path string) (*scene.Scene, error) {
	logger := ctxlog.FromContext(ctx)

	s, ok := c.scenes[path]
	if !ok {
		logger.Debug("Scene cache miss, reading.", "path", path)
		var err error
		s, err = r.ReadScene(ctx, path)
		if err != nil {
			return nil, err
		}
		if s.Path == "" {
			s.Path = path
		}
		c.scenes[path] = s
	} else {
		logger.Debug("Scene cache hit.", "path", path)
	}
	return s.Clone()
}

// session is the state of one Transform call, threaded explicitly through
// the recursion.
type session struct {
	reader Reader
	cache  *Cache
	stack  []string
}

func newSession(r Reader) *session {
	return &session{reader: r, cache: NewCache()}
}

func (s *session) push(path string) {
	s.stack = append(s.stack, path)
}

func (s *session) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *session) depth() int {
	return len(s.stack)
}

// cycle returns the reference chain ending in path if path is already
// being expanded.
func (s *session) cycle(path string) (string, bool) {
	for i, p := range s.stack {
		if p == path {
			chain := append(append([]string{}, s.stack[i:]...), path)
			return strings.Join(chain, " -> "), true
		}
	}
	return "", false
}
