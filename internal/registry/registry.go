package registry

import (
	"context"
	"fmt"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/scene"
)

// Kind is a category of named scene resource. Names are unique per kind.
type Kind int

const (
	KindFont Kind = iota
	KindTexture
	KindMaterial
	KindParticlefx
	KindResource
	KindLayer
)

func (k Kind) String() string {
	switch k {
	case KindFont:
		return "font"
	case KindTexture:
		return "texture"
	case KindMaterial:
		return "material"
	case KindParticlefx:
		return "particlefx"
	case KindResource:
		return "resource"
	case KindLayer:
		return "layer"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ExistsFunc reports whether a declared resource path can be found.
type ExistsFunc func(path string) bool

// Option configures a Registry.
type Option func(*Registry)

// WithExistenceCheck makes Register fail with scene.ErrMissingResource for
// declared paths that exists rejects. Only used in compile mode.
func WithExistenceCheck(exists ExistsFunc) Option {
	return func(r *Registry) {
		r.exists = exists
	}
}

// Registry holds the resources of one scene merge pass.
type Registry struct {
	path      string
	compiling bool
	exists    ExistsFunc

	names map[Kind]map[string]struct{}

	fonts       []scene.FontDesc
	textures    []scene.TextureDesc
	materials   []scene.MaterialDesc
	particlefxs []scene.ParticlefxDesc
	resources   []scene.ResourceDesc
	layers      []scene.LayerDesc
}

// New creates an empty registry for the scene at path.
func New(path string, compiling bool, opts ...Option) *Registry {
	r := &Registry{
		path:      path,
		compiling: compiling,
		names:     make(map[Kind]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Compiling reports whether the registry validates and rewrites paths.
func (r *Registry) Compiling() bool {
	return r.compiling
}

// Has reports whether a resource name of the given kind is registered.
func (r *Registry) Has(kind Kind, name string) bool {
	_, ok := r.names[kind][name]
	return ok
}

func (r *Registry) claim(kind Kind, name string) {
	set, ok := r.names[kind]
	if !ok {
		set = make(map[string]struct{})
		r.names[kind] = set
	}
	set[name] = struct{}{}
}

// Register adds a resource declared by the scene being compiled. In
// compile mode a second registration of the same kind and name fails with
// scene.ErrDuplicateResource and path is rewritten to its compiled form.
func (r *Registry) Register(kind Kind, name, path string) error {
	if r.compiling {
		if r.Has(kind, name) {
			return scene.NewCompileError(r.path, scene.ErrDuplicateResource, name,
				"%s %q is declared more than once", kind, name)
		}
		if r.exists != nil && kind != KindLayer && path != "" && !r.exists(path) {
			return scene.NewCompileError(r.path, scene.ErrMissingResource, name,
				"%s %q refers to %s which does not exist", kind, name, path)
		}
		path = CompiledPath(kind, path)
	}
	r.claim(kind, name)
	r.add(kind, name, path)
	return nil
}

// Fold adds a resource coming from a merged template. The first resource
// registered under a name wins; later ones are skipped without error. It
// reports whether the resource was added.
func (r *Registry) Fold(kind Kind, name, path string) bool {
	if r.Has(kind, name) {
		return false
	}
	r.claim(kind, name)
	r.add(kind, name, path)
	return true
}

func (r *Registry) add(kind Kind, name, path string) {
	switch kind {
	case KindFont:
		r.fonts = append(r.fonts, scene.FontDesc{Name: name, Font: path})
	case KindTexture:
		r.textures = append(r.textures, scene.TextureDesc{Name: name, Texture: path})
	case KindMaterial:
		r.materials = append(r.materials, scene.MaterialDesc{Name: name, Material: path})
	case KindParticlefx:
		r.particlefxs = append(r.particlefxs, scene.ParticlefxDesc{Name: name, Particlefx: path})
	case KindResource:
		r.resources = append(r.resources, scene.ResourceDesc{Name: name, Path: path})
	case KindLayer:
		r.layers = append(r.layers, scene.LayerDesc{Name: name})
	}
}

// RegisterScene registers every resource the scene declares itself. Legacy
// spine scene declarations are registered as generic resources.
func (r *Registry) RegisterScene(s *scene.Scene) error {
	for _, f := range s.Fonts {
		if err := r.Register(KindFont, f.Name, f.Font); err != nil {
			return err
		}
	}
	for _, f := range s.SpineScenes {
		if err := r.Register(KindResource, f.Name, f.SpineScene); err != nil {
			return err
		}
	}
	for _, f := range s.Particlefxs {
		if err := r.Register(KindParticlefx, f.Name, f.Particlefx); err != nil {
			return err
		}
	}
	for _, f := range s.Textures {
		if err := r.Register(KindTexture, f.Name, f.Texture); err != nil {
			return err
		}
	}
	for _, f := range s.Materials {
		if err := r.Register(KindMaterial, f.Name, f.Material); err != nil {
			return err
		}
	}
	for _, f := range s.Resources {
		if err := r.Register(KindResource, f.Name, f.Path); err != nil {
			return err
		}
	}
	for _, l := range s.Layers {
		if err := r.Register(KindLayer, l.Name, ""); err != nil {
			return err
		}
	}
	return nil
}

// FoldScene folds the resources of an already compiled template scene.
// Layers are not folded: render order is owned by the outer scene.
func (r *Registry) FoldScene(ctx context.Context, s *scene.Scene) {
	logger := ctxlog.FromContext(ctx)
	folded, skipped := 0, 0
	count := func(added bool) {
		if added {
			folded++
		} else {
			skipped++
		}
	}
	for _, f := range s.Fonts {
		count(r.Fold(KindFont, f.Name, f.Font))
	}
	for _, f := range s.Particlefxs {
		count(r.Fold(KindParticlefx, f.Name, f.Particlefx))
	}
	for _, f := range s.Textures {
		count(r.Fold(KindTexture, f.Name, f.Texture))
	}
	for _, f := range s.Materials {
		count(r.Fold(KindMaterial, f.Name, f.Material))
	}
	for _, f := range s.Resources {
		count(r.Fold(KindResource, f.Name, f.Path))
	}
	logger.Debug("Folded template resources.", "scene", r.path, "template", s.Path, "folded", folded, "skipped", skipped)
}

// Apply replaces the declaration lists of s with the registered ones. Spine
// scene declarations end up in Resources.
func (r *Registry) Apply(s *scene.Scene) {
	s.Fonts = r.fonts
	s.Textures = r.textures
	s.Materials = r.materials
	s.Particlefxs = r.particlefxs
	s.Resources = r.resources
	s.SpineScenes = nil
	s.Layers = r.layers
}
