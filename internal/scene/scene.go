package scene

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Scene is one compile unit: the default-layout node list, the sparse
// layout variants and the declared resources.
type Scene struct {
	// Path is where the scene was read from. It is used in error messages
	// and is not part of the compiled output.
	Path string `json:"-" yaml:"-" copier:"-"`

	Script   string `json:"script,omitempty" yaml:"script,omitempty"`
	Material string `json:"material,omitempty" yaml:"material,omitempty"`

	Nodes   []Node   `json:"nodes" yaml:"nodes"`
	Layouts []Layout `json:"layouts,omitempty" yaml:"layouts,omitempty"`

	Fonts       []FontDesc       `json:"fonts,omitempty" yaml:"fonts,omitempty"`
	Textures    []TextureDesc    `json:"textures,omitempty" yaml:"textures,omitempty"`
	Materials   []MaterialDesc   `json:"materials,omitempty" yaml:"materials,omitempty"`
	Particlefxs []ParticlefxDesc `json:"particlefxs,omitempty" yaml:"particlefxs,omitempty"`
	SpineScenes []SpineSceneDesc `json:"spine_scenes,omitempty" yaml:"spine_scenes,omitempty"`
	Resources   []ResourceDesc   `json:"resources,omitempty" yaml:"resources,omitempty"`
	Layers      []LayerDesc      `json:"layers,omitempty" yaml:"layers,omitempty"`
}

// Layout is a named variant holding only the nodes that differ from the
// default layout.
type Layout struct {
	Name  string `json:"name" yaml:"name"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

type FontDesc struct {
	Name string `json:"name" yaml:"name"`
	Font string `json:"font" yaml:"font"`
}

type TextureDesc struct {
	Name    string `json:"name" yaml:"name"`
	Texture string `json:"texture" yaml:"texture"`
}

type MaterialDesc struct {
	Name     string `json:"name" yaml:"name"`
	Material string `json:"material" yaml:"material"`
}

type ParticlefxDesc struct {
	Name       string `json:"name" yaml:"name"`
	Particlefx string `json:"particlefx" yaml:"particlefx"`
}

// SpineSceneDesc is the legacy spine scene declaration. Compiled scenes
// carry spine scenes in Resources instead.
type SpineSceneDesc struct {
	Name       string `json:"name" yaml:"name"`
	SpineScene string `json:"spine_scene" yaml:"spine_scene"`
}

type ResourceDesc struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// LayerDesc declares a render layer. Layer order is render order.
type LayerDesc struct {
	Name string `json:"name" yaml:"name"`
}

// Clone returns a deep copy of s that shares no memory with it.
func (s *Scene) Clone() (*Scene, error) {
	out := &Scene{}
	if err := copier.CopyWithOption(out, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("cloning scene %s: %w", s.Path, err)
	}
	out.Path = s.Path
	return out, nil
}

// Layout returns the layout with the given name.
func (s *Scene) Layout(name string) (Layout, bool) {
	for _, l := range s.Layouts {
		if l.Name == name {
			return l, true
		}
	}
	return Layout{}, false
}

// LayoutNames returns the declared layout names in order.
func (s *Scene) LayoutNames() []string {
	names := make([]string, 0, len(s.Layouts))
	for _, l := range s.Layouts {
		names = append(names, l.Name)
	}
	return names
}

// NodeMap indexes nodes by id. Later duplicates win.
func NodeMap(nodes []Node) map[string]Node {
	m := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		m[n.ID] = n
	}
	return m
}
