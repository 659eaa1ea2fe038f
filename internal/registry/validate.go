package registry

import (
	"strings"

	"github.com/vk/scenec/internal/scene"
)

// ValidateReference checks that a node reference names a registered
// resource. Outside compile mode every reference is accepted.
func (r *Registry) ValidateReference(kind Kind, name string) error {
	if !r.compiling || name == "" {
		return nil
	}
	if !r.Has(kind, name) {
		return scene.NewCompileError(r.path, scene.ErrMissingResource, name,
			"%s %q is not declared", kind, name)
	}
	return nil
}

// ValidateNode checks every resource a node references. A template node
// without a template path is rejected in every mode.
func (r *Registry) ValidateNode(n scene.Node) error {
	if n.IsTemplate() && n.Template == "" {
		return scene.NewCompileError(r.path, scene.ErrEmptyTemplate, n.ID,
			"template node %q has no template path", n.ID)
	}
	if !r.compiling {
		return nil
	}

	refs := []struct {
		kind Kind
		name string
	}{
		{KindResource, n.SpineScene},
		{KindTexture, textureName(n.Texture)},
		{KindMaterial, n.Material},
		{KindFont, n.Font},
		{KindParticlefx, n.Particlefx},
		{KindLayer, n.Layer},
	}
	for _, ref := range refs {
		if err := r.ValidateReference(ref.kind, ref.name); err != nil {
			return err
		}
	}
	return nil
}

// textureName strips the animation from an "atlas/animation" reference.
func textureName(ref string) string {
	name, _, _ := strings.Cut(ref, "/")
	return name
}
