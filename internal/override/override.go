// Package override applies the sparse, explicitly marked field overrides
// of layout-specific nodes onto a base node.
package override

import "github.com/vk/scenec/internal/scene"

// Apply copies onto base the fields listed in the OverriddenFields of
// defaultOverride, then those listed by targetOverride. Either override may
// be nil. Fields that are not listed are never touched. The returned node
// carries no OverriddenFields.
func Apply(base scene.Node, defaultOverride, targetOverride *scene.Node) scene.Node {
	out := base.Copy()
	for _, o := range []*scene.Node{defaultOverride, targetOverride} {
		if o == nil {
			continue
		}
		for _, f := range o.OverriddenFields {
			out = scene.CopyField(out, *o, f)
		}
	}
	out.OverriddenFields = nil
	return out
}

// Lookup returns the override for id in nodes, if any.
func Lookup(nodes map[string]scene.Node, id string) *scene.Node {
	if nodes == nil {
		return nil
	}
	n, ok := nodes[id]
	if !ok {
		return nil
	}
	return &n
}
