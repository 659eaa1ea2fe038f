package engine

import (
	"github.com/vk/scenec/internal/override"
	"github.com/vk/scenec/internal/scene"
)

// mergeNodes namespaces the nodes of an expanded template under inst and
// applies the outer scene's overrides to them.
//
// layoutNodes holds the template's own nodes for the layout being built,
// keyed by their un-prefixed id; nil means the default layout. With
// applyDefault the outer default-layout overrides are applied first, then
// the outer overrides for layout (when layoutNodes is set).
func mergeNodes(inst scene.Node, nodes []scene.Node, layoutNodes map[string]scene.Node, outer layoutMaps, layout string, applyDefault bool) []scene.Node {
	out := make([]scene.Node, 0, len(nodes))
	for _, n := range nodes {
		if layoutNodes != nil {
			if ln, ok := layoutNodes[n.ID]; ok {
				n = ln
			}
		}
		b := n.Copy()

		if b.Parent == "" {
			b.Parent = inst.ID
		} else {
			b.Parent = inst.ID + "/" + b.Parent
		}
		b.ID = inst.ID + "/" + b.ID

		var defaultOverride, targetOverride *scene.Node
		if applyDefault {
			defaultOverride = override.Lookup(outer[""], b.ID)
		}
		if layoutNodes != nil {
			targetOverride = override.Lookup(outer[layout], b.ID)
		}
		out = append(out, override.Apply(b, defaultOverride, targetOverride))
	}
	return out
}
