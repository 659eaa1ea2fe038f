package engine

import (
	"context"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/scene"
	"github.com/vk/scenec/internal/transform"
)

// flattenLists drops template nodes from every layout list and composes
// their transforms into the nodes hanging off them. Lookups in a layout
// fall back to the default layout.
func flattenLists(ctx context.Context, lists layoutLists, layouts []string) {
	logger := ctxlog.FromContext(ctx)

	defaults := scene.NodeMap(lists[""])
	for _, name := range append([]string{""}, layouts...) {
		nodes := lists[name]
		byID := scene.NodeMap(nodes)
		lookup := func(id string) (scene.Node, bool) {
			if n, ok := byID[id]; ok {
				return n, true
			}
			n, ok := defaults[id]
			return n, ok
		}

		out := make([]scene.Node, 0, len(nodes))
		dropped := 0
		for _, n := range nodes {
			if n.IsTemplate() {
				dropped++
				continue
			}
			if n.Parent != "" {
				if parent, ok := lookup(n.Parent); ok && parent.IsTemplate() {
					n = transform.Compose(n, parent, lookup)
				}
			}
			out = append(out, n)
		}
		lists[name] = out
		logger.Debug("Flattened layout.", "layout", name, "nodes", len(out), "templates_dropped", dropped)
	}
}
