package engine

import "github.com/vk/scenec/internal/scene"

// migrate upgrades a default-layout node saved in an older format.
func migrate(n scene.Node) scene.Node {
	n = migrateType(n)
	// Older files carry alpha in the fourth component of the color vectors.
	if !n.HasAlpha() {
		n = n.WithLegacyAlpha()
	}
	return n
}

// migrateType folds the deprecated spine node kind into a custom node. It
// applies to layout nodes too, so every layout agrees on the node kind.
func migrateType(n scene.Node) scene.Node {
	if n.Type == scene.TypeSpine {
		n.Type = scene.TypeCustom
		n.CustomType = scene.SpineCustomType
	}
	return n
}
