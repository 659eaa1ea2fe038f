package transform

import "github.com/vk/scenec/internal/scene"

// Lookup resolves a node id in the layout being flattened, falling back to
// the default layout.
type Lookup func(id string) (scene.Node, bool)

// ComposeChild folds one template instance into a child expanded under it.
// The child is reparented to the instance's own parent.
func ComposeChild(child, instance scene.Node) scene.Node {
	out := child.Copy()

	if out.Layer == "" && instance.Layer != "" {
		out.Layer = instance.Layer
	}

	// The inherit flag takes the instance's value so that composing with the
	// next instance outward only continues when the chain allows it.
	if out.InheritAlpha {
		out.Alpha = scene.Float(out.AlphaValue() * instance.AlphaValue())
		out.InheritAlpha = instance.InheritAlpha
	}

	// A disabled instance disables the child; a disabled child stays so.
	if out.Enabled {
		out.Enabled = instance.Enabled
	}

	out.Scale = out.Scale.Mul(instance.Scale)
	out.Scale.W = 1

	rot := EulerToQuat(instance.Rotation)
	pos := rotate(rot, out.Position.Mul(instance.Scale))
	out.Position = scene.Point(
		pos.X+instance.Position.X,
		pos.Y+instance.Position.Y,
		pos.Z+instance.Position.Z,
	)
	out.Rotation = QuatToEuler(rot.Mul(EulerToQuat(out.Rotation)))

	out.Parent = instance.Parent
	return out
}

// Compose applies ComposeChild for instance and then for every template
// instance further out, until the child hangs off a regular node or the
// root.
func Compose(child, instance scene.Node, lookup Lookup) scene.Node {
	seen := map[string]struct{}{}
	for {
		child = ComposeChild(child, instance)
		seen[instance.ID] = struct{}{}
		if instance.Parent == "" {
			return child
		}
		next, ok := lookup(instance.Parent)
		if !ok || !next.IsTemplate() {
			return child
		}
		if _, loop := seen[next.ID]; loop {
			return child
		}
		instance = next
	}
}
