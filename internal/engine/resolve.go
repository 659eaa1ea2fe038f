package engine

import (
	"context"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/registry"
	"github.com/vk/scenec/internal/scene"
)

// layoutLists holds the node list being built for the default layout ("")
// and for every declared layout.
type layoutLists map[string][]scene.Node

// layoutMaps indexes nodes by id for the default layout ("") and every
// declared layout.
type layoutMaps map[string]map[string]scene.Node

func newLayoutMaps(s *scene.Scene) layoutMaps {
	m := layoutMaps{"": scene.NodeMap(s.Nodes)}
	for _, l := range s.Layouts {
		m[l.Name] = scene.NodeMap(l.Nodes)
	}
	return m
}

// transform compiles s in place and returns it. Template nodes are
// expanded recursively; only the outermost call flattens.
func (e *Engine) transform(ctx context.Context, sess *session, s *scene.Scene, flatten bool) (*scene.Scene, error) {
	logger := ctxlog.FromContext(ctx).With("scene", s.Path, "depth", sess.depth())

	reg := e.newRegistry(s.Path)
	if err := reg.RegisterScene(s); err != nil {
		return nil, err
	}

	layouts := s.LayoutNames()
	lists := layoutLists{"": make([]scene.Node, 0, len(s.Nodes))}
	for _, l := range s.Layouts {
		lists[l.Name] = make([]scene.Node, 0, len(l.Nodes))
	}
	overrides := newLayoutMaps(s)

	for _, n := range s.Nodes {
		// Children of a template instance are only carried as override
		// holders; the instance is re-expanded from its template below.
		if n.TemplateNodeChild {
			continue
		}
		n = migrate(n)

		lists[""] = append(lists[""], n)
		if err := reg.ValidateNode(n); err != nil {
			return nil, err
		}
		for _, name := range layouts {
			ln, ok := overrides[name][n.ID]
			if !ok {
				continue
			}
			ln = migrateType(ln)
			if err := reg.ValidateNode(ln); err != nil {
				return nil, err
			}
			lists[name] = append(lists[name], ln)
		}

		switch n.Type {
		case scene.TypeTemplate:
			if err := e.expand(ctx, sess, reg, s, n, overrides, lists); err != nil {
				return nil, err
			}
		case scene.TypeParticlefx:
			if e.opts.Compiling && !declaresParticlefx(s, n.Particlefx) {
				return nil, scene.NewCompileError(s.Path, scene.ErrInvalidParticlefx, n.Particlefx,
					"node %q uses particlefx %q which this scene does not declare", n.ID, n.Particlefx)
			}
		}
	}

	if flatten {
		flattenLists(ctx, lists, layouts)
		if e.opts.Compiling {
			s.Script = registry.CompiledScriptPath(s.Script)
			s.Material = registry.CompiledPath(registry.KindMaterial, s.Material)
		}
	}

	s.Nodes = clearOverrides(lists[""])
	for i := range s.Layouts {
		s.Layouts[i].Nodes = clearOverrides(lists[s.Layouts[i].Name])
	}
	reg.Apply(s)

	logger.Debug("Scene resolved.", "nodes", len(s.Nodes), "flattened", flatten)
	return s, nil
}

// expand merges the template referenced by inst into every layout list and
// folds the template's resources into reg.
func (e *Engine) expand(ctx context.Context, sess *session, reg *registry.Registry, s *scene.Scene, inst scene.Node, overrides layoutMaps, lists layoutLists) error {
	logger := ctxlog.FromContext(ctx)

	if chain, ok := sess.cycle(inst.Template); ok {
		return scene.NewCompileError(s.Path, scene.ErrCyclicTemplate, inst.ID,
			"template node %q closes a reference cycle: %s", inst.ID, chain)
	}

	logger.Debug("Expanding template.", "scene", s.Path, "node", inst.ID, "template", inst.Template)
	sub, err := sess.cache.Read(ctx, sess.reader, inst.Template)
	if err != nil {
		return err
	}

	sess.push(inst.Template)
	sub, err = e.transform(ctx, sess, sub, false)
	sess.pop()
	if err != nil {
		return err
	}

	lists[""] = append(lists[""], mergeNodes(inst, sub.Nodes, nil, overrides, "", true)...)

	for _, l := range s.Layouts {
		var merged []scene.Node
		if tl, ok := sub.Layout(l.Name); ok {
			merged = mergeNodes(inst, sub.Nodes, scene.NodeMap(tl.Nodes), overrides, l.Name, false)
		} else {
			merged = mergeNodes(inst, sub.Nodes, scene.NodeMap(sub.Nodes), overrides, l.Name, true)
		}
		lists[l.Name] = append(lists[l.Name], merged...)
	}

	reg.FoldScene(ctx, sub)
	return nil
}

func declaresParticlefx(s *scene.Scene, name string) bool {
	for _, p := range s.Particlefxs {
		if p.Name == name {
			return true
		}
	}
	return false
}

func clearOverrides(nodes []scene.Node) []scene.Node {
	for i := range nodes {
		nodes[i].OverriddenFields = nil
	}
	return nodes
}
