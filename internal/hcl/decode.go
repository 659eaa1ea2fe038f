package hcl

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/scene"
)

// Decode parses an HCL scene file. filename is used for diagnostics and
// becomes the scene's Path.
func Decode(ctx context.Context, src []byte, filename string) (*scene.Scene, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL scene decoding started.", "path", filename, "bytes", len(src))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, &ParseError{Path: filename, Diags: diags}
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, &ParseError{Path: filename, Diags: diags}
	}

	s, diags := translateScene(ctx, &root)
	if diags.HasErrors() {
		return nil, &ParseError{Path: filename, Diags: diags}
	}
	s.Path = filename

	logger.Debug("HCL scene decoded.",
		"path", filename,
		"nodes", len(s.Nodes),
		"layouts", len(s.Layouts),
	)
	return s, nil
}

// translateScene converts the decoded schema into the scene model.
func translateScene(ctx context.Context, root *fileRoot) (*scene.Scene, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	s := &scene.Scene{
		Script:   root.Script,
		Material: root.Material,
	}

	for _, b := range root.Fonts {
		s.Fonts = append(s.Fonts, scene.FontDesc{Name: b.Name, Font: b.Font})
	}
	for _, b := range root.Textures {
		s.Textures = append(s.Textures, scene.TextureDesc{Name: b.Name, Texture: b.Texture})
	}
	for _, b := range root.Materials {
		s.Materials = append(s.Materials, scene.MaterialDesc{Name: b.Name, Material: b.Material})
	}
	for _, b := range root.Particlefxs {
		s.Particlefxs = append(s.Particlefxs, scene.ParticlefxDesc{Name: b.Name, Particlefx: b.Particlefx})
	}
	for _, b := range root.SpineScenes {
		s.SpineScenes = append(s.SpineScenes, scene.SpineSceneDesc{Name: b.Name, SpineScene: b.SpineScene})
	}
	for _, b := range root.Resources {
		s.Resources = append(s.Resources, scene.ResourceDesc{Name: b.Name, Path: b.Path})
	}
	for _, b := range root.Layers {
		s.Layers = append(s.Layers, scene.LayerDesc{Name: b.Name})
	}

	for _, b := range root.Nodes {
		n, nodeDiags := translateNode(ctx, b, scene.NewNode(b.ID, scene.TypeBox))
		diags = append(diags, nodeDiags...)
		s.Nodes = append(s.Nodes, n)
	}

	// Layout nodes start from the default-layout node with the same id so
	// that only the attributes written in the layout differ.
	defaults := scene.NodeMap(s.Nodes)
	for _, lb := range root.Layouts {
		l := scene.Layout{Name: lb.Name}
		for _, b := range lb.Nodes {
			n, nodeDiags := translateNode(ctx, b, scene.LayoutBase(defaults, b.ID))
			diags = append(diags, nodeDiags...)
			l.Nodes = append(l.Nodes, n.WithLegacyAlpha())
		}
		s.Layouts = append(s.Layouts, l)
	}
	return s, diags
}
