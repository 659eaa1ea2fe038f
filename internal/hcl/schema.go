package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a scene file.
type fileRoot struct {
	Script   string `hcl:"script,optional"`
	Material string `hcl:"scene_material,optional"`

	Fonts       []*fontBlock       `hcl:"font,block"`
	Textures    []*textureBlock    `hcl:"texture,block"`
	Materials   []*materialBlock   `hcl:"material,block"`
	Particlefxs []*particlefxBlock `hcl:"particlefx,block"`
	SpineScenes []*spineSceneBlock `hcl:"spine_scene,block"`
	Resources   []*resourceBlock   `hcl:"resource,block"`
	Layers      []*layerBlock      `hcl:"layer,block"`

	Nodes   []*nodeBlock   `hcl:"node,block"`
	Layouts []*layoutBlock `hcl:"layout,block"`
}

type fontBlock struct {
	Name string `hcl:"name,label"`
	Font string `hcl:"font"`
}

type textureBlock struct {
	Name    string `hcl:"name,label"`
	Texture string `hcl:"texture"`
}

type materialBlock struct {
	Name     string `hcl:"name,label"`
	Material string `hcl:"material"`
}

type particlefxBlock struct {
	Name       string `hcl:"name,label"`
	Particlefx string `hcl:"particlefx"`
}

type spineSceneBlock struct {
	Name       string `hcl:"name,label"`
	SpineScene string `hcl:"spine_scene"`
}

type resourceBlock struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

type layerBlock struct {
	Name string `hcl:"name,label"`
}

type layoutBlock struct {
	Name  string       `hcl:"name,label"`
	Nodes []*nodeBlock `hcl:"node,block"`
}

// nodeBlock is a `node "id" { ... }` block. Optional attributes whose
// absence matters are pointers or expressions.
type nodeBlock struct {
	ID                string  `hcl:"id,label"`
	Type              *string `hcl:"type,optional"`
	Parent            *string `hcl:"parent,optional"`
	Template          *string `hcl:"template,optional"`
	TemplateNodeChild *bool   `hcl:"template_node_child,optional"`
	CustomType        *uint32 `hcl:"custom_type,optional"`

	Position hcl.Expression `hcl:"position,optional"`
	Rotation hcl.Expression `hcl:"rotation,optional"`
	Scale    hcl.Expression `hcl:"scale,optional"`
	Size     hcl.Expression `hcl:"size,optional"`
	Color    hcl.Expression `hcl:"color,optional"`
	Shadow   hcl.Expression `hcl:"shadow,optional"`
	Outline  hcl.Expression `hcl:"outline,optional"`

	Alpha        *float64 `hcl:"alpha,optional"`
	ShadowAlpha  *float64 `hcl:"shadow_alpha,optional"`
	OutlineAlpha *float64 `hcl:"outline_alpha,optional"`
	InheritAlpha *bool    `hcl:"inherit_alpha,optional"`
	Enabled      *bool    `hcl:"enabled,optional"`
	Visible      *bool    `hcl:"visible,optional"`
	Layer        *string  `hcl:"layer,optional"`

	Text       *string `hcl:"text,optional"`
	Font       *string `hcl:"font,optional"`
	Texture    *string `hcl:"texture,optional"`
	Material   *string `hcl:"material,optional"`
	Particlefx *string `hcl:"particlefx,optional"`
	SpineScene *string `hcl:"spine_scene,optional"`

	Pivot        *string `hcl:"pivot,optional"`
	XAnchor      *string `hcl:"x_anchor,optional"`
	YAnchor      *string `hcl:"y_anchor,optional"`
	AdjustMode   *string `hcl:"adjust_mode,optional"`
	BlendMode    *string `hcl:"blend_mode,optional"`
	ClippingMode *string `hcl:"clipping_mode,optional"`
	SizeMode     *string `hcl:"size_mode,optional"`
	LineBreak    *bool   `hcl:"line_break,optional"`

	OverriddenFields []string `hcl:"overridden_fields,optional"`

	Body hcl.Body `hcl:",body"`
}

// subject returns a range inside the block for diagnostics that are not
// tied to a single attribute.
func (b *nodeBlock) subject() *hcl.Range {
	if b.Body == nil {
		return nil
	}
	rng := b.Body.MissingItemRange()
	return &rng
}
