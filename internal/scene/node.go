package scene

import "fmt"

// NodeType is the kind of a GUI node.
type NodeType string

const (
	TypeBox        NodeType = "box"
	TypeText       NodeType = "text"
	TypePie        NodeType = "pie"
	TypeTemplate   NodeType = "template"
	TypeParticlefx NodeType = "particlefx"
	TypeCustom     NodeType = "custom"

	// TypeSpine is the deprecated spine node kind. The engine folds it into
	// TypeCustom with SpineCustomType as the custom type code.
	TypeSpine NodeType = "spine"
)

// ParseNodeType validates a node type name. An empty name means box.
func ParseNodeType(s string) (NodeType, error) {
	switch t := NodeType(s); t {
	case "":
		return TypeBox, nil
	case TypeBox, TypeText, TypePie, TypeTemplate, TypeParticlefx, TypeCustom, TypeSpine:
		return t, nil
	default:
		return "", fmt.Errorf("unknown node type %q", s)
	}
}

// Node is a single GUI element.
//
// Alpha, ShadowAlpha and OutlineAlpha are nil when the node was authored in
// the legacy format, where opacity lived in the W component of Color, Shadow
// and Outline.
type Node struct {
	ID                string   `json:"id" yaml:"id"`
	Parent            string   `json:"parent,omitempty" yaml:"parent,omitempty"`
	Type              NodeType `json:"type" yaml:"type"`
	CustomType        uint32   `json:"custom_type,omitempty" yaml:"custom_type,omitempty"`
	Template          string   `json:"template,omitempty" yaml:"template,omitempty"`
	TemplateNodeChild bool     `json:"template_node_child,omitempty" yaml:"template_node_child,omitempty"`

	Position Vec4 `json:"position" yaml:"position"`
	Rotation Vec4 `json:"rotation" yaml:"rotation"`
	Scale    Vec4 `json:"scale" yaml:"scale"`
	Size     Vec4 `json:"size" yaml:"size"`

	Color        Vec4     `json:"color" yaml:"color"`
	Shadow       Vec4     `json:"shadow" yaml:"shadow"`
	Outline      Vec4     `json:"outline" yaml:"outline"`
	Alpha        *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	ShadowAlpha  *float64 `json:"shadow_alpha,omitempty" yaml:"shadow_alpha,omitempty"`
	OutlineAlpha *float64 `json:"outline_alpha,omitempty" yaml:"outline_alpha,omitempty"`
	InheritAlpha bool     `json:"inherit_alpha,omitempty" yaml:"inherit_alpha,omitempty"`
	Enabled      bool     `json:"enabled" yaml:"enabled"`
	Visible      bool     `json:"visible" yaml:"visible"`
	Layer        string   `json:"layer,omitempty" yaml:"layer,omitempty"`

	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
	Font       string `json:"font,omitempty" yaml:"font,omitempty"`
	Texture    string `json:"texture,omitempty" yaml:"texture,omitempty"`
	Material   string `json:"material,omitempty" yaml:"material,omitempty"`
	Particlefx string `json:"particlefx,omitempty" yaml:"particlefx,omitempty"`
	SpineScene string `json:"spine_scene,omitempty" yaml:"spine_scene,omitempty"`

	Pivot        string `json:"pivot,omitempty" yaml:"pivot,omitempty"`
	XAnchor      string `json:"x_anchor,omitempty" yaml:"x_anchor,omitempty"`
	YAnchor      string `json:"y_anchor,omitempty" yaml:"y_anchor,omitempty"`
	AdjustMode   string `json:"adjust_mode,omitempty" yaml:"adjust_mode,omitempty"`
	BlendMode    string `json:"blend_mode,omitempty" yaml:"blend_mode,omitempty"`
	ClippingMode string `json:"clipping_mode,omitempty" yaml:"clipping_mode,omitempty"`
	SizeMode     string `json:"size_mode,omitempty" yaml:"size_mode,omitempty"`
	LineBreak    bool   `json:"line_break,omitempty" yaml:"line_break,omitempty"`

	// OverriddenFields lists the fields this node sets explicitly in its
	// authoring layer. It only exists at build time.
	OverriddenFields []FieldID `json:"overridden_fields,omitempty" yaml:"overridden_fields,omitempty"`
}

// NewNode returns a node carrying the runtime defaults.
func NewNode(id string, t NodeType) Node {
	return Node{
		ID:       id,
		Type:     t,
		Position: Point(0, 0, 0),
		Rotation: Point(0, 0, 0),
		Scale:    Point(1, 1, 1),
		Color:    Vec4{X: 1, Y: 1, Z: 1, W: 1},
		Shadow:   Vec4{X: 1, Y: 1, Z: 1, W: 1},
		Outline:  Vec4{X: 1, Y: 1, Z: 1, W: 1},
		Enabled:  true,
		Visible:  true,
	}
}

// Float returns a pointer to v, for the optional alpha fields.
func Float(v float64) *float64 {
	return &v
}

// AlphaValue returns the node alpha, 1 when unset.
func (n Node) AlphaValue() float64 {
	if n.Alpha == nil {
		return 1
	}
	return *n.Alpha
}

// HasAlpha reports whether the node was saved in the separate-alpha format.
func (n Node) HasAlpha() bool {
	return n.Alpha != nil
}

// IsTemplate reports whether n is a template instance.
func (n Node) IsTemplate() bool {
	return n.Type == TypeTemplate
}

// Copy returns n with its slice and pointer fields detached from the
// original, so the two can be changed independently.
func (n Node) Copy() Node {
	if n.Alpha != nil {
		n.Alpha = Float(*n.Alpha)
	}
	if n.ShadowAlpha != nil {
		n.ShadowAlpha = Float(*n.ShadowAlpha)
	}
	if n.OutlineAlpha != nil {
		n.OutlineAlpha = Float(*n.OutlineAlpha)
	}
	if n.OverriddenFields != nil {
		n.OverriddenFields = append([]FieldID(nil), n.OverriddenFields...)
	}
	return n
}

// WithLegacyAlpha fills unset alpha fields from the W component of Color,
// Shadow and Outline, where older files stored opacity.
func (n Node) WithLegacyAlpha() Node {
	if n.Alpha == nil {
		n.Alpha = Float(n.Color.W)
	}
	if n.ShadowAlpha == nil {
		n.ShadowAlpha = Float(n.Shadow.W)
	}
	if n.OutlineAlpha == nil {
		n.OutlineAlpha = Float(n.Outline.W)
	}
	return n
}

// LayoutBase returns the node a layout-specific node with the given id is
// authored against: a copy of the default-layout node, or a fresh box.
func LayoutBase(defaults map[string]Node, id string) Node {
	base, ok := defaults[id]
	if !ok {
		return NewNode(id, TypeBox)
	}
	base = base.Copy()
	base.OverriddenFields = nil
	return base
}
