package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/scenec/internal/scene"
)

// translateNode applies the attributes written in b on top of base.
func translateNode(ctx context.Context, b *nodeBlock, base scene.Node) (scene.Node, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	n := base
	n.ID = b.ID

	if b.Type != nil {
		t, err := scene.ParseNodeType(*b.Type)
		if err != nil {
			diags = append(diags, diagError(b.subject(), "Invalid node type", fmt.Sprintf("Node %q: %s.", b.ID, err)))
		}
		n.Type = t
	}

	setString(&n.Parent, b.Parent)
	setString(&n.Template, b.Template)
	setBool(&n.TemplateNodeChild, b.TemplateNodeChild)
	if b.CustomType != nil {
		n.CustomType = *b.CustomType
	}

	vectors := []struct {
		name string
		expr hcl.Expression
		dst  *scene.Vec4
	}{
		{"position", b.Position, &n.Position},
		{"rotation", b.Rotation, &n.Rotation},
		{"scale", b.Scale, &n.Scale},
		{"size", b.Size, &n.Size},
		{"color", b.Color, &n.Color},
		{"shadow", b.Shadow, &n.Shadow},
		{"outline", b.Outline, &n.Outline},
	}
	for _, v := range vectors {
		if !isExprDefined(ctx, v.expr, v.name) {
			continue
		}
		vec, vecDiags := decodeVector(ctx, v.expr, *v.dst)
		diags = append(diags, vecDiags...)
		*v.dst = vec
	}

	if b.Alpha != nil {
		n.Alpha = scene.Float(*b.Alpha)
	}
	if b.ShadowAlpha != nil {
		n.ShadowAlpha = scene.Float(*b.ShadowAlpha)
	}
	if b.OutlineAlpha != nil {
		n.OutlineAlpha = scene.Float(*b.OutlineAlpha)
	}
	setBool(&n.InheritAlpha, b.InheritAlpha)
	setBool(&n.Enabled, b.Enabled)
	setBool(&n.Visible, b.Visible)
	setString(&n.Layer, b.Layer)

	setString(&n.Text, b.Text)
	setString(&n.Font, b.Font)
	setString(&n.Texture, b.Texture)
	setString(&n.Material, b.Material)
	setString(&n.Particlefx, b.Particlefx)
	setString(&n.SpineScene, b.SpineScene)

	setString(&n.Pivot, b.Pivot)
	setString(&n.XAnchor, b.XAnchor)
	setString(&n.YAnchor, b.YAnchor)
	setString(&n.AdjustMode, b.AdjustMode)
	setString(&n.BlendMode, b.BlendMode)
	setString(&n.ClippingMode, b.ClippingMode)
	setString(&n.SizeMode, b.SizeMode)
	setBool(&n.LineBreak, b.LineBreak)

	if b.OverriddenFields != nil {
		n.OverriddenFields = make([]scene.FieldID, 0, len(b.OverriddenFields))
		for _, name := range b.OverriddenFields {
			f, err := scene.ParseFieldID(name)
			if err != nil {
				diags = append(diags, diagError(b.subject(), "Invalid overridden field", fmt.Sprintf("Node %q: %s.", b.ID, err)))
				continue
			}
			n.OverriddenFields = append(n.OverriddenFields, f)
		}
	}
	return n, diags
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
