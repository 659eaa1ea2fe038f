package scene

import "fmt"

// FieldID names a node field that a layout or template instance can
// override.
type FieldID string

const (
	FieldPosition     FieldID = "position"
	FieldRotation     FieldID = "rotation"
	FieldScale        FieldID = "scale"
	FieldSize         FieldID = "size"
	FieldColor        FieldID = "color"
	FieldShadow       FieldID = "shadow"
	FieldOutline      FieldID = "outline"
	FieldAlpha        FieldID = "alpha"
	FieldShadowAlpha  FieldID = "shadow_alpha"
	FieldOutlineAlpha FieldID = "outline_alpha"
	FieldInheritAlpha FieldID = "inherit_alpha"
	FieldEnabled      FieldID = "enabled"
	FieldVisible      FieldID = "visible"
	FieldLayer        FieldID = "layer"
	FieldText         FieldID = "text"
	FieldFont         FieldID = "font"
	FieldTexture      FieldID = "texture"
	FieldMaterial     FieldID = "material"
	FieldParticlefx   FieldID = "particlefx"
	FieldSpineScene   FieldID = "spine_scene"
	FieldPivot        FieldID = "pivot"
	FieldXAnchor      FieldID = "x_anchor"
	FieldYAnchor      FieldID = "y_anchor"
	FieldAdjustMode   FieldID = "adjust_mode"
	FieldBlendMode    FieldID = "blend_mode"
	FieldClippingMode FieldID = "clipping_mode"
	FieldSizeMode     FieldID = "size_mode"
	FieldLineBreak    FieldID = "line_break"
	FieldCustomType   FieldID = "custom_type"
)

// Fields lists every overridable field in declaration order.
var Fields = []FieldID{
	FieldPosition, FieldRotation, FieldScale, FieldSize,
	FieldColor, FieldShadow, FieldOutline,
	FieldAlpha, FieldShadowAlpha, FieldOutlineAlpha, FieldInheritAlpha,
	FieldEnabled, FieldVisible, FieldLayer,
	FieldText, FieldFont, FieldTexture, FieldMaterial, FieldParticlefx, FieldSpineScene,
	FieldPivot, FieldXAnchor, FieldYAnchor, FieldAdjustMode, FieldBlendMode,
	FieldClippingMode, FieldSizeMode, FieldLineBreak, FieldCustomType,
}

var fieldSet = func() map[FieldID]struct{} {
	m := make(map[FieldID]struct{}, len(Fields))
	for _, f := range Fields {
		m[f] = struct{}{}
	}
	return m
}()

// ParseFieldID validates an overridable field name.
func ParseFieldID(s string) (FieldID, error) {
	f := FieldID(s)
	if _, ok := fieldSet[f]; !ok {
		return "", fmt.Errorf("unknown overridable field %q", s)
	}
	return f, nil
}

// CopyField returns dst with the single field f taken from src. Unknown
// field ids leave dst untouched.
func CopyField(dst, src Node, f FieldID) Node {
	switch f {
	case FieldPosition:
		dst.Position = src.Position
	case FieldRotation:
		dst.Rotation = src.Rotation
	case FieldScale:
		dst.Scale = src.Scale
	case FieldSize:
		dst.Size = src.Size
	case FieldColor:
		dst.Color = src.Color
	case FieldShadow:
		dst.Shadow = src.Shadow
	case FieldOutline:
		dst.Outline = src.Outline
	case FieldAlpha:
		dst.Alpha = copyFloat(src.Alpha)
	case FieldShadowAlpha:
		dst.ShadowAlpha = copyFloat(src.ShadowAlpha)
	case FieldOutlineAlpha:
		dst.OutlineAlpha = copyFloat(src.OutlineAlpha)
	case FieldInheritAlpha:
		dst.InheritAlpha = src.InheritAlpha
	case FieldEnabled:
		dst.Enabled = src.Enabled
	case FieldVisible:
		dst.Visible = src.Visible
	case FieldLayer:
		dst.Layer = src.Layer
	case FieldText:
		dst.Text = src.Text
	case FieldFont:
		dst.Font = src.Font
	case FieldTexture:
		dst.Texture = src.Texture
	case FieldMaterial:
		dst.Material = src.Material
	case FieldParticlefx:
		dst.Particlefx = src.Particlefx
	case FieldSpineScene:
		dst.SpineScene = src.SpineScene
	case FieldPivot:
		dst.Pivot = src.Pivot
	case FieldXAnchor:
		dst.XAnchor = src.XAnchor
	case FieldYAnchor:
		dst.YAnchor = src.YAnchor
	case FieldAdjustMode:
		dst.AdjustMode = src.AdjustMode
	case FieldBlendMode:
		dst.BlendMode = src.BlendMode
	case FieldClippingMode:
		dst.ClippingMode = src.ClippingMode
	case FieldSizeMode:
		dst.SizeMode = src.SizeMode
	case FieldLineBreak:
		dst.LineBreak = src.LineBreak
	case FieldCustomType:
		dst.CustomType = src.CustomType
	}
	return dst
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	return Float(*f)
}
