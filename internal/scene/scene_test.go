package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeType(t *testing.T) {
	testCases := []struct {
		in        string
		want      NodeType
		expectErr bool
	}{
		{in: "", want: TypeBox},
		{in: "box", want: TypeBox},
		{in: "template", want: TypeTemplate},
		{in: "spine", want: TypeSpine},
		{in: "sprite", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseNodeType(tc.in)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFieldID(t *testing.T) {
	f, err := ParseFieldID("position")
	require.NoError(t, err)
	assert.Equal(t, FieldPosition, f)

	_, err = ParseFieldID("id")
	assert.Error(t, err)
}

// changedNode differs from NewNode defaults in every overridable field.
func changedNode() Node {
	n := NewNode("src", TypeText)
	n.Position = Point(1, 2, 3)
	n.Rotation = Point(10, 20, 30)
	n.Scale = Point(2, 2, 2)
	n.Size = Point(100, 50, 0)
	n.Color = Vec4{X: 0.1, Y: 0.2, Z: 0.3, W: 0.4}
	n.Shadow = Vec4{X: 0.5, W: 0.5}
	n.Outline = Vec4{Y: 0.6, W: 0.6}
	n.Alpha = Float(0.3)
	n.ShadowAlpha = Float(0.2)
	n.OutlineAlpha = Float(0.1)
	n.InheritAlpha = true
	n.Enabled = false
	n.Visible = false
	n.Layer = "front"
	n.Text = "hello"
	n.Font = "title"
	n.Texture = "ui/button"
	n.Material = "glow"
	n.Particlefx = "sparks"
	n.SpineScene = "hero"
	n.Pivot = "north"
	n.XAnchor = "left"
	n.YAnchor = "top"
	n.AdjustMode = "stretch"
	n.BlendMode = "add"
	n.ClippingMode = "stencil"
	n.SizeMode = "auto"
	n.LineBreak = true
	n.CustomType = 7
	return n
}

func TestCopyField_TouchesOnlyThatField(t *testing.T) {
	src := changedNode()
	base := NewNode("dst", TypeText)

	for _, f := range Fields {
		t.Run(string(f), func(t *testing.T) {
			got := CopyField(base, src, f)
			assert.NotEqual(t, base, got, "field %s was not copied", f)

			// Copying the same field back from base restores the original.
			assert.Equal(t, base, CopyField(got, base, f))
		})
	}
}

func TestCopyField_DetachesAlphaPointer(t *testing.T) {
	src := changedNode()
	got := CopyField(NewNode("dst", TypeBox), src, FieldAlpha)
	require.NotNil(t, got.Alpha)
	*src.Alpha = 0.9
	assert.InDelta(t, 0.3, *got.Alpha, 1e-9)
}

func TestClone_IsIndependent(t *testing.T) {
	n := changedNode()
	n.OverriddenFields = []FieldID{FieldPosition}
	s := &Scene{
		Path:    "/gui/a.gui",
		Nodes:   []Node{n},
		Layouts: []Layout{{Name: "Landscape", Nodes: []Node{n}}},
		Fonts:   []FontDesc{{Name: "title", Font: "/fonts/title.font"}},
	}

	c, err := s.Clone()
	require.NoError(t, err)
	assert.Equal(t, s.Path, c.Path)
	require.Len(t, c.Nodes, 1)
	assert.Equal(t, s.Nodes[0].Position, c.Nodes[0].Position)
	assert.InDelta(t, 0.3, *c.Nodes[0].Alpha, 1e-9)
	require.Len(t, c.Layouts, 1)
	assert.Equal(t, "Landscape", c.Layouts[0].Name)
	assert.Equal(t, s.Fonts, c.Fonts)

	c.Nodes[0].ID = "changed"
	*c.Nodes[0].Alpha = 0.99
	c.Nodes[0].OverriddenFields[0] = FieldScale
	c.Layouts[0].Nodes = nil
	c.Fonts[0].Font = "/fonts/other.font"

	assert.Equal(t, "src", s.Nodes[0].ID)
	assert.InDelta(t, 0.3, *s.Nodes[0].Alpha, 1e-9)
	assert.Equal(t, FieldPosition, s.Nodes[0].OverriddenFields[0])
	assert.Len(t, s.Layouts[0].Nodes, 1)
	assert.Equal(t, "/fonts/title.font", s.Fonts[0].Font)
}

func TestNodeCopy_IsIndependent(t *testing.T) {
	n := changedNode()
	n.OverriddenFields = []FieldID{FieldText}
	c := n.Copy()
	*c.Alpha = 0.5
	c.OverriddenFields[0] = FieldFont
	assert.InDelta(t, 0.3, *n.Alpha, 1e-9)
	assert.Equal(t, FieldText, n.OverriddenFields[0])
}

func TestLayoutLookup(t *testing.T) {
	s := &Scene{Layouts: []Layout{{Name: "Landscape"}, {Name: "Portrait"}}}
	_, ok := s.Layout("Portrait")
	assert.True(t, ok)
	_, ok = s.Layout("Square")
	assert.False(t, ok)
	assert.Equal(t, []string{"Landscape", "Portrait"}, s.LayoutNames())
}

func TestMurmurHash32(t *testing.T) {
	testCases := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"abc", 291020647},
		{"abcd", 1545157703},
		{"Spine", 405028931},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, MurmurHash32(tc.in), "hash of %q", tc.in)
	}
	assert.Equal(t, uint32(405028931), SpineCustomType)
}

func TestCompileError(t *testing.T) {
	err := NewCompileError("/gui/a.gui", ErrMissingResource, "title", "font %q is not declared", "title")
	assert.True(t, errors.Is(err, ErrMissingResource))
	assert.Equal(t, `/gui/a.gui: missing resource: font "title" is not declared`, err.Error())

	var ce *CompileError
	require.True(t, errors.As(error(err), &ce))
	assert.Equal(t, "title", ce.Name)
}

func TestWithLegacyAlpha(t *testing.T) {
	n := NewNode("a", TypeBox)
	n.Color.W = 0.25
	n.Shadow.W = 0.5
	n.ShadowAlpha = Float(0.9)

	got := n.WithLegacyAlpha()
	assert.InDelta(t, 0.25, *got.Alpha, 1e-9)
	assert.InDelta(t, 0.9, *got.ShadowAlpha, 1e-9, "explicit values are kept")
	assert.InDelta(t, 1, *got.OutlineAlpha, 1e-9)
	assert.Nil(t, n.Alpha)
}

func TestLayoutBase(t *testing.T) {
	def := NewNode("title", TypeText)
	def.Text = "Hello"
	def.Alpha = Float(0.5)
	def.OverriddenFields = []FieldID{FieldText}
	defaults := NodeMap([]Node{def})

	base := LayoutBase(defaults, "title")
	assert.Equal(t, "Hello", base.Text)
	assert.Nil(t, base.OverriddenFields)
	*base.Alpha = 0.1
	assert.InDelta(t, 0.5, *def.Alpha, 1e-9)

	assert.Equal(t, NewNode("other", TypeBox), LayoutBase(defaults, "other"))
}
