package hcl

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/scenec/internal/scene"
)

const mainScene = `
script         = "/main/hud.gui_script"
scene_material = "/builtins/materials/gui.material"

font "title"        { font = "/fonts/title.font" }
texture "ui"        { texture = "/gfx/ui.atlas" }
material "glow"     { material = "/materials/glow.material" }
particlefx "sparks" { particlefx = "/fx/sparks.particlefx" }
spine_scene "hero"  { spine_scene = "/spine/hero.spinescene" }
resource "data"     { path = "/data/extra.spinescene" }
layer "front"       {}

node "button" {
  type     = "template"
  template = "/gui/button.gui"
  position = [100, 50, 0]
  rotation = [0, 0, 90]
  scale    = [2, 2, 1]
  color    = [1, 0.5, 0.25, 0.75]
  alpha    = 0.5
  layer    = "front"
}

node "button/label" {
  type                = "text"
  parent              = "button"
  template_node_child = true
  text                = "Play"
  overridden_fields   = ["text"]
}

node "legacy" {}

layout "Landscape" {
  node "button" {
    position          = [300, 50, 0]
    overridden_fields = ["position"]
  }
}
`

func TestDecode_Scene(t *testing.T) {
	s, err := Decode(context.Background(), []byte(mainScene), "/gui/main.gui")
	require.NoError(t, err)

	assert.Equal(t, "/gui/main.gui", s.Path)
	assert.Equal(t, "/main/hud.gui_script", s.Script)
	assert.Equal(t, "/builtins/materials/gui.material", s.Material)
	assert.Equal(t, []scene.FontDesc{{Name: "title", Font: "/fonts/title.font"}}, s.Fonts)
	assert.Equal(t, []scene.TextureDesc{{Name: "ui", Texture: "/gfx/ui.atlas"}}, s.Textures)
	assert.Equal(t, []scene.MaterialDesc{{Name: "glow", Material: "/materials/glow.material"}}, s.Materials)
	assert.Equal(t, []scene.ParticlefxDesc{{Name: "sparks", Particlefx: "/fx/sparks.particlefx"}}, s.Particlefxs)
	assert.Equal(t, []scene.SpineSceneDesc{{Name: "hero", SpineScene: "/spine/hero.spinescene"}}, s.SpineScenes)
	assert.Equal(t, []scene.ResourceDesc{{Name: "data", Path: "/data/extra.spinescene"}}, s.Resources)
	assert.Equal(t, []scene.LayerDesc{{Name: "front"}}, s.Layers)

	require.Len(t, s.Nodes, 3)
	button := s.Nodes[0]
	assert.Equal(t, "button", button.ID)
	assert.Equal(t, scene.TypeTemplate, button.Type)
	assert.Equal(t, "/gui/button.gui", button.Template)
	assert.Equal(t, scene.Point(100, 50, 0), button.Position)
	assert.Equal(t, scene.Point(0, 0, 90), button.Rotation)
	assert.Equal(t, scene.Point(2, 2, 1), button.Scale)
	assert.Equal(t, scene.Vec4{X: 1, Y: 0.5, Z: 0.25, W: 0.75}, button.Color)
	require.NotNil(t, button.Alpha)
	assert.Equal(t, 0.5, *button.Alpha)
	assert.Equal(t, "front", button.Layer)
	assert.True(t, button.Enabled)
	assert.True(t, button.Visible)

	label := s.Nodes[1]
	assert.Equal(t, scene.TypeText, label.Type)
	assert.Equal(t, "button", label.Parent)
	assert.True(t, label.TemplateNodeChild)
	assert.Equal(t, []scene.FieldID{scene.FieldText}, label.OverriddenFields)

	legacy := s.Nodes[2]
	assert.Equal(t, scene.NewNode("legacy", scene.TypeBox), legacy)
	assert.False(t, legacy.HasAlpha(), "absent alpha is left for migration")

	require.Len(t, s.Layouts, 1)
	land := s.Layouts[0]
	assert.Equal(t, "Landscape", land.Name)
	require.Len(t, land.Nodes, 1)
	ln := land.Nodes[0]
	assert.Equal(t, scene.Point(300, 50, 0), ln.Position)
	assert.Equal(t, scene.TypeTemplate, ln.Type, "layout nodes start from the default node")
	assert.Equal(t, "/gui/button.gui", ln.Template)
	assert.Equal(t, scene.Point(2, 2, 1), ln.Scale)
	assert.Equal(t, []scene.FieldID{scene.FieldPosition}, ln.OverriddenFields)
}

func TestDecode_LayoutOnlyNodeGetsAlpha(t *testing.T) {
	src := `
layout "Portrait" {
  node "extra" {
    color = [1, 1, 1, 0.5]
  }
}
`
	s, err := Decode(context.Background(), []byte(src), "/gui/a.gui")
	require.NoError(t, err)
	n := s.Layouts[0].Nodes[0]
	require.True(t, n.HasAlpha())
	assert.Equal(t, 0.5, *n.Alpha)
}

func TestDecode_VectorWComponent(t *testing.T) {
	src := `
node "a" {
  position = [1, 2, 3]
  size     = [10, 20, 0]
  color    = [0, 0, 0]
}
`
	s, err := Decode(context.Background(), []byte(src), "/gui/a.gui")
	require.NoError(t, err)
	n := s.Nodes[0]
	assert.Equal(t, 1.0, n.Position.W)
	assert.Equal(t, 0.0, n.Size.W)
	assert.Equal(t, 1.0, n.Color.W)
}

func TestDecode_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		summary string
	}{
		{"syntax", `node "a" {`, ""},
		{"unknown attribute", `node "a" { colour = [1, 1, 1] }`, "Unsupported argument"},
		{"bad node type", `node "a" { type = "sprite" }`, "Invalid node type"},
		{"bad field", `node "a" { overridden_fields = ["id"] }`, "Invalid overridden field"},
		{"short vector", `node "a" { position = [1, 2] }`, "Invalid vector"},
		{"long vector", `node "a" { position = [1, 2, 3, 4, 5] }`, "Invalid vector"},
		{"non numeric vector", `node "a" { position = ["x", 2, 3] }`, "Invalid vector"},
		{"missing font path", `font "title" {}`, "Missing required argument"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(context.Background(), []byte(tc.src), "/gui/bad.gui")
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "/gui/bad.gui", pe.Path)
			assert.Contains(t, err.Error(), "/gui/bad.gui")

			var diags hcl.Diagnostics
			require.True(t, errors.As(err, &diags))
			if tc.summary != "" {
				assert.Equal(t, tc.summary, diags[0].Summary)
			}
		})
	}
}
