package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/scenec/internal/scene"
)

func TestCompiledPath(t *testing.T) {
	testCases := []struct {
		name string
		kind Kind
		in   string
		want string
	}{
		{"font", KindFont, "/fonts/title.font", "/fonts/title.fontc"},
		{"atlas", KindTexture, "/gfx/ui.atlas", "/gfx/ui.a.texturesetc"},
		{"tilesource", KindTexture, "/gfx/tiles.tilesource", "/gfx/tiles.t.texturesetc"},
		{"image texture", KindTexture, "/gfx/bg.png", "/gfx/bg.texturec"},
		{"unknown texture", KindTexture, "/gfx/bg.raw", "/gfx/bg.raw"},
		{"material", KindMaterial, "/m/glow.material", "/m/glow.materialc"},
		{"particlefx", KindParticlefx, "/fx/sparks.particlefx", "/fx/sparks.particlefxc"},
		{"spine scene resource", KindResource, "/spine/hero.spinescene", "/spine/hero.spinescenec"},
		{"other resource", KindResource, "/data/blob.bin", "/data/blob.bin"},
		{"extension only at end", KindFont, "/fonts.font/readme", "/fonts.font/readme"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CompiledPath(tc.kind, tc.in))
		})
	}
	assert.Equal(t, "/main/hud.gui_scriptc", CompiledScriptPath("/main/hud.gui_script"))
}

func TestRegister_RewritesOnlyWhenCompiling(t *testing.T) {
	s := &scene.Scene{Fonts: []scene.FontDesc{{Name: "title", Font: "foo.font"}}}

	compiled := New("/gui/a.gui", true)
	require.NoError(t, compiled.RegisterScene(s))
	out := &scene.Scene{}
	compiled.Apply(out)
	assert.Equal(t, "foo.fontc", out.Fonts[0].Font)

	preview := New("/gui/a.gui", false)
	require.NoError(t, preview.RegisterScene(s))
	out = &scene.Scene{}
	preview.Apply(out)
	assert.Equal(t, "foo.font", out.Fonts[0].Font)
}

func TestRegister_DuplicateFont(t *testing.T) {
	s := &scene.Scene{Fonts: []scene.FontDesc{
		{Name: "title", Font: "/fonts/a.font"},
		{Name: "title", Font: "/fonts/b.font"},
	}}

	err := New("/gui/a.gui", true).RegisterScene(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scene.ErrDuplicateResource))
	assert.Contains(t, err.Error(), "/gui/a.gui")

	assert.NoError(t, New("/gui/a.gui", false).RegisterScene(s), "editor mode does not validate")
}

func TestRegister_SameNameDifferentKinds(t *testing.T) {
	r := New("/gui/a.gui", true)
	require.NoError(t, r.Register(KindFont, "main", "/a.font"))
	require.NoError(t, r.Register(KindTexture, "main", "/a.atlas"))
	require.NoError(t, r.Register(KindLayer, "main", ""))
}

func TestRegister_SpineScenesFoldIntoResources(t *testing.T) {
	s := &scene.Scene{
		SpineScenes: []scene.SpineSceneDesc{{Name: "hero", SpineScene: "/spine/hero.spinescene"}},
		Resources:   []scene.ResourceDesc{{Name: "hero", Path: "/spine/other.spinescene"}},
	}
	err := New("/gui/a.gui", true).RegisterScene(s)
	assert.True(t, errors.Is(err, scene.ErrDuplicateResource), "spine scenes share the resource namespace")

	s.Resources = nil
	r := New("/gui/a.gui", true)
	require.NoError(t, r.RegisterScene(s))
	out := &scene.Scene{SpineScenes: s.SpineScenes}
	r.Apply(out)
	assert.Nil(t, out.SpineScenes)
	assert.Equal(t, []scene.ResourceDesc{{Name: "hero", Path: "/spine/hero.spinescenec"}}, out.Resources)
}

func TestRegister_ExistenceCheck(t *testing.T) {
	exists := func(path string) bool { return path == "/fonts/ok.font" }

	r := New("/gui/a.gui", true, WithExistenceCheck(exists))
	require.NoError(t, r.Register(KindFont, "ok", "/fonts/ok.font"))
	err := r.Register(KindFont, "gone", "/fonts/gone.font")
	assert.True(t, errors.Is(err, scene.ErrMissingResource))

	preview := New("/gui/a.gui", false, WithExistenceCheck(exists))
	assert.NoError(t, preview.Register(KindFont, "gone", "/fonts/gone.font"))
}

func TestFold_FirstRegisteredWins(t *testing.T) {
	r := New("/gui/outer.gui", true)
	require.NoError(t, r.RegisterScene(&scene.Scene{
		Textures: []scene.TextureDesc{{Name: "tex", Texture: "a.png"}},
	}))

	r.FoldScene(context.Background(), &scene.Scene{
		Path: "/gui/inner.gui",
		Textures: []scene.TextureDesc{
			{Name: "tex", Texture: "b.png"},
			{Name: "icons", Texture: "icons.a.texturesetc"},
		},
		Fonts: []scene.FontDesc{{Name: "body", Font: "body.fontc"}},
	})
	assert.False(t, r.Fold(KindFont, "body", "other.fontc"))

	out := &scene.Scene{}
	r.Apply(out)
	assert.Equal(t, []scene.TextureDesc{
		{Name: "tex", Texture: "a.texturec"},
		{Name: "icons", Texture: "icons.a.texturesetc"},
	}, out.Textures)
	assert.Equal(t, []scene.FontDesc{{Name: "body", Font: "body.fontc"}}, out.Fonts)
}

func TestFoldScene_SkipsLayers(t *testing.T) {
	r := New("/gui/outer.gui", true)
	require.NoError(t, r.RegisterScene(&scene.Scene{Layers: []scene.LayerDesc{{Name: "back"}, {Name: "front"}}}))
	r.FoldScene(context.Background(), &scene.Scene{Layers: []scene.LayerDesc{{Name: "inner"}}})

	out := &scene.Scene{}
	r.Apply(out)
	assert.Equal(t, []scene.LayerDesc{{Name: "back"}, {Name: "front"}}, out.Layers)
}

func TestValidateNode(t *testing.T) {
	r := New("/gui/a.gui", true)
	require.NoError(t, r.RegisterScene(&scene.Scene{
		Fonts:       []scene.FontDesc{{Name: "title", Font: "/f.font"}},
		Textures:    []scene.TextureDesc{{Name: "ui", Texture: "/ui.atlas"}},
		Materials:   []scene.MaterialDesc{{Name: "glow", Material: "/g.material"}},
		Particlefxs: []scene.ParticlefxDesc{{Name: "sparks", Particlefx: "/s.particlefx"}},
		SpineScenes: []scene.SpineSceneDesc{{Name: "hero", SpineScene: "/h.spinescene"}},
		Layers:      []scene.LayerDesc{{Name: "front"}},
	}))

	ok := scene.NewNode("ok", scene.TypeText)
	ok.Font = "title"
	ok.Texture = "ui/button_pressed"
	ok.Material = "glow"
	ok.Particlefx = "sparks"
	ok.SpineScene = "hero"
	ok.Layer = "front"
	require.NoError(t, r.ValidateNode(ok))

	testCases := []struct {
		name   string
		mutate func(n *scene.Node)
		want   error
	}{
		{"font", func(n *scene.Node) { n.Font = "body" }, scene.ErrMissingResource},
		{"texture", func(n *scene.Node) { n.Texture = "icons/home" }, scene.ErrMissingResource},
		{"material", func(n *scene.Node) { n.Material = "flat" }, scene.ErrMissingResource},
		{"particlefx", func(n *scene.Node) { n.Particlefx = "smoke" }, scene.ErrMissingResource},
		{"spine scene", func(n *scene.Node) { n.SpineScene = "villain" }, scene.ErrMissingResource},
		{"layer", func(n *scene.Node) { n.Layer = "back" }, scene.ErrMissingResource},
		{"empty template", func(n *scene.Node) { n.Type = scene.TypeTemplate }, scene.ErrEmptyTemplate},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := ok
			tc.mutate(&n)
			err := r.ValidateNode(n)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestValidateNode_EditorMode(t *testing.T) {
	r := New("/gui/a.gui", false)

	n := scene.NewNode("box", scene.TypeBox)
	n.Font = "undeclared"
	assert.NoError(t, r.ValidateNode(n))
	assert.NoError(t, r.ValidateReference(KindLayer, "undeclared"))

	tmpl := scene.NewNode("button", scene.TypeTemplate)
	assert.True(t, errors.Is(r.ValidateNode(tmpl), scene.ErrEmptyTemplate))
}
