package registry

import "strings"

// textureSourceExts are image formats compiled to a single texture.
var textureSourceExts = []string{".png", ".jpg", ".jpeg", ".tga", ".cubemap", ".render_target"}

// ReplaceExt replaces the suffix from with to. Paths not ending with from
// are returned unchanged.
func ReplaceExt(path, from, to string) string {
	if !strings.HasSuffix(path, from) {
		return path
	}
	return strings.TrimSuffix(path, from) + to
}

// CompiledTexturePath maps a texture source to its compiled resource.
func CompiledTexturePath(path string) string {
	switch {
	case strings.HasSuffix(path, ".atlas"):
		return ReplaceExt(path, ".atlas", ".a.texturesetc")
	case strings.HasSuffix(path, ".tilesource"):
		return ReplaceExt(path, ".tilesource", ".t.texturesetc")
	}
	for _, ext := range textureSourceExts {
		if strings.HasSuffix(path, ext) {
			return ReplaceExt(path, ext, ".texturec")
		}
	}
	return path
}

// CompiledPath maps the source path of a resource of the given kind to the
// path of its compiled counterpart.
func CompiledPath(kind Kind, path string) string {
	switch kind {
	case KindFont:
		return ReplaceExt(path, ".font", ".fontc")
	case KindTexture:
		return CompiledTexturePath(path)
	case KindMaterial:
		return ReplaceExt(path, ".material", ".materialc")
	case KindParticlefx:
		return ReplaceExt(path, ".particlefx", ".particlefxc")
	case KindResource:
		return ReplaceExt(path, ".spinescene", ".spinescenec")
	default:
		return path
	}
}

// CompiledScriptPath maps a scene script to its compiled counterpart.
func CompiledScriptPath(path string) string {
	return ReplaceExt(path, ".gui_script", ".gui_scriptc")
}
