package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"gui/main.gui",
		"gui/button.gui.jsonc",
		"gui/readme.md",
		"gui/sub/panel.gui",
		".git/objects/x.gui",
	} {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	files, err := FindFilesByExtension(root, ".gui", ".gui.jsonc")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "gui/button.gui.jsonc"),
		filepath.Join(root, "gui/main.gui"),
		filepath.Join(root, "gui/sub/panel.gui"),
	}, files)

	_, err = FindFilesByExtension(filepath.Join(root, "missing"), ".gui")
	assert.Error(t, err)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root) })
}
