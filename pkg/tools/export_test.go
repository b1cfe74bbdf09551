package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidmcp/solidmcp/pkg/geom"
	"github.com/solidmcp/solidmcp/pkg/scene"
)

func TestExportWritesFile(t *testing.T) {
	sc := scene.NewScene()
	makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1})
	tool := &ExportTool{Scene: sc, Dir: t.TempDir()}

	for _, format := range []string{"skp", "obj", "stl", "dae", "png"} {
		result, err := tool.Execute(context.Background(), map[string]any{"format": format})
		require.NoError(t, err, format)

		path := result["path"].(string)
		assert.Equal(t, "."+format, filepath.Ext(path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

// TestExportUniqueFilenames tests that repeated exports never clobber each
// other.
func TestExportUniqueFilenames(t *testing.T) {
	sc := scene.NewScene()
	tool := &ExportTool{Scene: sc, Dir: t.TempDir()}

	first, err := tool.Execute(context.Background(), map[string]any{"format": "obj"})
	require.NoError(t, err)
	second, err := tool.Execute(context.Background(), map[string]any{"format": "obj"})
	require.NoError(t, err)
	assert.NotEqual(t, first["path"], second["path"])
}

func TestExportUnknownFormat(t *testing.T) {
	sc := scene.NewScene()
	tool := &ExportTool{Scene: sc, Dir: t.TempDir()}

	_, err := tool.Execute(context.Background(), map[string]any{"format": "gltf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestExportAliasName(t *testing.T) {
	sc := scene.NewScene()
	r := DefaultRegistry(sc, t.TempDir())

	long, ok := r.Get("export_scene")
	require.True(t, ok)
	short, ok := r.Get("export")
	require.True(t, ok)
	assert.Equal(t, "export", short.Name())
	assert.Equal(t, long.Description(), short.Description())
}
