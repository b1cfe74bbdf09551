package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/solidmcp/solidmcp/pkg/scene"
)

// ExportTool saves the scene to a geometry format or renders the view to an
// image. Filenames are unique per request so repeated exports never clobber
// each other.
type ExportTool struct {
	Scene *scene.Scene
	Dir   string
}

func (t *ExportTool) Name() string { return "export_scene" }

func (t *ExportTool) Description() string {
	return "Export the scene (skp/obj/dae/stl) or render the view to an image (png/jpg)."
}

func (t *ExportTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"format": stringSchema("Export format: skp, obj, dae, stl, png or jpg"),
		"width":  numberSchema("Image width for png/jpg renders"),
		"height": numberSchema("Image height for png/jpg renders"),
	})
}

func (t *ExportTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	format := stringArg(args, "format", "skp")

	dir := t.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("export-%s.%s", uuid.NewString(), format))

	switch format {
	case "skp", "obj", "dae", "stl":
		if err := t.Scene.ExportDocument(path, format); err != nil {
			return nil, err
		}
	case "png", "jpg":
		width := intArg(args, "width", 800)
		height := intArg(args, "height", 600)
		if err := t.Scene.RenderImage(path, format, width, height); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	return map[string]any{"success": true, "path": path, "format": format}, nil
}

// exportAlias exposes the same handler under the short legacy name.
type exportAlias struct {
	*ExportTool
}

func (t *exportAlias) Name() string { return "export" }
