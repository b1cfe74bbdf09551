package tools

import (
	"context"
	"fmt"

	"github.com/solidmcp/solidmcp/pkg/scene"
)

// DeleteTool erases an entity from the scene.
type DeleteTool struct {
	Scene *scene.Scene
}

func (t *DeleteTool) Name() string { return "delete_component" }

func (t *DeleteTool) Description() string {
	return "Delete an entity from the scene."
}

func (t *DeleteTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"id": stringSchema("Entity reference"),
	}, "id")
}

func (t *DeleteTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	id, err := idArg(args, "id")
	if err != nil {
		return nil, err
	}
	if _, ok := t.Scene.Find(id); !ok {
		return nil, fmt.Errorf("Entity not found: %d", id)
	}
	t.Scene.Erase(id)
	return map[string]any{"success": true}, nil
}

// SelectionTool lists the current entities.
type SelectionTool struct {
	Scene *scene.Scene
}

func (t *SelectionTool) Name() string { return "get_selection" }

func (t *SelectionTool) Description() string {
	return "List the ids and types of all current entities."
}

func (t *SelectionTool) Parameters() map[string]any {
	return objectSchema(map[string]any{})
}

func (t *SelectionTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	entities := make([]map[string]any, 0, t.Scene.Count())
	for _, g := range t.Scene.List() {
		entities = append(entities, map[string]any{"id": g.ID(), "type": g.Kind})
	}
	return map[string]any{"success": true, "selection": entities}, nil
}

// MaterialTool assigns a named or #RRGGBB material to an entity.
type MaterialTool struct {
	Scene *scene.Scene
}

func (t *MaterialTool) Name() string { return "set_material" }

func (t *MaterialTool) Description() string {
	return "Assign a material (name or #RRGGBB hex color) to an entity."
}

func (t *MaterialTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"id":       stringSchema("Entity reference"),
		"material": stringSchema("Material name or #RRGGBB color"),
	}, "id", "material")
}

func (t *MaterialTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	id, err := idArg(args, "id")
	if err != nil {
		return nil, err
	}
	material := stringArg(args, "material", "")
	if material == "" {
		return nil, fmt.Errorf("missing required argument: material")
	}
	if err := t.Scene.SetMaterial(id, material); err != nil {
		return nil, err
	}
	return map[string]any{"success": true, "id": id, "material": material}, nil
}
