package tools

import (
	"context"
	"fmt"

	"github.com/solidmcp/solidmcp/pkg/scene"
)

// BooleanTool combines two solids by union, difference or intersection. All
// three variants work on duplicates of the operands; every scratch group is
// erased before returning, on success and failure alike.
type BooleanTool struct {
	Scene *scene.Scene
}

func (t *BooleanTool) Name() string { return "boolean_operation" }

func (t *BooleanTool) Description() string {
	return "Combine two solids with union, difference or intersection."
}

func (t *BooleanTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"operation":        stringSchema("union, difference or intersection"),
		"target_id":        stringSchema("Entity reference of the target solid"),
		"tool_id":          stringSchema("Entity reference of the tool solid"),
		"delete_originals": map[string]any{"type": "boolean", "description": "Erase the original solids afterwards"},
	}, "operation", "target_id", "tool_id")
}

func (t *BooleanTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	op := stringArg(args, "operation", "")
	targetID, err := idArg(args, "target_id")
	if err != nil {
		return nil, err
	}
	toolID, err := idArg(args, "tool_id")
	if err != nil {
		return nil, err
	}

	target, ok := t.Scene.Find(targetID)
	if !ok {
		return nil, fmt.Errorf("Target entity not found: %d", targetID)
	}
	tool, ok := t.Scene.Find(toolID)
	if !ok {
		return nil, fmt.Errorf("Tool entity not found: %d", toolID)
	}
	if len(target.Faces) == 0 {
		return nil, fmt.Errorf("Target entity %d is not a solid group", targetID)
	}
	if len(tool.Faces) == 0 {
		return nil, fmt.Errorf("Tool entity %d is not a solid group", toolID)
	}

	// Duplicates carry the operands' applied transforms, since geometry is
	// stored in model space.
	dupTarget := t.Scene.CopyGroup(target)
	dupTool := t.Scene.CopyGroup(tool)
	defer t.Scene.Erase(dupTarget.ID())
	defer t.Scene.Erase(dupTool.ID())

	result := t.Scene.CreateGroup("group")
	switch op {
	case "union":
		scene.MergeInto(result, dupTarget, dupTool)
	case "difference":
		scene.MergeInto(result, dupTarget)
		scene.Subtract(result, dupTool)
	case "intersection":
		if err := scene.IntersectInto(result, dupTarget, dupTool); err != nil {
			t.Scene.Erase(result.ID())
			return nil, err
		}
	default:
		t.Scene.Erase(result.ID())
		return nil, fmt.Errorf("unknown boolean operation: %s", op)
	}

	if boolArg(args, "delete_originals") {
		t.Scene.Erase(targetID)
		t.Scene.Erase(toolID)
	}

	return map[string]any{"success": true, "id": result.ID(), "operation": op}, nil
}
