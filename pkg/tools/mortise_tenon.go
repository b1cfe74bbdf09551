package tools

import (
	"context"

	"github.com/solidmcp/solidmcp/pkg/scene"
)

// MortiseTenonTool cuts a rectangular pocket into the mortise board and adds
// the matching boss to the tenon board's opposing face. Both boards are
// mutated in place; the handler returns their original ids.
type MortiseTenonTool struct {
	Scene *scene.Scene
}

func (t *MortiseTenonTool) Name() string { return "create_mortise_tenon" }

func (t *MortiseTenonTool) Description() string {
	return "Create a matching mortise pocket and tenon boss on two boards."
}

func (t *MortiseTenonTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"mortise_id": stringSchema("Board receiving the pocket"),
		"tenon_id":   stringSchema("Board receiving the boss"),
		"width":      numberSchema("Joint width, default 1"),
		"height":     numberSchema("Joint height, default 1"),
		"depth":      numberSchema("Joint depth, default 1"),
		"offset_x":   numberSchema("Placement offset x"),
		"offset_y":   numberSchema("Placement offset y"),
		"offset_z":   numberSchema("Placement offset z"),
	}, "mortise_id", "tenon_id")
}

func (t *MortiseTenonTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	mortise, tenon, err := resolveBoards(t.Scene, args, "mortise_id", "tenon_id")
	if err != nil {
		return nil, err
	}
	p := jointArgs(args)

	// The pocket goes on the mortise board's face toward the tenon board;
	// the boss goes on the tenon board's opposing face.
	dir := boardsDirection(mortise, tenon)

	pocket, err := scratchBox(t.Scene, frameOn(mortise.Bounds(), dir, p.offset), p.width, p.height, -p.depth)
	if err != nil {
		return nil, err
	}
	scene.Subtract(mortise, pocket)
	t.Scene.Erase(pocket.ID())

	boss, err := scratchBox(t.Scene, frameOn(tenon.Bounds(), dir.Opposite(), p.offset), p.width, p.height, p.depth)
	if err != nil {
		return nil, err
	}
	scene.MergeInto(tenon, boss)
	t.Scene.Erase(boss.ID())

	return map[string]any{
		"success":    true,
		"mortise_id": mortise.ID(),
		"tenon_id":   tenon.ID(),
		"direction":  dir.String(),
	}, nil
}
