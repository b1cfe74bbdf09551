package tools

import (
	"context"
	"fmt"

	"github.com/solidmcp/solidmcp/pkg/scene"
)

// FingerJointTool generates a box joint: board 1 keeps a block with the
// alternate segments cut away, leaving protruding fingers, and board 2 gets
// full-depth slots at the complementary positions.
type FingerJointTool struct {
	Scene *scene.Scene
}

func (t *FingerJointTool) Name() string { return "create_finger_joint" }

func (t *FingerJointTool) Description() string {
	return "Create a finger (box) joint between two boards."
}

func (t *FingerJointTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"board1_id":   stringSchema("Board receiving the fingers"),
		"board2_id":   stringSchema("Board receiving the slots"),
		"width":       numberSchema("Total joint width, default 1"),
		"height":      numberSchema("Joint height, default 1"),
		"depth":       numberSchema("Finger depth, default 1"),
		"num_fingers": numberSchema("Number of finger segments, default 5"),
		"offset_x":    numberSchema("Placement offset x"),
		"offset_y":    numberSchema("Placement offset y"),
		"offset_z":    numberSchema("Placement offset z"),
	}, "board1_id", "board2_id")
}

func (t *FingerJointTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	board1, board2, err := resolveBoards(t.Scene, args, "board1_id", "board2_id")
	if err != nil {
		return nil, err
	}
	p := jointArgs(args)
	numFingers := intArg(args, "num_fingers", 5)
	if numFingers < 1 {
		return nil, fmt.Errorf("num_fingers must be at least 1, got %d", numFingers)
	}

	fingerWidth := p.width / float64(numFingers)
	dir := boardsDirection(board1, board2)
	frame1 := frameOn(board1.Bounds(), dir, p.offset)
	frame2 := frameOn(board2.Bounds(), dir, p.offset)

	// Board 1: full block, then cut away the odd segments so the even ones
	// remain as fingers.
	block, err := scratchBox(t.Scene, frame1, p.width, p.height, p.depth)
	if err != nil {
		return nil, err
	}
	defer t.Scene.Erase(block.ID())

	cuts1 := 0
	for i := 0; i < numFingers; i++ {
		if i%2 == 0 {
			continue
		}
		if err := t.cutSegment(frame1, block, p, fingerWidth, i, p.depth); err != nil {
			return nil, err
		}
		cuts1++
	}
	scene.MergeInto(board1, block)

	// Board 2: full-depth slots at the complementary (even) positions.
	cuts2 := 0
	for i := 0; i < numFingers; i++ {
		if i%2 == 1 {
			continue
		}
		if err := t.cutSegment(frame2, board2, p, fingerWidth, i, -p.depth); err != nil {
			return nil, err
		}
		cuts2++
	}

	return map[string]any{
		"success":      true,
		"board1_id":    board1.ID(),
		"board2_id":    board2.ID(),
		"finger_width": fingerWidth,
		"board1_cuts":  cuts1,
		"board2_cuts":  cuts2,
		"direction":    dir.String(),
	}, nil
}

// cutSegment subtracts one segment-wide volume from dst. dist is positive
// for a cut through the protruding block and negative for a slot into the
// board itself.
func (t *FingerJointTool) cutSegment(f faceFrame, dst *scene.Group, p jointParams, fingerWidth float64, i int, dist float64) error {
	center := -p.width/2 + (float64(i)+0.5)*fingerWidth
	slot := f
	slot.origin = f.at(center, 0, 0)
	cut, err := scratchBox(t.Scene, slot, fingerWidth, p.height, dist)
	if err != nil {
		return err
	}
	scene.Subtract(dst, cut)
	t.Scene.Erase(cut.ID())
	return nil
}
