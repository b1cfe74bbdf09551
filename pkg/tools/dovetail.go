package tools

import (
	"context"
	"fmt"
	"math"

	"github.com/solidmcp/solidmcp/pkg/scene"
)

// DovetailTool generates a dovetail joint: flared tails added to the tail
// board and a matching block with the tail volumes cut out on the pin board.
type DovetailTool struct {
	Scene *scene.Scene
}

func (t *DovetailTool) Name() string { return "create_dovetail" }

func (t *DovetailTool) Description() string {
	return "Create a dovetail joint between a tail board and a pin board."
}

func (t *DovetailTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"tail_id":   stringSchema("Board receiving the tails"),
		"pin_id":    stringSchema("Board receiving the pins"),
		"width":     numberSchema("Total joint width, default 1"),
		"height":    numberSchema("Joint height, default 1"),
		"depth":     numberSchema("Tail depth, default 1"),
		"angle":     numberSchema("Tail flare angle in degrees, default 15"),
		"num_tails": numberSchema("Number of tails, default 3"),
		"offset_x":  numberSchema("Placement offset x"),
		"offset_y":  numberSchema("Placement offset y"),
		"offset_z":  numberSchema("Placement offset z"),
	}, "tail_id", "pin_id")
}

func (t *DovetailTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	tail, pin, err := resolveBoards(t.Scene, args, "tail_id", "pin_id")
	if err != nil {
		return nil, err
	}
	p := jointArgs(args)
	angle := floatArg(args, "angle", 15)
	numTails := intArg(args, "num_tails", 3)
	if numTails < 1 {
		return nil, fmt.Errorf("num_tails must be at least 1, got %d", numTails)
	}

	// The joint width divides into 2n-1 equal segments: n tails with n-1
	// pin gaps between them. Each tail widens toward its tip.
	tailWidth := p.width / float64(2*numTails-1)
	spread := p.depth * math.Tan(angle*math.Pi/180)

	dir := boardsDirection(tail, pin)
	tailFrame := frameOn(tail.Bounds(), dir, p.offset)
	pinFrame := frameOn(pin.Bounds(), dir, p.offset)

	// Tails are added onto the tail board.
	for k := 0; k < numTails; k++ {
		s := -p.width/2 + float64(2*k)*tailWidth
		shape, err := tailShape(t.Scene, tailFrame, s, tailWidth, spread, p.depth, p.height)
		if err != nil {
			return nil, err
		}
		scene.MergeInto(tail, shape)
		t.Scene.Erase(shape.ID())
	}

	// The pin board gets the full block with each tail volume subtracted.
	block, err := scratchBox(t.Scene, pinFrame, p.width, p.height, p.depth)
	if err != nil {
		return nil, err
	}
	defer t.Scene.Erase(block.ID())
	for k := 0; k < numTails; k++ {
		s := -p.width/2 + float64(2*k)*tailWidth
		shape, err := tailShape(t.Scene, pinFrame, s, tailWidth, spread, p.depth, p.height)
		if err != nil {
			return nil, err
		}
		scene.Subtract(block, shape)
		t.Scene.Erase(shape.ID())
	}
	scene.MergeInto(pin, block)

	return map[string]any{
		"success":    true,
		"tail_id":    tail.ID(),
		"pin_id":     pin.ID(),
		"tail_width": tailWidth,
		"num_tails":  numTails,
		"direction":  dir.String(),
	}, nil
}

// tailShape builds one trapezoidal tail as a scratch group: the top edge
// spans one segment on the face plane, the tip edge is widened by the flare
// spread at the full depth, and the profile is extruded by height.
func tailShape(sc *scene.Scene, f faceFrame, s, tw, spread, depth, height float64) (*scene.Group, error) {
	g := sc.CreateGroup("scratch")
	idx, err := g.AddFace(
		f.at(s, height/2, 0),
		f.at(s+tw, height/2, 0),
		f.at(s+tw+spread, height/2, depth),
		f.at(s-spread, height/2, depth),
	)
	if err == nil {
		// The profile's normal points along -v, so a positive distance
		// sweeps the tail across the joint height.
		err = g.PushPull(idx, height)
	}
	if err != nil {
		sc.Erase(g.ID())
		return nil, err
	}
	return g, nil
}
