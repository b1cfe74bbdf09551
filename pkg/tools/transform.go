package tools

import (
	"context"
	"fmt"
	"math"

	"github.com/solidmcp/solidmcp/pkg/geom"
	"github.com/solidmcp/solidmcp/pkg/scene"
)

// TransformTool translates, rotates and scales an existing entity.
type TransformTool struct {
	Scene *scene.Scene
}

func (t *TransformTool) Name() string { return "transform_component" }

func (t *TransformTool) Description() string {
	return "Apply translation, per-axis rotation (degrees) and scaling to an entity."
}

func (t *TransformTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"id":       stringSchema("Entity reference"),
		"position": vectorSchema("Translation [x,y,z]"),
		"rotation": vectorSchema("Rotation per axis in degrees [rx,ry,rz]"),
		"scale":    vectorSchema("Scale factors [sx,sy,sz]"),
	}, "id")
}

func (t *TransformTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	id, err := idArg(args, "id")
	if err != nil {
		return nil, err
	}
	g, ok := t.Scene.Find(id)
	if !ok {
		return nil, fmt.Errorf("Entity not found: %d", id)
	}

	if _, ok := args["position"]; ok {
		g.Translate(vecArg(args, "position", geom.Vec3{}))
	}
	if _, ok := args["rotation"]; ok {
		rot := vecArg(args, "rotation", geom.Vec3{})
		center := g.Bounds().Center()
		// Independent single-axis rotations, x then y then z, each only
		// when its component is non-zero.
		for axis, deg := range []float64{rot.X, rot.Y, rot.Z} {
			if deg != 0 {
				g.Rotate(center, axis, deg*math.Pi/180)
			}
		}
	}
	if _, ok := args["scale"]; ok {
		factors := vecArg(args, "scale", geom.Vec3{X: 1, Y: 1, Z: 1})
		g.ScaleAbout(g.Bounds().Center(), factors)
	}

	return map[string]any{"success": true, "id": g.ID()}, nil
}
