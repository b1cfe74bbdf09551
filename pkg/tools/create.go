package tools

import (
	"context"
	"fmt"
	"math"

	"github.com/solidmcp/solidmcp/pkg/geom"
	"github.com/solidmcp/solidmcp/pkg/scene"
)

const (
	circleSegments = 24
	sphereSegments = 16
)

// CreateTool builds tessellated primitive solids.
type CreateTool struct {
	Scene *scene.Scene
}

func (t *CreateTool) Name() string { return "create_component" }

func (t *CreateTool) Description() string {
	return "Create a primitive solid (cube, cylinder, sphere, cone) at a position with given dimensions."
}

func (t *CreateTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"type":       stringSchema("Primitive type: cube, cylinder, sphere or cone"),
		"position":   vectorSchema("Origin [x,y,z], default [0,0,0]"),
		"dimensions": vectorSchema("Size [dx,dy,dz], default [1,1,1]"),
	}, "type")
}

func (t *CreateTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	kind := stringArg(args, "type", "")
	pos := vecArg(args, "position", geom.Vec3{})
	dim := vecArg(args, "dimensions", geom.Vec3{X: 1, Y: 1, Z: 1})

	g := t.Scene.CreateGroup(kind)
	var err error
	switch kind {
	case "cube":
		err = buildCube(g, pos, dim)
	case "cylinder":
		err = buildCylinder(g, pos, dim)
	case "sphere":
		buildSphere(g, pos, dim)
	case "cone":
		err = buildCone(g, pos, dim)
	default:
		err = fmt.Errorf("unknown component type: %s", kind)
	}
	if err != nil {
		t.Scene.Erase(g.ID())
		return nil, err
	}
	return map[string]any{"success": true, "id": g.ID(), "type": kind}, nil
}

// buildCube lays a dx by dy base face at pos and extrudes it by dz.
func buildCube(g *scene.Group, pos, dim geom.Vec3) error {
	idx, err := g.AddFace(
		pos,
		pos.Add(geom.Vec3{X: dim.X}),
		pos.Add(geom.Vec3{X: dim.X, Y: dim.Y}),
		pos.Add(geom.Vec3{Y: dim.Y}),
	)
	if err != nil {
		return err
	}
	return g.PushPull(idx, dim.Z)
}

// buildCylinder approximates a circle of radius dx/2 with a 24-segment
// polygon, centered at pos offset by the radius in x and y, extruded by dz.
func buildCylinder(g *scene.Group, pos, dim geom.Vec3) error {
	r := dim.X / 2
	center := pos.Add(geom.Vec3{X: r, Y: r})
	idx, err := g.AddFace(circlePoints(center, r)...)
	if err != nil {
		return err
	}
	return g.PushPull(idx, dim.Z)
}

// buildSphere tessellates a UV sphere of radius dx/2, 16 latitude by 16
// longitude cells. Cells that collapse at the poles fail face creation and
// are skipped rather than treated as fatal.
func buildSphere(g *scene.Group, pos, dim geom.Vec3) {
	r := dim.X / 2
	center := pos.Add(geom.Vec3{X: r, Y: r, Z: r})
	at := func(lat, lon int) geom.Vec3 {
		theta := -math.Pi/2 + math.Pi*float64(lat)/sphereSegments
		phi := 2 * math.Pi * float64(lon) / sphereSegments
		return center.Add(geom.Vec3{
			X: r * math.Cos(theta) * math.Cos(phi),
			Y: r * math.Cos(theta) * math.Sin(phi),
			Z: r * math.Sin(theta),
		})
	}
	for lat := 0; lat < sphereSegments; lat++ {
		for lon := 0; lon < sphereSegments; lon++ {
			_, _ = g.AddFace(
				at(lat, lon),
				at(lat, lon+1),
				at(lat+1, lon+1),
				at(lat+1, lon),
			)
		}
	}
}

// buildCone builds a 24-segment base plus one triangle per segment up to the
// apex at dz above the base center.
func buildCone(g *scene.Group, pos, dim geom.Vec3) error {
	r := dim.X / 2
	center := pos.Add(geom.Vec3{X: r, Y: r})
	base := circlePoints(center, r)
	if _, err := g.AddFace(base...); err != nil {
		return err
	}
	apex := center.Add(geom.Vec3{Z: dim.Z})
	for i := range base {
		if _, err := g.AddFace(base[i], base[(i+1)%len(base)], apex); err != nil {
			return err
		}
	}
	return nil
}

func circlePoints(center geom.Vec3, r float64) []geom.Vec3 {
	pts := make([]geom.Vec3, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = center.Add(geom.Vec3{X: r * math.Cos(a), Y: r * math.Sin(a)})
	}
	return pts
}
