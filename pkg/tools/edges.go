package tools

import (
	"context"
	"fmt"
	"math"

	"github.com/solidmcp/solidmcp/pkg/geom"
	"github.com/solidmcp/solidmcp/pkg/scene"
)

// Edge treatment tools. Both copy the source into a fresh result group and
// approximate a feature per selected edge; they do not compute an exact
// bevel, and degenerate edges are skipped rather than failing the request.

// ChamferTool bevels edges with a flat offset face.
type ChamferTool struct {
	Scene *scene.Scene
}

func (t *ChamferTool) Name() string { return "chamfer_edges" }

func (t *ChamferTool) Description() string {
	return "Approximate a flat chamfer on the edges of an entity."
}

func (t *ChamferTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"entity_id":       stringSchema("Entity reference"),
		"distance":        numberSchema("Chamfer offset distance, default 0.5"),
		"edge_indices":    vectorSchema("Restrict to these edge indices"),
		"delete_original": map[string]any{"type": "boolean", "description": "Erase the source entity afterwards"},
	}, "entity_id")
}

func (t *ChamferTool) Execute(ctx context.Context, args map[string]any) (result map[string]any, err error) {
	src, err := resolveEntity(t.Scene, args, "entity_id")
	if err != nil {
		return nil, err
	}
	distance := floatArg(args, "distance", 0.5)

	out := t.Scene.CopyGroup(src)
	defer func() {
		if err != nil {
			t.Scene.Erase(out.ID())
		}
	}()

	processed := 0
	forSelectedEdges(src, args, func(p, q, n geom.Vec3) {
		edge := q.Sub(p)
		if edge.Length() < 1e-9 || n.Length() == 0 {
			return
		}
		in := edge.Normalize().Cross(n).Scale(distance)
		up := n.Scale(distance)
		if _, ferr := out.AddFace(p.Add(up), q.Add(up), q.Add(in), p.Add(in)); ferr == nil {
			processed++
		}
	})

	if boolArg(args, "delete_original") {
		t.Scene.Erase(src.ID())
	}
	return map[string]any{"success": true, "id": out.ID(), "edges": processed}, nil
}

// FilletTool rounds edges with an arc of sampled facets.
type FilletTool struct {
	Scene *scene.Scene
}

func (t *FilletTool) Name() string { return "fillet_edges" }

func (t *FilletTool) Description() string {
	return "Approximate a rounded fillet on the edges of an entity."
}

func (t *FilletTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"entity_id":       stringSchema("Entity reference"),
		"radius":          numberSchema("Fillet radius, default 0.5"),
		"segments":        numberSchema("Arc segments, default 8"),
		"edge_indices":    vectorSchema("Restrict to these edge indices"),
		"delete_original": map[string]any{"type": "boolean", "description": "Erase the source entity afterwards"},
	}, "entity_id")
}

func (t *FilletTool) Execute(ctx context.Context, args map[string]any) (result map[string]any, err error) {
	src, err := resolveEntity(t.Scene, args, "entity_id")
	if err != nil {
		return nil, err
	}
	radius := floatArg(args, "radius", 0.5)
	segments := intArg(args, "segments", 8)
	if segments < 2 {
		return nil, fmt.Errorf("fillet needs at least 2 segments, got %d", segments)
	}

	out := t.Scene.CopyGroup(src)
	defer func() {
		if err != nil {
			t.Scene.Erase(out.ID())
		}
	}()

	processed := 0
	forSelectedEdges(src, args, func(p, q, n geom.Vec3) {
		edge := q.Sub(p)
		if edge.Length() < 1e-9 || n.Length() == 0 {
			return
		}
		mid := p.Add(edge.Scale(0.5))
		side := edge.Normalize().Cross(n)
		// Quarter-arc samples around the edge midpoint between the face
		// normal and the inward side direction.
		arc := make([]geom.Vec3, segments+1)
		for i := 0; i <= segments; i++ {
			a := math.Pi / 2 * float64(i) / float64(segments)
			arc[i] = mid.Add(n.Scale(radius * math.Cos(a))).Add(side.Scale(radius * math.Sin(a)))
		}
		for i := 0; i < segments; i++ {
			if _, ferr := out.AddFace(mid, arc[i], arc[i+1]); ferr == nil {
				processed++
			}
		}
	})

	if boolArg(args, "delete_original") {
		t.Scene.Erase(src.ID())
	}
	return map[string]any{"success": true, "id": out.ID(), "facets": processed}, nil
}

// resolveEntity looks up a group argument that must exist.
func resolveEntity(sc *scene.Scene, args map[string]any, key string) (*scene.Group, error) {
	id, err := idArg(args, key)
	if err != nil {
		return nil, err
	}
	g, ok := sc.Find(id)
	if !ok {
		return nil, fmt.Errorf("Entity not found: %d", id)
	}
	return g, nil
}

// forSelectedEdges enumerates the entity's edges in face order, filtered by
// an optional edge_indices argument, and calls fn with the edge endpoints
// and owning face normal.
func forSelectedEdges(g *scene.Group, args map[string]any, fn func(p, q, n geom.Vec3)) {
	var selected map[int]bool
	if raw, ok := args["edge_indices"].([]any); ok {
		selected = make(map[int]bool, len(raw))
		for _, v := range raw {
			if f, ok := v.(float64); ok {
				selected[int(f)] = true
			}
		}
	}
	index := 0
	for _, face := range g.Faces {
		n := face.Normal()
		for i := range face.Points {
			if selected == nil || selected[index] {
				fn(face.Points[i], face.Points[(i+1)%len(face.Points)], n)
			}
			index++
		}
	}
}
