package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidmcp/solidmcp/pkg/geom"
	"github.com/solidmcp/solidmcp/pkg/scene"
)

func TestBooleanUnion(t *testing.T) {
	sc := scene.NewScene()
	a := makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1})
	b := makeBoard(t, sc, geom.Vec3{X: 1}, geom.Vec3{X: 1, Y: 1, Z: 1})
	tool := &BooleanTool{Scene: sc}

	result, err := tool.Execute(context.Background(), map[string]any{
		"operation": "union",
		"target_id": float64(a.ID()),
		"tool_id":   float64(b.ID()),
	})
	require.NoError(t, err)
	assert.Equal(t, "union", result["operation"])

	merged, ok := sc.Find(resultID(t, result))
	require.True(t, ok)
	// Shared interior wall dropped from both operands.
	assert.Len(t, merged.Faces, 10)
	// Originals plus the result; every scratch duplicate is gone.
	assert.Equal(t, 3, sc.Count())
}

func TestBooleanDifferenceDeleteOriginals(t *testing.T) {
	sc := scene.NewScene()
	target := makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 4, Y: 4, Z: 4})
	cutter := makeBoard(t, sc, geom.Vec3{X: -1, Y: 1, Z: 1}, geom.Vec3{X: 2, Y: 2, Z: 2})
	tool := &BooleanTool{Scene: sc}

	result, err := tool.Execute(context.Background(), map[string]any{
		"operation":        "difference",
		"target_id":        float64(target.ID()),
		"tool_id":          float64(cutter.ID()),
		"delete_originals": true,
	})
	require.NoError(t, err)

	// Only the result survives.
	assert.Equal(t, 1, sc.Count())
	out, ok := sc.Find(resultID(t, result))
	require.True(t, ok)
	// The pierced x=0 wall is gone; the cutter's interior x=1 wall stands
	// in as the cut surface.
	require.Len(t, out.Faces, 6)
	for _, f := range out.Faces {
		assert.Greater(t, f.Centroid().X, 0.5)
	}
}

func TestBooleanIntersectionDisjoint(t *testing.T) {
	sc := scene.NewScene()
	a := makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1})
	b := makeBoard(t, sc, geom.Vec3{X: 10}, geom.Vec3{X: 1, Y: 1, Z: 1})
	tool := &BooleanTool{Scene: sc}

	_, err := tool.Execute(context.Background(), map[string]any{
		"operation": "intersection",
		"target_id": float64(a.ID()),
		"tool_id":   float64(b.ID()),
	})
	require.Error(t, err)
	// The failed request leaves no scratch groups behind.
	assert.Equal(t, 2, sc.Count())
}

func TestBooleanMissingOperands(t *testing.T) {
	sc := scene.NewScene()
	a := makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1})
	tool := &BooleanTool{Scene: sc}

	_, err := tool.Execute(context.Background(), map[string]any{
		"operation": "union",
		"target_id": 999.0,
		"tool_id":   float64(a.ID()),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Target entity not found")

	_, err = tool.Execute(context.Background(), map[string]any{
		"operation": "union",
		"target_id": float64(a.ID()),
		"tool_id":   999.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tool entity not found")
}

func TestBooleanRejectsEmptyGroup(t *testing.T) {
	sc := scene.NewScene()
	a := makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1})
	empty := sc.CreateGroup("group")
	tool := &BooleanTool{Scene: sc}

	_, err := tool.Execute(context.Background(), map[string]any{
		"operation": "union",
		"target_id": float64(a.ID()),
		"tool_id":   float64(empty.ID()),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a solid group")
}

func TestBooleanUnknownOperation(t *testing.T) {
	sc := scene.NewScene()
	a := makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1})
	b := makeBoard(t, sc, geom.Vec3{X: 1}, geom.Vec3{X: 1, Y: 1, Z: 1})
	tool := &BooleanTool{Scene: sc}

	_, err := tool.Execute(context.Background(), map[string]any{
		"operation": "xor",
		"target_id": float64(a.ID()),
		"tool_id":   float64(b.ID()),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown boolean operation")
	assert.Equal(t, 2, sc.Count())
}
