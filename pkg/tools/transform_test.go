package tools

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidmcp/solidmcp/pkg/geom"
	"github.com/solidmcp/solidmcp/pkg/scene"
)

func TestTransformTranslateRoundTrip(t *testing.T) {
	sc := scene.NewScene()
	g := makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 2, Y: 2, Z: 2})
	tool := &TransformTool{Scene: sc}
	before := g.Bounds().Center()

	_, err := tool.Execute(context.Background(), map[string]any{
		"id":       float64(g.ID()),
		"position": []any{5.0, -3.0, 1.0},
	})
	require.NoError(t, err)
	assert.InDelta(t, before.X+5, g.Bounds().Center().X, 1e-9)

	// Translation is relative, so the inverse vector restores the entity.
	_, err = tool.Execute(context.Background(), map[string]any{
		"id":       float64(g.ID()),
		"position": []any{-5.0, 3.0, -1.0},
	})
	require.NoError(t, err)
	after := g.Bounds().Center()
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
	assert.InDelta(t, before.Z, after.Z, 1e-9)
}

func TestTransformRotateDegrees(t *testing.T) {
	sc := scene.NewScene()
	g := makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 2, Y: 1, Z: 1})
	tool := &TransformTool{Scene: sc}
	center := g.Bounds().Center()

	_, err := tool.Execute(context.Background(), map[string]any{
		"id":       float64(g.ID()),
		"rotation": []any{0.0, 0.0, 90.0},
	})
	require.NoError(t, err)

	size := g.Bounds().Size()
	assert.InDelta(t, 1.0, size.X, 1e-9)
	assert.InDelta(t, 2.0, size.Y, 1e-9)
	// Rotation happens about the entity's bounds center.
	after := g.Bounds().Center()
	assert.InDelta(t, center.X, after.X, 1e-9)
	assert.InDelta(t, center.Y, after.Y, 1e-9)
}

func TestTransformScale(t *testing.T) {
	sc := scene.NewScene()
	g := makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1})
	tool := &TransformTool{Scene: sc}

	_, err := tool.Execute(context.Background(), map[string]any{
		"id":    float64(g.ID()),
		"scale": []any{2.0, 3.0, 1.0},
	})
	require.NoError(t, err)

	size := g.Bounds().Size()
	assert.InDelta(t, 2.0, size.X, 1e-9)
	assert.InDelta(t, 3.0, size.Y, 1e-9)
	assert.InDelta(t, 1.0, size.Z, 1e-9)
}

// TestTransformQuotedStringID tests that ids sent as quoted strings resolve.
func TestTransformQuotedStringID(t *testing.T) {
	sc := scene.NewScene()
	g := makeBoard(t, sc, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1})
	tool := &TransformTool{Scene: sc}

	for _, id := range []any{
		float64(g.ID()),
		fmt.Sprintf("%d", g.ID()),
		fmt.Sprintf("%q", fmt.Sprint(g.ID())),
	} {
		_, err := tool.Execute(context.Background(), map[string]any{
			"id":       id,
			"position": []any{0.0, 0.0, 0.0},
		})
		require.NoError(t, err, "id form %v", id)
	}
}

func TestTransformMissingEntity(t *testing.T) {
	sc := scene.NewScene()
	tool := &TransformTool{Scene: sc}

	_, err := tool.Execute(context.Background(), map[string]any{
		"id":       999.0,
		"position": []any{1.0, 0.0, 0.0},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Entity not found")

	_, err = tool.Execute(context.Background(), map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required argument")
}
