package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidmcp/solidmcp/pkg/geom"
)

func TestSceneLifecycle(t *testing.T) {
	s := NewScene()
	a := s.CreateGroup("cube")
	b := s.CreateGroup("cylinder")

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, s.Count())

	found, ok := s.Find(a.ID())
	require.True(t, ok)
	assert.Same(t, a, found)

	s.Erase(a.ID())
	_, ok = s.Find(a.ID())
	assert.False(t, ok)
	// Erasing twice is a no-op so cleanup paths can erase blindly.
	s.Erase(a.ID())
	assert.Equal(t, 1, s.Count())
}

func TestListOrderedByID(t *testing.T) {
	s := NewScene()
	for i := 0; i < 5; i++ {
		s.CreateGroup("group")
	}
	list := s.List()
	require.Len(t, list, 5)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID(), list[i].ID())
	}
}

func TestCopyGroupIsDeep(t *testing.T) {
	s := NewScene()
	g := box(t, s, geom.Vec3{}, 1, 1, 1)
	dup := s.CopyGroup(g)

	require.Len(t, dup.Faces, len(g.Faces))
	dup.Translate(geom.Vec3{X: 10})
	assert.InDelta(t, 0.5, g.Bounds().Center().X, 1e-9)
	assert.InDelta(t, 10.5, dup.Bounds().Center().X, 1e-9)
}

func TestSetMaterialHexColor(t *testing.T) {
	s := NewScene()
	g := s.CreateGroup("cube")

	require.NoError(t, s.SetMaterial(g.ID(), "#FF8000"))
	assert.Equal(t, "#FF8000", g.Material)
	assert.Equal(t, 1, s.MaterialCount())

	// Reassigning the same spec reuses the table entry.
	require.NoError(t, s.SetMaterial(g.ID(), "#FF8000"))
	assert.Equal(t, 1, s.MaterialCount())
}

func TestSetMaterialNamed(t *testing.T) {
	s := NewScene()
	g := s.CreateGroup("cube")
	require.NoError(t, s.SetMaterial(g.ID(), "walnut"))
	assert.Equal(t, "walnut", g.Material)
}

func TestSetMaterialErrors(t *testing.T) {
	s := NewScene()
	g := s.CreateGroup("cube")

	err := s.SetMaterial(999, "red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Entity not found")

	assert.Error(t, s.SetMaterial(g.ID(), "#12"))
	assert.Error(t, s.SetMaterial(g.ID(), "#GGGGGG"))
	assert.Error(t, s.SetMaterial(g.ID(), ""))
}

func TestParseHexColor(t *testing.T) {
	r, g, b, err := ParseHexColor("#FF8001")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), r)
	assert.Equal(t, uint8(0x80), g)
	assert.Equal(t, uint8(0x01), b)
}
