package scene

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Scene owns every live entity. The command server mutates it on behalf of
// remote clients; access is serialized by the listener loop, so the scene
// itself carries no locking.
type Scene struct {
	nextID    int64
	groups    map[int64]*Group
	materials map[string]Material
}

// Material is a named color in the scene's material table.
type Material struct {
	Name    string `json:"name"`
	R, G, B uint8
}

// NewScene creates an empty scene graph.
func NewScene() *Scene {
	return &Scene{
		nextID:    1,
		groups:    make(map[int64]*Group),
		materials: make(map[string]Material),
	}
}

// CreateGroup adds a fresh empty group and returns it. kind is the lowercase
// type name reported by entity listings.
func (s *Scene) CreateGroup(kind string) *Group {
	g := &Group{id: s.nextID, Kind: kind}
	s.nextID++
	s.groups[g.id] = g
	return g
}

// Find resolves an entity reference.
func (s *Scene) Find(id int64) (*Group, bool) {
	g, ok := s.groups[id]
	return g, ok
}

// Erase removes an entity. Erasing an unknown id is a no-op so cleanup paths
// can erase unconditionally.
func (s *Scene) Erase(id int64) {
	delete(s.groups, id)
}

// List returns all entities ordered by id.
func (s *Scene) List() []*Group {
	out := make([]*Group, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Count returns the number of live entities.
func (s *Scene) Count() int { return len(s.groups) }

// CopyGroup duplicates a group into a new entity.
func (s *Scene) CopyGroup(src *Group) *Group {
	dup := s.CreateGroup(src.Kind)
	dup.Material = src.Material
	dup.Faces = src.cloneFaces()
	return dup
}

// SetMaterial assigns a material to an entity, creating the material in the
// scene table on first use. spec is either a material name or a #RRGGBB hex
// color; hex colors become materials named by their hex string.
func (s *Scene) SetMaterial(id int64, spec string) error {
	g, ok := s.Find(id)
	if !ok {
		return fmt.Errorf("Entity not found: %d", id)
	}
	m, ok := s.materials[spec]
	if !ok {
		var err error
		m, err = newMaterial(spec)
		if err != nil {
			return err
		}
		s.materials[spec] = m
	}
	g.Material = m.Name
	return nil
}

// MaterialCount returns the number of materials in the table.
func (s *Scene) MaterialCount() int { return len(s.materials) }

func newMaterial(spec string) (Material, error) {
	if strings.HasPrefix(spec, "#") {
		r, g, b, err := ParseHexColor(spec)
		if err != nil {
			return Material{}, err
		}
		return Material{Name: spec, R: r, G: g, B: b}, nil
	}
	if spec == "" {
		return Material{}, fmt.Errorf("empty material name")
	}
	r, g, b := namedColor(spec)
	return Material{Name: spec, R: r, G: g, B: b}, nil
}

// ParseHexColor parses a #RRGGBB color string.
func ParseHexColor(spec string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(spec, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q: want #RRGGBB", spec)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", spec, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

func namedColor(name string) (uint8, uint8, uint8) {
	switch strings.ToLower(name) {
	case "red":
		return 0xcc, 0x33, 0x33
	case "green":
		return 0x33, 0xaa, 0x44
	case "blue":
		return 0x33, 0x66, 0xcc
	case "white":
		return 0xff, 0xff, 0xff
	case "black":
		return 0x11, 0x11, 0x11
	case "wood", "oak":
		return 0xb8, 0x8a, 0x52
	case "walnut":
		return 0x5d, 0x43, 0x2f
	default:
		return 0x99, 0x99, 0x99
	}
}
