package scene

import (
	"fmt"

	"github.com/solidmcp/solidmcp/pkg/geom"
)

// Group is a solid in the scene graph: a bag of faces plus a material
// assignment. All points are kept in model space, so transforms rewrite the
// points directly and bounds are always derivable from the geometry.
type Group struct {
	id       int64
	Kind     string
	Material string
	Faces    []geom.Face
}

// ID returns the entity reference of the group.
func (g *Group) ID() int64 { return g.id }

// AddFace appends a planar face built from an ordered point loop. Loops with
// fewer than three points or no area are rejected; callers that tessellate
// near-degenerate regions (sphere poles) skip these errors.
func (g *Group) AddFace(points ...geom.Vec3) (int, error) {
	if len(points) < 3 {
		return 0, fmt.Errorf("face needs at least 3 points, got %d", len(points))
	}
	for i, p := range points {
		if p.Sub(points[(i+1)%len(points)]).Length() < 1e-9 {
			return 0, fmt.Errorf("degenerate face: coincident points")
		}
	}
	f := geom.Face{Points: points}
	if f.Area() == 0 {
		return 0, fmt.Errorf("degenerate face: no area")
	}
	g.Faces = append(g.Faces, f)
	return len(g.Faces) - 1, nil
}

// PushPull extrudes the face at index by dist along its normal, turning the
// face into a closed prism: the base is flipped outward, a translated top is
// added, and each edge gains a side quad.
func (g *Group) PushPull(index int, dist float64) error {
	if index < 0 || index >= len(g.Faces) {
		return fmt.Errorf("no face at index %d", index)
	}
	base := g.Faces[index]
	n := base.Normal()
	if n.Length() == 0 {
		return fmt.Errorf("cannot extrude a degenerate face")
	}
	d := n.Scale(dist)
	g.Faces[index] = base.Reversed()
	g.Faces = append(g.Faces, base.Translated(d))
	for i := range base.Points {
		p := base.Points[i]
		q := base.Points[(i+1)%len(base.Points)]
		g.Faces = append(g.Faces, geom.Face{
			Points: []geom.Vec3{p, q, q.Add(d), p.Add(d)},
		})
	}
	return nil
}

// Translate moves the whole group by d.
func (g *Group) Translate(d geom.Vec3) {
	for i := range g.Faces {
		g.Faces[i] = g.Faces[i].Translated(d)
	}
}

// Rotate turns the group around an axis-aligned line through center.
// axis is 0 for x, 1 for y, 2 for z; angle is in radians.
func (g *Group) Rotate(center geom.Vec3, axis int, angle float64) {
	for i := range g.Faces {
		for j, p := range g.Faces[i].Points {
			g.Faces[i].Points[j] = p.RotateAround(center, axis, angle)
		}
	}
}

// ScaleAbout scales the group per axis around center.
func (g *Group) ScaleAbout(center, factors geom.Vec3) {
	for i := range g.Faces {
		for j, p := range g.Faces[i].Points {
			r := p.Sub(center)
			g.Faces[i].Points[j] = center.Add(geom.Vec3{
				X: r.X * factors.X,
				Y: r.Y * factors.Y,
				Z: r.Z * factors.Z,
			})
		}
	}
}

// Bounds recomputes the axis-aligned box of the group's geometry.
func (g *Group) Bounds() geom.Bounds {
	return geom.BoundsOf(g.Faces)
}

// Volume returns the enclosed volume of the group's mesh.
func (g *Group) Volume() float64 {
	return geom.MeshVolume(g.Faces)
}

// cloneFaces deep-copies the face list.
func (g *Group) cloneFaces() []geom.Face {
	faces := make([]geom.Face, len(g.Faces))
	for i, f := range g.Faces {
		pts := make([]geom.Vec3, len(f.Points))
		copy(pts, f.Points)
		faces[i] = geom.Face{Points: pts}
	}
	return faces
}
