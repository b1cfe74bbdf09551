package geom

import "math"

// Face is an ordered planar point loop. Faces are stored already transformed
// into model space; there is no separate transform stack.
type Face struct {
	Points []Vec3 `json:"points"`
}

// Centroid returns the average of the face's points.
func (f Face) Centroid() Vec3 {
	var c Vec3
	if len(f.Points) == 0 {
		return c
	}
	for _, p := range f.Points {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(f.Points)))
}

// Normal returns the unit normal of the face loop using Newell's method.
// A degenerate loop yields the zero vector.
func (f Face) Normal() Vec3 {
	var n Vec3
	for i, p := range f.Points {
		q := f.Points[(i+1)%len(f.Points)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return n.Normalize()
}

// Area returns the area of the planar loop.
func (f Face) Area() float64 {
	if len(f.Points) < 3 {
		return 0
	}
	var n Vec3
	o := f.Points[0]
	for i := 1; i < len(f.Points)-1; i++ {
		a := f.Points[i].Sub(o)
		b := f.Points[i+1].Sub(o)
		n = n.Add(a.Cross(b))
	}
	return n.Length() / 2
}

// Reversed returns the face with its loop order flipped.
func (f Face) Reversed() Face {
	pts := make([]Vec3, len(f.Points))
	for i, p := range f.Points {
		pts[len(pts)-1-i] = p
	}
	return Face{Points: pts}
}

// Translated returns the face moved by d.
func (f Face) Translated(d Vec3) Face {
	pts := make([]Vec3, len(f.Points))
	for i, p := range f.Points {
		pts[i] = p.Add(d)
	}
	return Face{Points: pts}
}

// MeshVolume computes the volume enclosed by a set of faces via the
// divergence theorem, triangulating each loop as a fan. The winding must be
// globally consistent; the absolute value makes the result orientation
// independent.
func MeshVolume(faces []Face) float64 {
	var sum float64
	for _, f := range faces {
		if len(f.Points) < 3 {
			continue
		}
		a := f.Points[0]
		for i := 1; i < len(f.Points)-1; i++ {
			b := f.Points[i]
			c := f.Points[i+1]
			sum += a.Dot(b.Cross(c))
		}
	}
	return math.Abs(sum) / 6
}

// BoundsOf returns the axis-aligned box containing every face point.
func BoundsOf(faces []Face) Bounds {
	b := EmptyBounds()
	for _, f := range faces {
		for _, p := range f.Points {
			b.Expand(p)
		}
	}
	return b
}
