package geom

import "math"

// Bounds is the axis-aligned bounding box of an entity, recomputed from its
// geometry on every query.
type Bounds struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// EmptyBounds returns a bounds value that any point will expand.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// Expand grows the bounds to contain p.
func (b *Bounds) Expand(p Vec3) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Min.Z = math.Min(b.Min.Z, p.Z)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	b.Max.Z = math.Max(b.Max.Z, p.Z)
}

// IsEmpty reports whether no point has been added.
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vec3 {
	return Vec3{
		(b.Min.X + b.Max.X) / 2,
		(b.Min.Y + b.Max.Y) / 2,
		(b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Volume returns the volume of the box itself, not of the solid inside it.
func (b Bounds) Volume() float64 {
	if b.IsEmpty() {
		return 0
	}
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Contains reports whether p lies strictly inside the box.
func (b Bounds) Contains(p Vec3) bool {
	return p.X > b.Min.X && p.X < b.Max.X &&
		p.Y > b.Min.Y && p.Y < b.Max.Y &&
		p.Z > b.Min.Z && p.Z < b.Max.Z
}

// ContainsInclusive reports whether p lies inside or on the box. Cut
// placement needs this: a face pierced by a flush pocket sits exactly on the
// pocket boundary.
func (b Bounds) ContainsInclusive(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersect returns the overlap of two boxes. The result may be empty.
func (b Bounds) Intersect(o Bounds) Bounds {
	return Bounds{
		Min: Vec3{
			math.Max(b.Min.X, o.Min.X),
			math.Max(b.Min.Y, o.Min.Y),
			math.Max(b.Min.Z, o.Min.Z),
		},
		Max: Vec3{
			math.Min(b.Max.X, o.Max.X),
			math.Min(b.Max.Y, o.Max.Y),
			math.Min(b.Max.Z, o.Max.Z),
		},
	}
}
