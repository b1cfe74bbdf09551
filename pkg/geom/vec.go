package geom

import "math"

// Vec3 is a point or direction in model space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// RotateAround rotates v around an axis-aligned line through center.
// axis is 0 for x, 1 for y, 2 for z; angle is in radians.
func (v Vec3) RotateAround(center Vec3, axis int, angle float64) Vec3 {
	p := v.Sub(center)
	sin, cos := math.Sin(angle), math.Cos(angle)
	var r Vec3
	switch axis {
	case 0:
		r = Vec3{p.X, p.Y*cos - p.Z*sin, p.Y*sin + p.Z*cos}
	case 1:
		r = Vec3{p.X*cos + p.Z*sin, p.Y, -p.X*sin + p.Z*cos}
	default:
		r = Vec3{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos, p.Z}
	}
	return r.Add(center)
}
