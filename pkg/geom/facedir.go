package geom

import "math"

// FaceDirection labels one of the six oriented faces of an axis-aligned
// solid. Joinery placement derives it from the direction between two
// entities' bounds centers.
type FaceDirection int

const (
	East FaceDirection = iota // +x
	West                      // -x
	North                     // +y
	South                     // -y
	Top                       // +z
	Bottom                    // -z
)

func (d FaceDirection) String() string {
	switch d {
	case East:
		return "east"
	case West:
		return "west"
	case North:
		return "north"
	case South:
		return "south"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// Opposite returns the facing direction on the other side.
func (d FaceDirection) Opposite() FaceDirection {
	switch d {
	case East:
		return West
	case West:
		return East
	case North:
		return South
	case South:
		return North
	case Top:
		return Bottom
	default:
		return Top
	}
}

// DominantDirection classifies a direction vector by its dominant axis.
// Ties resolve in x >= y >= z priority order, so any non-zero vector maps to
// exactly one direction.
func DominantDirection(v Vec3) FaceDirection {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case ax >= ay && ax >= az:
		if v.X >= 0 {
			return East
		}
		return West
	case ay >= az:
		if v.Y >= 0 {
			return North
		}
		return South
	default:
		if v.Z >= 0 {
			return Top
		}
		return Bottom
	}
}
