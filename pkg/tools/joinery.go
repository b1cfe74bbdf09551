package tools

import (
	"fmt"

	"github.com/solidmcp/solidmcp/pkg/geom"
	"github.com/solidmcp/solidmcp/pkg/scene"
)

// Shared machinery for the joinery generators. A joint is placed on one
// oriented face of each board; the face is chosen by classifying the
// direction between the two boards' bounds centers, and the feature is
// positioned from that face's 2D center plus the caller's offsets.

// jointParams are the sparse numeric parameters common to all joints.
type jointParams struct {
	width  float64
	height float64
	depth  float64
	offset geom.Vec3
}

func jointArgs(args map[string]any) jointParams {
	return jointParams{
		width:  floatArg(args, "width", 1),
		height: floatArg(args, "height", 1),
		depth:  floatArg(args, "depth", 1),
		offset: geom.Vec3{
			X: floatArg(args, "offset_x", 0),
			Y: floatArg(args, "offset_y", 0),
			Z: floatArg(args, "offset_z", 0),
		},
	}
}

// faceFrame is a coordinate frame on one oriented face of a board: origin at
// the face's 2D center, u along the joint width, v along the joint height,
// and out the outward face normal. u cross v always equals out, so
// extrusions by a positive distance leave the board and negative distances
// cut into it.
type faceFrame struct {
	origin  geom.Vec3
	u, v    geom.Vec3
	out     geom.Vec3
}

func frameOn(b geom.Bounds, dir geom.FaceDirection, offset geom.Vec3) faceFrame {
	c := b.Center()
	var f faceFrame
	switch dir {
	case geom.East:
		f = faceFrame{origin: geom.Vec3{X: b.Max.X, Y: c.Y, Z: c.Z}, u: geom.Vec3{Y: 1}, v: geom.Vec3{Z: 1}, out: geom.Vec3{X: 1}}
	case geom.West:
		f = faceFrame{origin: geom.Vec3{X: b.Min.X, Y: c.Y, Z: c.Z}, u: geom.Vec3{Z: 1}, v: geom.Vec3{Y: 1}, out: geom.Vec3{X: -1}}
	case geom.North:
		f = faceFrame{origin: geom.Vec3{X: c.X, Y: b.Max.Y, Z: c.Z}, u: geom.Vec3{Z: 1}, v: geom.Vec3{X: 1}, out: geom.Vec3{Y: 1}}
	case geom.South:
		f = faceFrame{origin: geom.Vec3{X: c.X, Y: b.Min.Y, Z: c.Z}, u: geom.Vec3{X: 1}, v: geom.Vec3{Z: 1}, out: geom.Vec3{Y: -1}}
	case geom.Top:
		f = faceFrame{origin: geom.Vec3{X: c.X, Y: c.Y, Z: b.Max.Z}, u: geom.Vec3{X: 1}, v: geom.Vec3{Y: 1}, out: geom.Vec3{Z: 1}}
	default: // Bottom
		f = faceFrame{origin: geom.Vec3{X: c.X, Y: c.Y, Z: b.Min.Z}, u: geom.Vec3{Y: 1}, v: geom.Vec3{X: 1}, out: geom.Vec3{Z: -1}}
	}
	f.origin = f.origin.Add(offset)
	return f
}

// at maps face-plane coordinates (du along u, dv along v, dn along the
// outward normal) to a model-space point.
func (f faceFrame) at(du, dv, dn float64) geom.Vec3 {
	return f.origin.Add(f.u.Scale(du)).Add(f.v.Scale(dv)).Add(f.out.Scale(dn))
}

// scratchBox builds a temporary w by h box on the face, extruded by dist
// along the outward normal (negative cuts inward). The caller erases it.
func scratchBox(sc *scene.Scene, f faceFrame, w, h, dist float64) (*scene.Group, error) {
	g := sc.CreateGroup("scratch")
	idx, err := g.AddFace(
		f.at(-w/2, -h/2, 0),
		f.at(w/2, -h/2, 0),
		f.at(w/2, h/2, 0),
		f.at(-w/2, h/2, 0),
	)
	if err == nil {
		err = g.PushPull(idx, dist)
	}
	if err != nil {
		sc.Erase(g.ID())
		return nil, err
	}
	return g, nil
}

// resolveBoards looks up the two board entities of a joint and validates
// both are group solids.
func resolveBoards(sc *scene.Scene, args map[string]any, keyA, keyB string) (*scene.Group, *scene.Group, error) {
	a, err := resolveEntity(sc, args, keyA)
	if err != nil {
		return nil, nil, err
	}
	b, err := resolveEntity(sc, args, keyB)
	if err != nil {
		return nil, nil, err
	}
	if len(a.Faces) == 0 {
		return nil, nil, fmt.Errorf("entity %d is not a solid group", a.ID())
	}
	if len(b.Faces) == 0 {
		return nil, nil, fmt.Errorf("entity %d is not a solid group", b.ID())
	}
	return a, b, nil
}

// boardsDirection classifies the orientation from board a toward board b.
func boardsDirection(a, b *scene.Group) geom.FaceDirection {
	return geom.DominantDirection(b.Bounds().Center().Sub(a.Bounds().Center()).Normalize())
}
