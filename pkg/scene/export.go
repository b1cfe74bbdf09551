package scene

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"

	"github.com/solidmcp/solidmcp/pkg/geom"
)

// ExportDocument writes the whole scene to path in the given geometry
// format. Supported: obj, stl (ascii), dae (minimal collada), skp (native
// snapshot, serialized as json).
func (s *Scene) ExportDocument(path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	switch format {
	case "obj":
		return s.writeOBJ(w)
	case "stl":
		return s.writeSTL(w)
	case "dae":
		return s.writeDAE(w)
	case "skp":
		return s.writeNative(w)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

func (s *Scene) writeOBJ(w *bufio.Writer) error {
	fmt.Fprintln(w, "# exported scene")
	index := 1
	for _, g := range s.List() {
		fmt.Fprintf(w, "o entity_%d\n", g.ID())
		for _, face := range g.Faces {
			for _, p := range face.Points {
				fmt.Fprintf(w, "v %g %g %g\n", p.X, p.Y, p.Z)
			}
			fmt.Fprint(w, "f")
			for i := range face.Points {
				fmt.Fprintf(w, " %d", index+i)
			}
			fmt.Fprintln(w)
			index += len(face.Points)
		}
	}
	return nil
}

func (s *Scene) writeSTL(w *bufio.Writer) error {
	fmt.Fprintln(w, "solid scene")
	for _, g := range s.List() {
		for _, face := range g.Faces {
			if len(face.Points) < 3 {
				continue
			}
			n := face.Normal()
			a := face.Points[0]
			for i := 1; i < len(face.Points)-1; i++ {
				fmt.Fprintf(w, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
				fmt.Fprintln(w, "    outer loop")
				for _, p := range []geom.Vec3{a, face.Points[i], face.Points[i+1]} {
					fmt.Fprintf(w, "      vertex %g %g %g\n", p.X, p.Y, p.Z)
				}
				fmt.Fprintln(w, "    endloop")
				fmt.Fprintln(w, "  endfacet")
			}
		}
	}
	fmt.Fprintln(w, "endsolid scene")
	return nil
}

func (s *Scene) writeDAE(w *bufio.Writer) error {
	fmt.Fprintln(w, `<?xml version="1.0" encoding="utf-8"?>`)
	fmt.Fprintln(w, `<COLLADA xmlns="http://www.collada.org/2005/11/COLLADASchema" version="1.4.1">`)
	fmt.Fprintln(w, `  <library_geometries>`)
	for _, g := range s.List() {
		fmt.Fprintf(w, `    <geometry id="entity_%d">`+"\n", g.ID())
		fmt.Fprint(w, `      <mesh><source><float_array>`)
		for _, face := range g.Faces {
			for _, p := range face.Points {
				fmt.Fprintf(w, "%g %g %g ", p.X, p.Y, p.Z)
			}
		}
		fmt.Fprintln(w, `</float_array></source></mesh>`)
		fmt.Fprintln(w, `    </geometry>`)
	}
	fmt.Fprintln(w, `  </library_geometries>`)
	fmt.Fprintln(w, `</COLLADA>`)
	return nil
}

// writeNative snapshots the scene as json; it stands in for the host's
// proprietary document format.
func (s *Scene) writeNative(w *bufio.Writer) error {
	type entity struct {
		ID       int64       `json:"id"`
		Kind     string      `json:"kind"`
		Material string      `json:"material,omitempty"`
		Faces    []geom.Face `json:"faces"`
	}
	doc := struct {
		Entities []entity `json:"entities"`
	}{}
	for _, g := range s.List() {
		doc.Entities = append(doc.Entities, entity{
			ID: g.ID(), Kind: g.Kind, Material: g.Material, Faces: g.Faces,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// RenderImage draws a front-view wireframe of the scene to a png or jpg
// file. It is a stand-in for the host's view renderer: orthographic x/z
// projection, edges only.
func (s *Scene) RenderImage(path, format string, width, height int) error {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	b := geom.EmptyBounds()
	for _, g := range s.groups {
		gb := g.Bounds()
		if !gb.IsEmpty() {
			b.Expand(gb.Min)
			b.Expand(gb.Max)
		}
	}
	if !b.IsEmpty() {
		size := b.Size()
		span := math.Max(math.Max(size.X, size.Z), 1e-9)
		scale := float64(minInt(width, height)-20) / span
		center := b.Center()
		project := func(p geom.Vec3) (float64, float64) {
			return float64(width)/2 + (p.X-center.X)*scale,
				float64(height)/2 - (p.Z-center.Z)*scale
		}
		ink := color.RGBA{0x22, 0x22, 0x22, 0xff}
		for _, g := range s.List() {
			for _, face := range g.Faces {
				for i := range face.Points {
					x0, y0 := project(face.Points[i])
					x1, y1 := project(face.Points[(i+1)%len(face.Points)])
					drawLine(img, x0, y0, x1, y1, ink)
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	switch format {
	case "png":
		return png.Encode(f, img)
	case "jpg", "jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	default:
		return fmt.Errorf("unsupported image format: %s", format)
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.RGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		img.Set(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t), c)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
