package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/solidmcp/solidmcp/pkg/geom"
)

// Approximate boolean combination of groups. These operate on whole faces:
// union merges both face sets and drops coincident duplicates, difference
// removes faces pierced by the tool volume and merges the tool's interior
// faces as the cut surface, intersection keeps faces inside the overlap box.
// This is the documented approximation, not an exact CSG evaluation.

// MergeInto copies every face of the sources into dst, then collapses
// coincident faces so the result reads as one outer shell.
func MergeInto(dst *Group, srcs ...*Group) {
	for _, src := range srcs {
		dst.Faces = append(dst.Faces, src.cloneFaces()...)
	}
	seen := make(map[string]int)
	kept := dst.Faces[:0]
	for _, f := range dst.Faces {
		k := faceKey(f)
		if n, dup := seen[k]; dup {
			// An interior face shared by both solids: drop both copies.
			seen[k] = n + 1
			continue
		}
		seen[k] = 1
		kept = append(kept, f)
	}
	out := kept[:0]
	for _, f := range kept {
		if seen[faceKey(f)] == 1 {
			out = append(out, f)
		}
	}
	dst.Faces = out
}

// Subtract carves the tool volume out of dst. Faces whose centroid lies in
// the tool bounds are removed, boundary included so a flush pocket pierces
// the wall it opens through, and the tool's faces interior to dst are merged
// in as the cut surface. Returns the number of removed faces.
func Subtract(dst, tool *Group) int {
	tb := tool.Bounds()
	if tb.IsEmpty() {
		return 0
	}
	db := dst.Bounds()

	removed := 0
	kept := dst.Faces[:0]
	for _, f := range dst.Faces {
		if tb.ContainsInclusive(f.Centroid()) {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	dst.Faces = kept

	// Tool faces strictly inside the original solid become cavity walls.
	// The opening face lies on dst's boundary and is left out, so the cut
	// stays open.
	for _, f := range tool.cloneFaces() {
		if db.Contains(f.Centroid()) {
			dst.Faces = append(dst.Faces, f)
		}
	}
	return removed
}

// IntersectInto fills dst with the faces of a and b whose centroids lie in
// the overlap of the two bounds.
func IntersectInto(dst, a, b *Group) error {
	overlap := a.Bounds().Intersect(b.Bounds())
	if overlap.IsEmpty() || overlap.Volume() <= 0 {
		return fmt.Errorf("solids do not overlap")
	}
	for _, src := range []*Group{a, b} {
		for _, f := range src.cloneFaces() {
			if overlap.ContainsInclusive(f.Centroid()) {
				dst.Faces = append(dst.Faces, f)
			}
		}
	}
	return nil
}

// faceKey builds an order-independent identity for a face from its quantized
// point set, so coincident faces with different loop order still match.
func faceKey(f geom.Face) string {
	keys := make([]string, len(f.Points))
	for i, p := range f.Points {
		keys[i] = fmt.Sprintf("%d,%d,%d", quant(p.X), quant(p.Y), quant(p.Z))
	}
	sort.Strings(keys)
	joined := ""
	for _, k := range keys {
		joined += k + ";"
	}
	return joined
}

func quant(v float64) int64 {
	return int64(math.Round(v * 1e6))
}
