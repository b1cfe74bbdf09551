package geom

import "testing"

// TestDominantDirection tests the six classifications and the tie priority.
func TestDominantDirection(t *testing.T) {
	cases := []struct {
		v    Vec3
		want FaceDirection
	}{
		{Vec3{X: 1}, East},
		{Vec3{X: -1}, West},
		{Vec3{Y: 1}, North},
		{Vec3{Y: -2}, South},
		{Vec3{Z: 3}, Top},
		{Vec3{Z: -0.5}, Bottom},
		{Vec3{X: 0.9, Y: 0.1, Z: 0.1}, East},
		{Vec3{X: -0.1, Y: -0.9, Z: 0.1}, South},
		// Ties resolve x before y before z.
		{Vec3{X: 1, Y: 1, Z: 1}, East},
		{Vec3{Y: 1, Z: 1}, North},
		{Vec3{X: -1, Y: 1}, West},
	}
	for _, tc := range cases {
		if got := DominantDirection(tc.v); got != tc.want {
			t.Errorf("DominantDirection(%+v) = %s, want %s", tc.v, got, tc.want)
		}
	}
}

// TestOpposite tests the pairing of oriented faces.
func TestOpposite(t *testing.T) {
	pairs := map[FaceDirection]FaceDirection{
		East:   West,
		West:   East,
		North:  South,
		South:  North,
		Top:    Bottom,
		Bottom: Top,
	}
	for dir, want := range pairs {
		if got := dir.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", dir, got, want)
		}
	}
}

// TestDirectionStrings tests the wire labels.
func TestDirectionStrings(t *testing.T) {
	want := map[FaceDirection]string{
		East: "east", West: "west", North: "north",
		South: "south", Top: "top", Bottom: "bottom",
	}
	for dir, label := range want {
		if dir.String() != label {
			t.Errorf("%d.String() = %s, want %s", dir, dir.String(), label)
		}
	}
}
