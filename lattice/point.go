// Package lattice provides integer 3D points and the quarter-turn rotations
// used to reorient polycube offsets.
package lattice

import "fmt"

// Point3 is a cell coordinate or a cell offset. X is width, Y is height and
// Z is depth.
type Point3 struct {
	X, Y, Z int
}

// Pt is shorthand for Point3{x, y, z}.
func Pt(x, y, z int) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum of p and q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the componentwise difference p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Neg returns -p.
func (p Point3) Neg() Point3 {
	return Point3{X: -p.X, Y: -p.Y, Z: -p.Z}
}

// Less orders points back to front, left to right, bottom to top:
// depth first, then width, then height.
func (p Point3) Less(q Point3) bool {
	if p.Z != q.Z {
		return p.Z < q.Z
	}
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Compare is Less as a three-way comparison, for slices.SortFunc.
func Compare(a, b Point3) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Bounds returns the per-axis minimum and maximum over points. Both are the
// zero point when points is empty.
func Bounds(points []Point3) (lo, hi Point3) {
	if len(points) == 0 {
		return
	}

	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
		lo.Z, hi.Z = min(lo.Z, p.Z), max(hi.Z, p.Z)
	}
	return lo, hi
}
