package lattice_test

import (
	"slices"
	"testing"

	"github.com/plus3/cubefall/lattice"
	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := lattice.Pt(1, -2, 3)
	b := lattice.Pt(4, 5, -6)

	assert.Equal(t, lattice.Pt(5, 3, -3), a.Add(b))
	assert.Equal(t, lattice.Pt(-3, -7, 9), a.Sub(b))
	assert.Equal(t, lattice.Pt(-1, 2, -3), a.Neg())
	assert.Equal(t, a, a.Add(b).Sub(b))
	assert.Equal(t, "(1,-2,3)", a.String())
}

func TestCanonicalOrder(t *testing.T) {
	points := []lattice.Point3{
		lattice.Pt(1, 0, 1),
		lattice.Pt(0, 1, 0),
		lattice.Pt(1, 0, 0),
		lattice.Pt(0, 0, 0),
		lattice.Pt(0, 0, 1),
	}
	slices.SortFunc(points, lattice.Compare)

	assert.Equal(t, []lattice.Point3{
		lattice.Pt(0, 0, 0),
		lattice.Pt(0, 1, 0),
		lattice.Pt(1, 0, 0),
		lattice.Pt(0, 0, 1),
		lattice.Pt(1, 0, 1),
	}, points)
}

func TestBounds(t *testing.T) {
	lo, hi := lattice.Bounds(nil)
	assert.Equal(t, lattice.Point3{}, lo)
	assert.Equal(t, lattice.Point3{}, hi)

	lo, hi = lattice.Bounds([]lattice.Point3{
		lattice.Pt(0, 0, 0),
		lattice.Pt(1, -3, 0),
		lattice.Pt(-1, 0, 2),
	})
	assert.Equal(t, lattice.Pt(-1, -3, 0), lo)
	assert.Equal(t, lattice.Pt(1, 0, 2), hi)
}
