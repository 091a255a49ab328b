package lattice_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/cubefall/lattice"
	"github.com/stretchr/testify/assert"
)

func TestQuarterTurns(t *testing.T) {
	p := lattice.Pt(1, 2, 3)

	tests := []struct {
		axis lattice.Axis
		dir  int
		want lattice.Point3
	}{
		{lattice.AxisZ, 1, lattice.Pt(-2, 1, 3)},
		{lattice.AxisZ, -1, lattice.Pt(2, -1, 3)},
		{lattice.AxisX, 1, lattice.Pt(1, -3, 2)},
		{lattice.AxisX, -1, lattice.Pt(1, 3, -2)},
		{lattice.AxisY, 1, lattice.Pt(3, 2, -1)},
		{lattice.AxisY, -1, lattice.Pt(-3, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%+d", tt.axis, tt.dir), func(t *testing.T) {
			assert.Equal(t, tt.want, lattice.Rotate(p, tt.axis, tt.dir))
		})
	}
}

func TestRotateZeroDirIsIdentity(t *testing.T) {
	p := lattice.Pt(4, -5, 6)
	for _, axis := range []lattice.Axis{lattice.AxisX, lattice.AxisY, lattice.AxisZ} {
		assert.Equal(t, p, lattice.Rotate(p, axis, 0))
	}
}

func TestRotationIsPeriodic(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 500 {
		p := lattice.Pt(r.IntN(41)-20, r.IntN(41)-20, r.IntN(41)-20)
		for _, axis := range []lattice.Axis{lattice.AxisX, lattice.AxisY, lattice.AxisZ} {
			q := p
			for range 4 {
				q = lattice.Rotate(q, axis, 1)
			}
			assert.Equal(t, p, q, "four turns about %s", axis)

			back := lattice.Rotate(lattice.Rotate(p, axis, 1), axis, -1)
			assert.Equal(t, p, back, "turn and unturn about %s", axis)
		}
	}
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "X", lattice.AxisX.String())
	assert.Equal(t, "Z", lattice.AxisZ.String())
	assert.Equal(t, "Axis(7)", lattice.Axis(7).String())
}
