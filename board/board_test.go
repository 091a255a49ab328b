package board_test

import (
	"image/color"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/plus3/cubefall/board"
	"github.com/plus3/cubefall/lattice"
	"github.com/plus3/cubefall/piece"
	"github.com/plus3/cubefall/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// fillLayer settles every cell at height y.
func fillLayer(b *board.Board, y int, c color.RGBA) {
	for x := range b.Width() {
		for z := range b.Depth() {
			b.Set(lattice.Pt(x, y, z), c)
		}
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := board.New(5, 4, 13)

	assert.Equal(t, 5, b.Width())
	assert.Equal(t, 4, b.Depth())
	assert.Equal(t, 13, b.Height())
	assert.Equal(t, 0, b.CountOccupied())
	for y := range 13 {
		assert.False(t, b.IsLayerFull(y))
	}
}

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	assert.Panics(t, func() { board.New(0, 1, 1) })
	assert.Panics(t, func() { board.New(1, -1, 1) })
	assert.Panics(t, func() { board.New(1, 1, 0) })
}

func TestInBounds(t *testing.T) {
	b := board.New(2, 3, 4)

	tests := []struct {
		p    lattice.Point3
		want bool
	}{
		{lattice.Pt(0, 0, 0), true},
		{lattice.Pt(1, 3, 2), true},
		{lattice.Pt(2, 0, 0), false},
		{lattice.Pt(0, 4, 0), false},
		{lattice.Pt(0, 0, 3), false},
		{lattice.Pt(-1, 0, 0), false},
		{lattice.Pt(0, -1, 0), false},
		{lattice.Pt(0, 0, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, b.InBounds(tt.p))
			assert.False(t, b.Occupied(tt.p))
		})
	}
}

func TestCommitAndQuery(t *testing.T) {
	b := board.New(5, 5, 13)
	p := piece.New(shape.Box("square", 2, 2, 1, red), lattice.Pt(0, 0, 0))

	require.True(t, b.ValidPlacement(p))
	b.Commit(p)

	assert.Equal(t, 4, b.CountOccupied())
	assert.Equal(t, 4, b.LayerCount(0))
	for _, pos := range p.Cells() {
		cell, ok := b.At(pos)
		require.True(t, ok)
		assert.Equal(t, pos, cell.Pos)
		assert.Equal(t, red, cell.Color)
	}
	assert.False(t, b.ValidPlacement(p))

	p.Move(2, 0, 0)
	assert.True(t, b.ValidPlacement(p))
	p.Move(2, 0, 0)
	assert.False(t, b.ValidPlacement(p), "x=5 is past the right wall")
}

func TestCommitOutOfBoundsPanics(t *testing.T) {
	b := board.New(1, 1, 1)
	p := piece.New(shape.Box("bar2", 1, 1, 2, red), lattice.Pt(0, 0, 0))
	assert.Panics(t, func() { b.Commit(p) })
}

func TestValidPlacementMatchesCellChecks(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1))
	catalog := shape.Default()

	for range 300 {
		w, d, h := 1+r.IntN(6), 1+r.IntN(6), 1+r.IntN(10)
		b := board.New(w, d, h)
		for range r.IntN(w * d * h) {
			b.Set(lattice.Pt(r.IntN(w), r.IntN(h), r.IntN(d)), blue)
		}

		p := piece.New(catalog.Random(r), lattice.Pt(r.IntN(w+2)-1, r.IntN(h+2)-1, r.IntN(d+2)-1))
		for range r.IntN(4) {
			p.Rotate(1)
		}

		violated := false
		for _, c := range p.Cells() {
			if !b.InBounds(c) || b.Occupied(c) {
				violated = true
			}
		}
		assert.Equal(t, !violated, b.ValidPlacement(p))
	}
}

func TestDeleteLayerCompacts(t *testing.T) {
	b := board.New(2, 2, 5)
	fillLayer(b, 1, red)
	b.Set(lattice.Pt(0, 0, 0), blue)
	b.Set(lattice.Pt(1, 2, 1), blue)
	b.Set(lattice.Pt(0, 4, 1), red)

	require.True(t, b.IsLayerFull(1))
	before := b.CountOccupied()

	b.DeleteLayer(1)

	assert.Equal(t, before-4, b.CountOccupied())
	assert.True(t, b.Occupied(lattice.Pt(0, 0, 0)))
	assert.True(t, b.Occupied(lattice.Pt(1, 1, 1)))
	assert.True(t, b.Occupied(lattice.Pt(0, 3, 1)))
	assert.False(t, b.Occupied(lattice.Pt(0, 4, 1)))
	assert.Equal(t, 0, b.LayerCount(4))

	for c := range b.Cells() {
		got, ok := b.At(c.Pos)
		require.True(t, ok)
		assert.Equal(t, c.Pos, got.Pos, "stored position matches grid index")
	}
}

func TestDeleteTopLayer(t *testing.T) {
	b := board.New(1, 1, 3)
	fillLayer(b, 2, red)
	b.Set(lattice.Pt(0, 0, 0), blue)

	b.DeleteLayer(2)
	assert.Equal(t, 1, b.CountOccupied())
	assert.False(t, b.Occupied(lattice.Pt(0, 2, 0)))
}

func TestDeleteLayerPreservesVerticalOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	b := board.New(3, 3, 10)
	fillLayer(b, 4, red)
	for range 40 {
		b.Set(lattice.Pt(r.IntN(3), r.IntN(10), r.IntN(3)), color.RGBA{uint8(r.IntN(256)), 0, 0, 255})
	}
	fillLayer(b, 4, red)

	type column struct{ x, z int }
	stacks := func() map[column][]color.RGBA {
		m := make(map[column][]color.RGBA)
		for c := range b.Cells() {
			if c.Pos.Y == 4 {
				continue
			}
			k := column{c.Pos.X, c.Pos.Z}
			m[k] = append(m[k], c.Color)
		}
		return m
	}

	want := stacks()
	wantCount := b.CountOccupied() - 9
	b.DeleteLayer(4)

	got := make(map[column][]color.RGBA)
	for c := range b.Cells() {
		k := column{c.Pos.X, c.Pos.Z}
		got[k] = append(got[k], c.Color)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, wantCount, b.CountOccupied())
}

func TestClearAdjacentFullLayers(t *testing.T) {
	b := board.New(5, 5, 13)
	fillLayer(b, 3, red)
	fillLayer(b, 4, red)
	b.Set(lattice.Pt(0, 2, 0), blue)
	b.Set(lattice.Pt(2, 5, 2), blue)
	b.Set(lattice.Pt(4, 9, 1), blue)

	assert.Equal(t, 2, b.ClearFullLayers())

	assert.Equal(t, 3, b.CountOccupied())
	assert.True(t, b.Occupied(lattice.Pt(0, 2, 0)))
	assert.True(t, b.Occupied(lattice.Pt(2, 3, 2)))
	assert.True(t, b.Occupied(lattice.Pt(4, 7, 1)))
	for y := range 13 {
		assert.False(t, b.IsLayerFull(y))
	}
}

func TestClearPackedBottomRows(t *testing.T) {
	b := board.New(5, 5, 13)
	fillLayer(b, 0, red)
	fillLayer(b, 1, blue)
	b.Set(lattice.Pt(1, 2, 1), red)

	assert.Equal(t, 2, b.ClearFullLayers())
	assert.Equal(t, 1, b.CountOccupied())
	cell, ok := b.At(lattice.Pt(1, 0, 1))
	require.True(t, ok)
	assert.Equal(t, lattice.Pt(1, 0, 1), cell.Pos)
}

func TestClearNonAdjacentLayers(t *testing.T) {
	b := board.New(2, 1, 6)
	fillLayer(b, 1, red)
	fillLayer(b, 3, red)
	b.Set(lattice.Pt(0, 2, 0), blue)
	b.Set(lattice.Pt(1, 4, 0), blue)

	assert.Equal(t, 2, b.ClearFullLayers())
	assert.True(t, b.Occupied(lattice.Pt(0, 1, 0)))
	assert.True(t, b.Occupied(lattice.Pt(1, 2, 0)))
	assert.Equal(t, 2, b.CountOccupied())
}

func TestCellsOrder(t *testing.T) {
	b := board.New(2, 2, 2)
	points := []lattice.Point3{
		lattice.Pt(1, 1, 0),
		lattice.Pt(0, 0, 1),
		lattice.Pt(1, 0, 0),
		lattice.Pt(0, 1, 1),
		lattice.Pt(1, 0, 1),
	}
	for _, p := range points {
		b.Set(p, red)
	}

	var got []lattice.Point3
	for c := range b.Cells() {
		got = append(got, c.Pos)
	}
	assert.Equal(t, []lattice.Point3{
		lattice.Pt(1, 0, 0),
		lattice.Pt(0, 0, 1),
		lattice.Pt(1, 0, 1),
		lattice.Pt(1, 1, 0),
		lattice.Pt(0, 1, 1),
	}, got)

	var revealed []lattice.Point3
	for c := range b.Reveal(3) {
		revealed = append(revealed, c.Pos)
	}
	assert.Equal(t, got[:3], revealed)
	assert.Empty(t, slices.Collect(b.Reveal(0)))
	assert.Len(t, slices.Collect(b.Reveal(99)), 5)
}

func TestResetAndClone(t *testing.T) {
	b := board.New(2, 2, 2)
	fillLayer(b, 0, red)

	c := b.Clone()
	b.Reset()

	assert.Equal(t, 0, b.CountOccupied())
	assert.Equal(t, 4, c.CountOccupied())
	assert.True(t, c.IsLayerFull(0))
}
