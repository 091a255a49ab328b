package board_test

import (
	"testing"

	"github.com/plus3/cubefall/board"
	"github.com/plus3/cubefall/lattice"
	"github.com/plus3/cubefall/piece"
	"github.com/plus3/cubefall/shape"
)

func BenchmarkValidPlacement(b *testing.B) {
	brd := board.New(5, 5, 13)
	fillLayer(brd, 0, shape.Green)
	p := piece.New(shape.Box("tower", 2, 2, 2, shape.DarkYellow), lattice.Pt(1, 5, 1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = brd.ValidPlacement(p)
	}
}

func BenchmarkClearFullLayers(b *testing.B) {
	brd := board.New(5, 5, 13)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		fillLayer(brd, 0, shape.Green)
		fillLayer(brd, 2, shape.Green)
		brd.Set(lattice.Pt(0, 1, 0), shape.Red)
		b.StartTimer()

		brd.ClearFullLayers()
		brd.Reset()
	}
}

func BenchmarkClone(b *testing.B) {
	brd := board.New(5, 5, 13)
	for y := 0; y < 6; y++ {
		fillLayer(brd, y, shape.Green)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = brd.Clone()
	}
}

func BenchmarkReveal(b *testing.B) {
	brd := board.New(5, 5, 13)
	for y := 0; y < 6; y++ {
		fillLayer(brd, y, shape.Green)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range brd.Reveal(75) {
		}
	}
}
