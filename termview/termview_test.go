package termview_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plus3/cubefall/board"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/lattice"
	"github.com/plus3/cubefall/piece"
	"github.com/plus3/cubefall/shape"
	"github.com/plus3/cubefall/termview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayer(t *testing.T) {
	b := board.New(3, 2, 2)
	b.Set(lattice.Pt(0, 0, 0), shape.Red)
	b.Set(lattice.Pt(2, 0, 1), shape.Blue)
	p := piece.New(shape.Box("cube", 1, 1, 1, shape.Purple), lattice.Pt(1, 0, 1))

	out := termview.New(&bytes.Buffer{}).Layer(b, p, 0)

	assert.Contains(t, out, "y=0")
	assert.Equal(t, 2, strings.Count(out, "##"))
	assert.Equal(t, 1, strings.Count(out, "@@"))
	assert.Contains(t, out, "## . .")
	assert.Contains(t, out, " .@@##")
}

func TestBoardSkipsEmptyLayers(t *testing.T) {
	b := board.New(2, 2, 6)
	b.Set(lattice.Pt(0, 0, 0), shape.Red)
	p := piece.New(shape.Box("cube", 1, 1, 1, shape.Purple), lattice.Pt(1, 5, 1))

	v := termview.New(&bytes.Buffer{})
	v.SkipEmpty = true
	out := v.Board(b, p)

	assert.Contains(t, out, "y=5")
	assert.Contains(t, out, "y=0")
	assert.NotContains(t, out, "y=3")
	assert.Less(t, strings.Index(out, "y=5"), strings.Index(out, "y=0"), "top layer first")

	v.SkipEmpty = false
	v.PerRow = 2
	out = v.Board(b, p)
	for y := range 6 {
		assert.Contains(t, out, "y="+string(rune('0'+y)))
	}
}

func TestSession(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 3
	s, err := game.New(cfg, shape.Default())
	require.NoError(t, err)
	s.Pause()

	out := termview.New(&bytes.Buffer{}).Session(s)
	assert.Contains(t, out, "layers: 0  pieces: 1  state: Falling (paused)")
	assert.Equal(t, s.Piece().Size(), strings.Count(out, "@@"))
}

func TestSessionDuringReveal(t *testing.T) {
	cfg := game.DefaultConfig().WithSize(2, 1, 4)
	cfg.Seed = 3
	s, err := game.New(cfg, shape.NewCatalog(shape.Box("cube", 1, 1, 1, shape.Purple)))
	require.NoError(t, err)
	for y := range 3 {
		s.Board().Set(lattice.Pt(1, y, 0), shape.Blue)
	}

	s.HardDrop()
	require.Equal(t, 1, s.Tick().Cleared)
	require.True(t, s.Revealing())
	require.Equal(t, 2, s.Board().CountOccupied())

	v := termview.New(&bytes.Buffer{})
	v.PerRow = 1
	out := v.Session(s)
	assert.Zero(t, strings.Count(out, "##"), "nothing shown before the first step")
	assert.Equal(t, 1, strings.Count(out, "@@"), "the live piece is always drawn")

	require.True(t, s.AdvanceReveal())
	out = v.Session(s)
	assert.Equal(t, 1, strings.Count(out, "##"))
	assert.Greater(t, strings.Index(out, "##"), strings.Index(out, "y=0"), "bottom cell is revealed first")

	s.SkipReveal()
	assert.Equal(t, 2, strings.Count(v.Session(s), "##"))
}
