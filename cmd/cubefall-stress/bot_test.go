package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/cubefall/board"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/lattice"
	"github.com/plus3/cubefall/loop"
	"github.com/plus3/cubefall/piece"
	"github.com/plus3/cubefall/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFillsTheGap(t *testing.T) {
	b := board.New(3, 1, 4)
	b.Set(lattice.Pt(0, 0, 0), shape.Blue)
	b.Set(lattice.Pt(1, 0, 0), shape.Blue)

	p := piece.New(shape.Box("cube", 1, 1, 1, shape.Purple), lattice.Pt(0, 3, 0))
	best, ok := Plan(b, p)
	require.True(t, ok)

	assert.Equal(t, 0, best.Turns)
	assert.Equal(t, 2, best.DX)
	assert.Equal(t, 0, best.DZ)
	assert.Equal(t, 1, best.Cleared)
	assert.Equal(t, lattice.Pt(0, 3, 0), p.Base(), "planning must not move the live piece")
	assert.Equal(t, 2, b.CountOccupied(), "planning must not touch the board")
}

func TestPlanWithNoRoom(t *testing.T) {
	b := board.New(1, 1, 2)
	b.Set(lattice.Pt(0, 1, 0), shape.Blue)

	p := piece.New(shape.Box("cube", 1, 1, 1, shape.Purple), lattice.Pt(0, 1, 0))
	_, ok := Plan(b, p)
	assert.False(t, ok)
}

func TestPlacementCommands(t *testing.T) {
	cmds := Placement{Turns: 2, DX: -2, DZ: 1}.Commands()

	var names []string
	for _, c := range cmds {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{
		"RotateNext(+1)",
		"RotateNext(+1)",
		"Translate(-1,0,0)",
		"Translate(-1,0,0)",
		"Translate(0,0,1)",
		"HardDrop",
	}, names)
}

func TestBotClearsLayers(t *testing.T) {
	cfg := game.DefaultConfig().WithSize(2, 2, 4)
	cfg.RevealStep = 0
	cfg.DropCommits = true
	cfg.Seed = 7

	session, err := game.New(cfg, shape.NewCatalog(shape.Box("square", 2, 2, 1, shape.Red)))
	require.NoError(t, err)

	bot := NewBot(session)
	scheduler, _ := loop.NewGameScheduler(session, bot)
	for range 20 {
		scheduler.Once(cfg.Gravity.Seconds() / 2)
	}

	assert.False(t, session.GameOver())
	assert.Positive(t, session.LayersCleared())
	assert.Equal(t, int64(session.LayersCleared()), bot.Predicted)
	assert.Zero(t, scheduler.GetStats().CommandsIgnored)
}

func TestReport(t *testing.T) {
	stats := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	stats.Finalize()
	assert.Equal(t, time.Millisecond, stats.Min)
	assert.Equal(t, 3*time.Millisecond, stats.Max)
	assert.Equal(t, 2*time.Millisecond, stats.Avg)

	cfg := game.DefaultConfig().WithSize(1, 1, 2)
	cfg.Seed = 3
	session, err := game.New(cfg, shape.NewCatalog(shape.Box("cube", 1, 1, 1, shape.Purple)))
	require.NoError(t, err)

	r := &Report{Board: "1x1x2", Policy: "Revert", UpdateTime: stats}
	assert.True(t, r.record(session))
	assert.False(t, r.record(session), "a tie is not a new best")

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "- **Board:** 1x1x2")
	assert.Contains(t, out, "- **Games Finished:** 2")
	assert.Contains(t, out, "per game: 0.00")
	assert.NotContains(t, out, "GC Pause")
}
