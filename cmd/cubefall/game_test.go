package main

import (
	"testing"

	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/lattice"
	"github.com/plus3/cubefall/loop"
	"github.com/plus3/cubefall/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, cfg game.Config, shp shape.Shape) *Game {
	t.Helper()
	cfg.RevealStep = 0
	cfg.Seed = 1
	session, err := game.New(cfg, shape.NewCatalog(shp))
	require.NoError(t, err)
	scheduler, _ := loop.NewGameScheduler(session, nil)
	return NewGame(session, scheduler, false)
}

func TestNewGameStartsOver(t *testing.T) {
	cfg := game.DefaultConfig().WithSize(1, 1, 2)
	cfg.Spawn = lattice.Pt(0, 0, 0)
	g := newTestGame(t, cfg, shape.Box("bar4", 1, 1, 4, shape.Orange))

	require.True(t, g.Session.GameOver())
	assert.True(t, g.over, "a session that is over before the hook is registered still counts")
}

func TestNewGameTracksGameOver(t *testing.T) {
	g := newTestGame(t, game.DefaultConfig().WithSize(2, 1, 2), shape.Box("cube", 1, 1, 1, shape.Purple))
	require.False(t, g.over)

	for range 3 {
		g.Session.Tick()
	}
	require.True(t, g.Session.GameOver())
	assert.True(t, g.over)
}
