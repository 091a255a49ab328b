package main

import (
	"github.com/plus3/cubefall/board"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/piece"
)

// maxTurns covers every orientation reachable by repeated forward turns.
const maxTurns = 12

// Placement is a planned move sequence for one piece: Turns forward
// rotations at the spawn point, then DX and DZ unit steps, then a drop.
type Placement struct {
	Turns   int
	DX, DZ  int
	Cleared int
	Score   int
}

// Commands returns the inputs that carry out p.
func (p Placement) Commands() []game.Command {
	var cmds []game.Command
	for range p.Turns {
		cmds = append(cmds, game.RotateNext{Dir: 1})
	}
	for range abs(p.DX) {
		cmds = append(cmds, game.Translate{DX: sign(p.DX)})
	}
	for range abs(p.DZ) {
		cmds = append(cmds, game.Translate{DZ: sign(p.DZ)})
	}
	return append(cmds, game.HardDrop{})
}

// Plan searches every orientation and x/z offset reachable from p's current
// position and returns the placement with the best score. It reports false
// if no placement exists.
func Plan(b *board.Board, p *piece.Piece) (Placement, bool) {
	var best Placement
	found := false

	probe := p.Clone()
	for turns := 0; turns < maxTurns; turns++ {
		if turns > 0 {
			probe.Rotate(1)
		}
		if !b.ValidPlacement(probe) {
			break
		}

		for dz := -b.Depth(); dz <= b.Depth(); dz++ {
			for dx := -b.Width(); dx <= b.Width(); dx++ {
				cand := probe.Clone()
				if !slide(b, cand, dx, dz) {
					continue
				}
				cleared, score := evaluate(b, cand)
				if !found || score > best.Score {
					best = Placement{Turns: turns, DX: dx, DZ: dz, Cleared: cleared, Score: score}
					found = true
				}
			}
		}
	}
	return best, found
}

// slide steps p along x and then z the way the commands would, failing on
// the first blocked step.
func slide(b *board.Board, p *piece.Piece, dx, dz int) bool {
	for range abs(dx) {
		p.Move(sign(dx), 0, 0)
		if !b.ValidPlacement(p) {
			return false
		}
	}
	for range abs(dz) {
		p.Move(0, 0, sign(dz))
		if !b.ValidPlacement(p) {
			return false
		}
	}
	return true
}

// evaluate drops p on a copy of b. Cleared layers dominate the score, then
// a lower stack, then a lower landing.
func evaluate(b *board.Board, p *piece.Piece) (cleared, score int) {
	sim := b.Clone()
	for sim.ValidPlacement(p) {
		p.Move(0, -1, 0)
	}
	p.Move(0, 1, 0)

	landing := 0
	for _, c := range p.Cells() {
		landing += c.Y
	}

	sim.Commit(p)
	cleared = sim.ClearFullLayers()

	top := 0
	for c := range sim.Cells() {
		top = max(top, c.Pos.Y+1)
	}
	return cleared, cleared*1000 - top*100 - landing
}

// Bot is a loop.Source that plans once for every new piece.
type Bot struct {
	session *game.Session
	planned int

	Plans     int64
	Predicted int64
}

func NewBot(session *game.Session) *Bot {
	return &Bot{session: session}
}

// Reset forgets the last planned piece. Call it after Session.Restart.
func (b *Bot) Reset() {
	b.planned = 0
}

// Poll waits out pauses and reveals, since any command would end a reveal.
func (b *Bot) Poll() []game.Command {
	s := b.session
	if s.GameOver() || s.Paused() || s.Revealing() || s.PiecesSpawned() == b.planned {
		return nil
	}
	b.planned = s.PiecesSpawned()

	placement, ok := Plan(s.Board(), s.Piece())
	if !ok {
		return []game.Command{game.HardDrop{}}
	}
	b.Plans++
	b.Predicted += int64(placement.Cleared)
	return placement.Commands()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
