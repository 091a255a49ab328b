// Package game drives a single play session: gravity ticks, player
// commands, freezing, layer clears, spawning and game over.
//
// A Session is not safe for concurrent use. Gravity ticks and input must be
// serialized by the caller; loop.Scheduler does this for the frontends.
package game

import (
	"errors"
	"math/rand/v2"

	"github.com/plus3/cubefall/board"
	"github.com/plus3/cubefall/lattice"
	"github.com/plus3/cubefall/piece"
	"github.com/plus3/cubefall/shape"
)

//go:generate go tool stringer -type=State -trimprefix=State

// State is the controller state.
type State int

const (
	// StateFalling means a live piece is accepting gravity and input.
	StateFalling State = iota
	// StateCleared lasts while cells are being revealed after a clear.
	// Gravity is held until the reveal completes.
	StateCleared
	// StateGameOver is terminal until Restart.
	StateGameOver
)

// maxCycleTurns bounds RotateCycle: four quarter turns about each of the
// three axes.
const maxCycleTurns = 12

var ErrEmptyCatalog = errors.New("shape catalog is empty")

// TickResult reports what a gravity step or forced freeze did.
type TickResult struct {
	Moved    bool
	Froze    bool
	Cleared  int
	GameOver bool
}

// Session owns the board and the live piece for one game.
type Session struct {
	cfg     Config
	catalog *shape.Catalog
	rng     *rand.Rand

	board *board.Board
	piece *piece.Piece
	state State

	paused    bool
	revealing bool
	reveal    int

	layers int
	pieces int

	busy   bool
	events func(Event)
}

// New validates cfg and starts a session with a freshly spawned piece. If
// that piece does not fit, the session starts in StateGameOver.
func New(cfg Config, catalog *shape.Catalog) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil || catalog.Count() == 0 {
		return nil, ErrEmptyCatalog
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	s := &Session{
		cfg:     cfg,
		catalog: catalog,
		rng:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		board:   board.New(cfg.Width, cfg.Depth, cfg.Height),
	}
	s.spawn()
	return s, nil
}

// OnEvent registers fn to observe transitions. fn must not call back into
// the session.
func (s *Session) OnEvent(fn func(Event)) {
	s.events = fn
}

func (s *Session) emit(e Event) {
	if s.events != nil {
		s.events(e)
	}
}

// enter guards against re-entrant mutation from event hooks.
func (s *Session) enter() func() {
	if s.busy {
		panic("game: re-entrant session mutation")
	}
	s.busy = true
	return func() { s.busy = false }
}

func (s *Session) Config() Config          { return s.cfg }
func (s *Session) Board() *board.Board     { return s.board }
func (s *Session) Piece() *piece.Piece     { return s.piece }
func (s *Session) State() State            { return s.state }
func (s *Session) GameOver() bool          { return s.state == StateGameOver }
func (s *Session) Paused() bool            { return s.paused }
func (s *Session) LayersCleared() int      { return s.layers }
func (s *Session) PiecesSpawned() int      { return s.pieces }
func (s *Session) Revealing() bool         { return s.revealing }
func (s *Session) RevealCount() int        { return s.reveal }
func (s *Session) Catalog() *shape.Catalog { return s.catalog }

// GravityActive reports whether Tick would currently do anything.
func (s *Session) GravityActive() bool {
	return s.state != StateGameOver && !s.paused && !s.revealing
}

func (s *Session) spawn() {
	shp := s.catalog.Random(s.rng)
	s.piece = piece.New(shp, s.cfg.Spawn)
	s.pieces++
	s.emit(Event{Kind: EventSpawn, Piece: shp.Name})

	if !s.board.ValidPlacement(s.piece) {
		s.state = StateGameOver
		s.revealing = false
		s.emit(Event{Kind: EventGameOver, Piece: shp.Name})
	}
}

// Tick performs one gravity step. The piece moves down one layer if it can;
// otherwise it is frozen into the board, full layers are cleared and the
// next piece spawns. Tick does nothing while paused, revealing or over.
func (s *Session) Tick() TickResult {
	defer s.enter()()

	if !s.GravityActive() {
		return TickResult{GameOver: s.GameOver()}
	}

	s.piece.Move(0, -1, 0)
	if s.board.ValidPlacement(s.piece) {
		return TickResult{Moved: true}
	}
	s.piece.Move(0, 1, 0)
	return s.freeze()
}

// Freeze commits the piece where it is without waiting for gravity. The
// current placement must be valid.
func (s *Session) Freeze() TickResult {
	defer s.enter()()

	if s.state == StateGameOver {
		return TickResult{GameOver: true}
	}
	return s.freeze()
}

func (s *Session) freeze() TickResult {
	name := s.piece.Name()
	s.board.Commit(s.piece)
	s.emit(Event{Kind: EventFreeze, Piece: name})

	res := TickResult{Froze: true}
	res.Cleared = s.board.ClearFullLayers()
	if res.Cleared > 0 {
		s.layers += res.Cleared
		s.emit(Event{Kind: EventClear, Piece: name, Layers: res.Cleared})
		s.beginReveal()
	}

	s.spawn()
	res.GameOver = s.GameOver()
	return res
}

func (s *Session) beginReveal() {
	if s.cfg.RevealStep <= 0 || s.board.CountOccupied() == 0 {
		return
	}
	s.revealing = true
	s.reveal = 0
	s.state = StateCleared
}

// AdvanceReveal discloses one more settled cell. When every cell is shown
// the reveal ends, gravity resumes and the session returns to
// StateFalling. It reports whether the reveal is still running.
func (s *Session) AdvanceReveal() bool {
	defer s.enter()()

	if !s.revealing {
		return false
	}
	s.reveal++
	if s.reveal >= s.board.CountOccupied() {
		s.endReveal()
	}
	return s.revealing
}

// SkipReveal ends a running reveal immediately.
func (s *Session) SkipReveal() {
	defer s.enter()()

	if s.revealing {
		s.endReveal()
	}
}

func (s *Session) endReveal() {
	s.revealing = false
	s.reveal = 0
	if s.state == StateCleared {
		s.state = StateFalling
	}
	s.emit(Event{Kind: EventRevealDone})
}

// Pause holds gravity. Pausing twice is the same as pausing once.
func (s *Session) Pause() {
	defer s.enter()()
	s.setPaused(true)
}

// Resume releases a Pause. Resuming an unpaused session does nothing.
func (s *Session) Resume() {
	defer s.enter()()
	s.setPaused(false)
}

// TogglePause flips the pause state and returns the new value.
func (s *Session) TogglePause() bool {
	defer s.enter()()
	s.setPaused(!s.paused)
	return s.paused
}

func (s *Session) setPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	if paused {
		s.emit(Event{Kind: EventPause})
	} else {
		s.emit(Event{Kind: EventResume})
	}
}

// Translate moves the piece by the given delta, undoing the move if the
// result does not fit. It reports whether the piece moved.
func (s *Session) Translate(dx, dy, dz int) bool {
	defer s.enter()()

	if s.state == StateGameOver {
		return false
	}
	s.piece.Move(dx, dy, dz)
	if s.board.ValidPlacement(s.piece) {
		return true
	}
	s.piece.Move(-dx, -dy, -dz)
	return false
}

// Rotate turns the piece in direction dir and resolves a blocked result
// according to the configured RotationPolicy. It reports whether the piece
// was left in a rotated, valid placement; on false the orientation and
// rotation state are exactly as before the call.
func (s *Session) Rotate(dir int) bool {
	defer s.enter()()

	if s.state == StateGameOver || dir == 0 {
		return false
	}

	turns := 1
	if s.cfg.Rotation == RotateCycle {
		turns = maxCycleTurns
	}

	for i := 1; i <= turns; i++ {
		s.piece.Rotate(dir)
		if s.board.ValidPlacement(s.piece) {
			return true
		}
		if i == turns {
			for range turns {
				s.piece.Rotate(-dir)
			}
		}
	}
	return false
}

// HardDrop moves the piece straight down to the last valid height and
// returns the distance travelled. With Config.DropCommits the piece is
// frozen immediately; otherwise the next Tick freezes it.
func (s *Session) HardDrop() int {
	done := s.enter()

	if s.state == StateGameOver {
		done()
		return 0
	}
	n := s.dropDistance(s.piece)
	s.piece.Move(0, -n, 0)
	done()

	if s.cfg.DropCommits {
		s.Freeze()
	}
	return n
}

// dropDistance counts how far p can fall before it would collide.
func (s *Session) dropDistance(p *piece.Piece) int {
	probe := p.Clone()
	n := 0
	for {
		probe.Move(0, -1, 0)
		if !s.board.ValidPlacement(probe) {
			return n
		}
		n++
	}
}

// Ghost returns the cells the piece would occupy after a hard drop.
func (s *Session) Ghost() []lattice.Point3 {
	g := s.piece.Clone()
	g.Move(0, -s.dropDistance(g), 0)
	return g.Cells()
}

// Guide returns the live piece's footprint on the x/z plane: the minimum
// corner and the width and depth.
func (s *Session) Guide() (x, z, w, d int) {
	return s.piece.Footprint()
}

// Restart clears the board and counters and spawns a new piece.
func (s *Session) Restart() {
	defer s.enter()()

	s.board.Reset()
	s.state = StateFalling
	s.paused = false
	s.revealing = false
	s.reveal = 0
	s.layers = 0
	s.pieces = 0
	s.spawn()
}
