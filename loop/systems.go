package loop

import (
	"sync"

	"github.com/plus3/cubefall/game"
)

// Source produces the commands that arrived since it was last polled.
type Source interface {
	Poll() []game.Command
}

// Queue is a Source that other goroutines can push commands into.
type Queue struct {
	mu   sync.Mutex
	cmds []game.Command
}

// Push appends cmd to the queue.
func (q *Queue) Push(cmd ...game.Command) {
	q.mu.Lock()
	q.cmds = append(q.cmds, cmd...)
	q.mu.Unlock()
}

// Poll drains the queue.
func (q *Queue) Poll() []game.Command {
	q.mu.Lock()
	defer q.mu.Unlock()

	cmds := q.cmds
	q.cmds = nil
	return cmds
}

// InputSystem moves commands from a Source into the frame's command
// buffer.
type InputSystem struct {
	Source Source
}

func (s *InputSystem) Execute(frame *Frame) {
	if s.Source == nil {
		return
	}
	for _, cmd := range s.Source.Poll() {
		frame.Commands.Apply(cmd)
	}
}

// GravitySystem ticks the session every Config.Gravity of accumulated
// frame time. Time does not accumulate while gravity is held, so a pause
// or reveal never produces a burst of catch-up ticks on resume.
type GravitySystem struct {
	Accumulator float64
	Ticks       int64
	Freezes     int64

	// OnTick, when set, observes every tick result.
	OnTick func(game.TickResult)
}

func (s *GravitySystem) Execute(frame *Frame) {
	session := frame.Session
	if !session.GravityActive() {
		s.Accumulator = 0
		return
	}

	interval := session.Config().Gravity.Seconds()
	s.Accumulator += frame.DeltaTime

	for s.Accumulator >= interval && session.GravityActive() {
		s.Accumulator -= interval
		res := session.Tick()
		s.Ticks++
		if res.Froze {
			s.Freezes++
		}
		if s.OnTick != nil {
			s.OnTick(res)
		}
	}
}

// RevealSystem advances a running reveal by one cell every
// Config.RevealStep. Counting starts on the frame after the reveal began.
type RevealSystem struct {
	Accumulator float64
	running     bool
}

func (s *RevealSystem) Execute(frame *Frame) {
	session := frame.Session
	if !session.Revealing() {
		s.Accumulator = 0
		s.running = false
		return
	}
	if !s.running {
		s.running = true
		return
	}

	step := session.Config().RevealStep.Seconds()
	s.Accumulator += frame.DeltaTime

	for s.Accumulator >= step && session.Revealing() {
		s.Accumulator -= step
		session.AdvanceReveal()
	}
}

// NewGameScheduler returns a scheduler with the standard systems
// registered: input from src, then gravity, then reveal.
func NewGameScheduler(session *game.Session, src Source) (*Scheduler, *GravitySystem) {
	gravity := &GravitySystem{}

	s := NewScheduler(session)
	s.Register(&InputSystem{Source: src})
	s.Register(gravity)
	s.Register(&RevealSystem{})
	return s, gravity
}
