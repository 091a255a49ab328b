package game

import "fmt"

// Command is one abstract input event. The input layer produces commands
// and Session.Apply consumes them; nothing else crosses that boundary.
type Command interface {
	apply(s *Session) bool
	fmt.Stringer
}

// Translate moves the piece by a unit delta. Up to two axes may be set at
// once for diagonal moves.
type Translate struct {
	DX, DY, DZ int
}

// RotateNext turns the piece to its next (Dir = 1) or previous (Dir = -1)
// orientation.
type RotateNext struct {
	Dir int
}

// HardDrop drops the piece to its landing height.
type HardDrop struct{}

// PauseToggle pauses or resumes gravity.
type PauseToggle struct{}

func (c Translate) apply(s *Session) bool  { return s.Translate(c.DX, c.DY, c.DZ) }
func (c RotateNext) apply(s *Session) bool { return s.Rotate(c.Dir) }

// HardDrop applies if the piece moved or, with DropCommits, froze in place.
func (c HardDrop) apply(s *Session) bool {
	commits := s.cfg.DropCommits && !s.GameOver()
	return s.HardDrop() > 0 || commits
}

func (c PauseToggle) apply(s *Session) bool {
	s.TogglePause()
	return true
}

func (c Translate) String() string   { return fmt.Sprintf("Translate(%d,%d,%d)", c.DX, c.DY, c.DZ) }
func (c RotateNext) String() string  { return fmt.Sprintf("RotateNext(%+d)", c.Dir) }
func (c HardDrop) String() string    { return "HardDrop" }
func (c PauseToggle) String() string { return "PauseToggle" }

// Apply executes cmd and reports whether it changed anything. Any command
// received during a reveal only ends the reveal. Movement is ignored while
// paused; PauseToggle always applies.
func (s *Session) Apply(cmd Command) bool {
	if s.revealing {
		s.SkipReveal()
		return false
	}
	if _, ok := cmd.(PauseToggle); !ok && s.paused {
		return false
	}
	return cmd.apply(s)
}
