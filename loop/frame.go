package loop

import "github.com/plus3/cubefall/game"

// Frame is passed to every system during one scheduler step.
type Frame struct {
	DeltaTime float64
	Session   *game.Session
	Commands  *Commands
}

func newFrame(dt float64, session *game.Session, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Session:   session,
		Commands:  commands,
	}
}
