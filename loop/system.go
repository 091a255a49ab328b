// Package loop runs a game session on a fixed cadence. It serializes the
// two stimuli that mutate a session, gravity and player input, through
// one scheduler so they never interleave.
package loop

// System represents a behavior executed once per scheduler frame.
// Systems can keep their own state between frames, such as time
// accumulators or counters.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}
