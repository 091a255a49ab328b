package loop

import "github.com/plus3/cubefall/game"

// Commands buffers game commands and deferred functions queued by systems
// during a frame. They run after every system has executed, in the order
// they were queued: commands first, then deferred functions.
type Commands struct {
	input  []game.Command
	defers []func()

	applied int64
	ignored int64
}

func newCommands() *Commands {
	return &Commands{}
}

// Apply queues cmd for the end of the frame.
func (c *Commands) Apply(cmd game.Command) {
	c.input = append(c.input, cmd)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued commands.
func (c *Commands) Pending() int {
	return len(c.input)
}

// Flush applies all queued commands to session and runs deferred
// functions, resetting the buffer state. A command that ends a reveal
// consumes the rest of the batch, which is counted as ignored.
func (c *Commands) Flush(session *game.Session) {
	for i, cmd := range c.input {
		revealing := session.Revealing()
		if session.Apply(cmd) {
			c.applied++
		} else {
			c.ignored++
		}
		if revealing {
			c.ignored += int64(len(c.input) - i - 1)
			break
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.input)
	c.input = c.input[:0]
	c.defers = c.defers[:0]
}
