// Package debugui provides immediate-mode GUI inspection of a running game
// session using Dear ImGui. Panels are queued by ImguiSystem each frame and
// drawn after the frame's commands have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/loop"
)

// Panel is one ImGui window.
type Panel interface {
	Render(scheduler *loop.Scheduler)
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every panel to the end of the
// frame and refreshes Input with the current capture state.
type ImguiSystem struct {
	Scheduler *loop.Scheduler
	Panels    []Panel
	Input     ImguiInputState
}

// New returns an ImguiSystem with the standard panels.
func New(scheduler *loop.Scheduler) *ImguiSystem {
	return &ImguiSystem{
		Scheduler: scheduler,
		Panels: []Panel{
			NewSessionPanel(),
			NewBoardViewer(),
			NewPieceInspector(),
			NewPerformanceStats(120),
		},
	}
}

// Execute updates input state and queues all panel render functions.
func (i *ImguiSystem) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	i.Input.WantCaptureMouse = io.WantCaptureMouse()
	i.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, panel := range i.Panels {
		frame.Commands.Defer(func() {
			panel.Render(i.Scheduler)
		})
	}
}
