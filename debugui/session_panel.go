package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/loop"
)

// SessionPanel shows the controller state and offers manual controls.
type SessionPanel struct{}

func NewSessionPanel() *SessionPanel {
	return &SessionPanel{}
}

func (sp *SessionPanel) Render(scheduler *loop.Scheduler) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 230), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := scheduler.Session()
	cfg := s.Config()
	b := s.Board()

	imgui.Text(fmt.Sprintf("State: %s", s.State()))
	imgui.Text(fmt.Sprintf("Board: %dx%dx%d", b.Width(), b.Depth(), b.Height()))
	imgui.Text(fmt.Sprintf("Layers cleared: %d", s.LayersCleared()))
	imgui.Text(fmt.Sprintf("Pieces spawned: %d", s.PiecesSpawned()))
	imgui.Text(fmt.Sprintf("Occupied cells: %d", b.CountOccupied()))
	imgui.Text(fmt.Sprintf("Rotation policy: %s", cfg.Rotation))

	if s.Revealing() {
		total := max(b.CountOccupied(), 1)
		imgui.ProgressBarV(float32(s.RevealCount())/float32(total), imgui.NewVec2(-1, 0),
			fmt.Sprintf("reveal %d/%d", s.RevealCount(), total))
	}

	imgui.Separator()

	pauseLabel := "Pause"
	if s.Paused() {
		pauseLabel = "Resume"
	}
	if imgui.Button(pauseLabel) {
		s.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Tick") {
		s.Tick()
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		s.Restart()
	}
	if s.Revealing() {
		imgui.SameLine()
		if imgui.Button("Skip Reveal") {
			s.SkipReveal()
		}
	}

	imgui.End()
}
