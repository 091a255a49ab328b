package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/lattice"
	"github.com/plus3/cubefall/loop"
)

// PieceInspector shows the live piece's geometry.
type PieceInspector struct {
	showOffsets bool
}

func NewPieceInspector() *PieceInspector {
	return &PieceInspector{showOffsets: true}
}

func (pi *PieceInspector) Render(scheduler *loop.Scheduler) {
	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 300), imgui.CondOnce)

	if !imgui.BeginV("Piece Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := scheduler.Session()
	p := s.Piece()

	imgui.TextColored(vec4(p.Color()), p.Name())
	imgui.Text(fmt.Sprintf("Base: %s", p.Base()))
	imgui.Text(fmt.Sprintf("Rotation state: %d", p.RotationState()))
	imgui.Text(fmt.Sprintf("Next axis: %s (+1) / %s (-1)", p.NextAxis(1), p.NextAxis(-1)))

	w, d, h := p.Dims()
	imgui.Text(fmt.Sprintf("Dims: %dx%dx%d", w, d, h))

	x, z, fw, fd := p.Footprint()
	imgui.Text(fmt.Sprintf("Footprint: x=%d z=%d %dx%d", x, z, fw, fd))

	if !s.GameOver() {
		lo, _ := lattice.Bounds(s.Ghost())
		imgui.Text(fmt.Sprintf("Lands at y=%d", lo.Y))
	}

	imgui.Checkbox("Offsets", &pi.showOffsets)
	if pi.showOffsets {
		imgui.Indent()
		for _, off := range p.Offsets() {
			imgui.BulletText(off.String())
		}
		imgui.Unindent()
	}

	imgui.End()
}
