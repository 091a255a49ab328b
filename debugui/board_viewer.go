package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/lattice"
	"github.com/plus3/cubefall/loop"
)

// BoardViewer lists per-layer fill and draws one selected layer as a grid.
type BoardViewer struct {
	selectedLayer int32
}

func NewBoardViewer() *BoardViewer {
	return &BoardViewer{}
}

func vec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

func (bv *BoardViewer) Render(scheduler *loop.Scheduler) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 250), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 420), imgui.CondOnce)

	if !imgui.BeginV("Board Layers", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := scheduler.Session()
	b := s.Board()
	perLayer := b.Width() * b.Depth()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("LayerTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Height")
		imgui.TableSetupColumn("Fill")
		imgui.TableHeadersRow()

		for y := b.Height() - 1; y >= 0; y-- {
			n := b.LayerCount(y)
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", y))
			imgui.TableNextColumn()
			imgui.ProgressBarV(float32(n)/float32(perLayer), imgui.NewVec2(-1, 0), fmt.Sprintf("%d/%d", n, perLayer))
		}
		imgui.EndTable()
	}

	imgui.Separator()
	imgui.Text("Layer:")
	imgui.SameLine()
	imgui.SetNextItemWidth(120)
	if imgui.InputInt("##layer", &bv.selectedLayer) {
		bv.selectedLayer = max(0, min(bv.selectedLayer, int32(b.Height()-1)))
	}

	y := int(bv.selectedLayer)
	p := s.Piece()
	for z := 0; z < b.Depth(); z++ {
		for x := 0; x < b.Width(); x++ {
			if x > 0 {
				imgui.SameLine()
			}
			pos := lattice.Pt(x, y, z)
			switch cell, ok := b.At(pos); {
			case ok:
				imgui.TextColored(vec4(cell.Color), "##")
			case !s.GameOver() && p.Contains(pos):
				imgui.TextColored(vec4(p.Color()), "@@")
			default:
				imgui.Text("..")
			}
		}
	}

	imgui.End()
}
