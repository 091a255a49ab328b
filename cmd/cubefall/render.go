package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/lattice"
)

const margin = 48

var (
	gridColor  = color.RGBA{200, 200, 0, 255}
	wireColor  = color.RGBA{255, 255, 255, 255}
	guideColor = color.RGBA{255, 255, 255, 160}
	ghostColor = color.RGBA{255, 255, 255, 90}
	background = color.RGBA{0, 0, 0, 255}
)

// oblique is how far one unit of depth shifts a point on both screen axes,
// in cell units. Depth recedes up and to the right.
var oblique = float32(0.5 * math.Sin(-50*math.Pi/180))

// Renderer draws the board in an oblique projection. Cubes are painted
// back to front, bottom to top, left to right so nearer faces cover
// farther ones without a depth buffer.
type Renderer struct {
	white *ebiten.Image

	cell   float32
	ox, oy float32
}

func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// project maps a lattice corner to screen coordinates.
func (r *Renderer) project(x, y, z float32) (float32, float32) {
	return r.ox + (x+oblique*z)*r.cell, r.oy - (y+oblique*z)*r.cell
}

func (r *Renderer) fit(screen *ebiten.Image, w, d, h int) {
	b := screen.Bounds()
	depth := -oblique * float32(d)
	r.cell = min(
		(float32(b.Dx())-2*margin)/(float32(w)+depth),
		(float32(b.Dy())-2*margin)/(float32(h)+depth),
	)
	r.ox = margin + depth*r.cell
	r.oy = margin + float32(h)*r.cell
}

// Draw renders the grid, the top guides, settled cells, the live piece and
// its landing ghost. While a reveal runs only the first RevealCount settled
// cells are drawn.
func (r *Renderer) Draw(screen *ebiten.Image, s *game.Session) {
	screen.Fill(background)

	b := s.Board()
	r.fit(screen, b.Width(), b.Depth(), b.Height())
	r.drawGrid(screen, b.Width(), b.Depth(), b.Height())

	live := !s.GameOver()
	var ghost map[lattice.Point3]bool
	if live {
		r.drawGuides(screen, s, b.Height())
		ghost = make(map[lattice.Point3]bool)
		for _, c := range s.Ghost() {
			ghost[c] = true
		}
	}

	p := s.Piece()
	drawn := 0
	for y := 0; y < b.Height(); y++ {
		for z := 0; z < b.Depth(); z++ {
			for x := 0; x < b.Width(); x++ {
				pos := lattice.Pt(x, y, z)
				switch cell, ok := b.At(pos); {
				case ok:
					if s.Revealing() && drawn >= s.RevealCount() {
						return
					}
					r.drawCube(screen, pos, cell.Color)
					drawn++
				case live && p.Contains(pos):
					r.drawCube(screen, pos, p.Color())
				case ghost[pos]:
					r.drawWire(screen, pos, ghostColor)
				}
			}
		}
	}
}

func (r *Renderer) line(screen *ebiten.Image, x0, y0, z0, x1, y1, z1 float32, c color.Color) {
	sx0, sy0 := r.project(x0, y0, z0)
	sx1, sy1 := r.project(x1, y1, z1)
	vector.StrokeLine(screen, sx0, sy0, sx1, sy1, 1, c, true)
}

// drawGrid outlines the back wall, the left wall and the floor.
func (r *Renderer) drawGrid(screen *ebiten.Image, w, d, h int) {
	fw, fd, fh := float32(w), float32(d), float32(h)

	for x := 0; x <= w; x++ {
		fx := float32(x)
		r.line(screen, fx, 0, 0, fx, fh, 0, gridColor)
		r.line(screen, fx, 0, 0, fx, 0, fd, gridColor)
	}
	for y := 0; y <= h; y++ {
		fy := float32(y)
		r.line(screen, 0, fy, 0, fw, fy, 0, gridColor)
		r.line(screen, 0, fy, 0, 0, fy, fd, gridColor)
	}
	for z := 0; z <= d; z++ {
		fz := float32(z)
		r.line(screen, 0, 0, fz, 0, fh, fz, gridColor)
		r.line(screen, 0, 0, fz, fw, 0, fz, gridColor)
	}
}

// drawGuides marks the piece's footprint along the top row of the back
// and left walls.
func (r *Renderer) drawGuides(screen *ebiten.Image, s *game.Session, h int) {
	gx, gz, w, d := s.Guide()
	top := float32(h)

	for i := range w {
		x := float32(gx + i)
		r.quad(screen, guideColor,
			x, top-1, 0,
			x+1, top-1, 0,
			x+1, top, 0,
			x, top, 0)
	}
	for j := range d {
		z := float32(gz + j)
		r.quad(screen, guideColor,
			0, top-1, z,
			0, top-1, z+1,
			0, top, z+1,
			0, top, z)
	}
}

func (r *Renderer) drawCube(screen *ebiten.Image, pos lattice.Point3, c color.RGBA) {
	x, y, z := float32(pos.X), float32(pos.Y), float32(pos.Z)

	r.quad(screen, shade(c, 0.7),
		x+1, y, z,
		x+1, y+1, z,
		x+1, y+1, z+1,
		x+1, y, z+1)
	r.quad(screen, shade(c, 1.25),
		x, y+1, z,
		x+1, y+1, z,
		x+1, y+1, z+1,
		x, y+1, z+1)
	r.quad(screen, c,
		x, y, z+1,
		x+1, y, z+1,
		x+1, y+1, z+1,
		x, y+1, z+1)

	r.drawWire(screen, pos, wireColor)
}

// drawWire strokes the cube's visible edges.
func (r *Renderer) drawWire(screen *ebiten.Image, pos lattice.Point3, c color.RGBA) {
	x, y, z := float32(pos.X), float32(pos.Y), float32(pos.Z)

	r.line(screen, x, y, z+1, x+1, y, z+1, c)
	r.line(screen, x+1, y, z+1, x+1, y+1, z+1, c)
	r.line(screen, x+1, y+1, z+1, x, y+1, z+1, c)
	r.line(screen, x, y+1, z+1, x, y, z+1, c)

	r.line(screen, x, y+1, z+1, x, y+1, z, c)
	r.line(screen, x, y+1, z, x+1, y+1, z, c)
	r.line(screen, x+1, y+1, z, x+1, y+1, z+1, c)
	r.line(screen, x+1, y+1, z, x+1, y, z, c)
	r.line(screen, x+1, y, z, x+1, y, z+1, c)
}

// quad fills the convex polygon through four lattice corners given as
// x, y, z triples.
func (r *Renderer) quad(screen *ebiten.Image, c color.RGBA, pts ...float32) {
	cr := float32(c.R) / 255.0
	cg := float32(c.G) / 255.0
	cb := float32(c.B) / 255.0
	ca := float32(c.A) / 255.0

	vertices := make([]ebiten.Vertex, 0, 4)
	for i := 0; i+2 < len(pts); i += 3 {
		sx, sy := r.project(pts[i], pts[i+1], pts[i+2])
		vertices = append(vertices, ebiten.Vertex{
			DstX:   sx,
			DstY:   sy,
			SrcX:   1,
			SrcY:   1,
			ColorR: cr * ca,
			ColorG: cg * ca,
			ColorB: cb * ca,
			ColorA: ca,
		})
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}

	screen.DrawTriangles(vertices, indices, r.white, &ebiten.DrawTrianglesOptions{})
}

func shade(c color.RGBA, f float32) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(min(float32(v)*f, 255))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}
