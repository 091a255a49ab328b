// Package termview renders a board and its live piece as text, one
// top-down slice per layer, styled with lipgloss.
package termview

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/cubefall/board"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/lattice"
	"github.com/plus3/cubefall/piece"
)

const (
	settledGlyph = "##"
	pieceGlyph   = "@@"
	emptyGlyph   = " ."
)

// View renders boards for one output. Color support is detected from the
// writer the view was created for.
type View struct {
	r *lipgloss.Renderer

	// PerRow is how many layer slices are placed side by side.
	PerRow int
	// SkipEmpty hides layers that hold neither settled cells nor piece cells.
	SkipEmpty bool

	frame lipgloss.Style
	title lipgloss.Style
	empty lipgloss.Style
}

// New returns a view for output written to w.
func New(w io.Writer) *View {
	r := lipgloss.NewRenderer(w)
	return &View{
		r:      r,
		PerRow: 5,
		frame:  r.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#666666")),
		title:  r.NewStyle().Bold(true),
		empty:  r.NewStyle().Foreground(lipgloss.Color("#444444")),
	}
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Layer renders the slice at height y. p may be nil.
func (v *View) Layer(b *board.Board, p *piece.Piece, y int) string {
	return v.layer(b, p, y, nil)
}

// layer draws settled cells only if shown holds them. A nil shown draws
// every settled cell.
func (v *View) layer(b *board.Board, p *piece.Piece, y int, shown map[lattice.Point3]bool) string {
	var sb strings.Builder
	sb.WriteString(v.title.Render(fmt.Sprintf("y=%d", y)))

	for z := 0; z < b.Depth(); z++ {
		sb.WriteByte('\n')
		for x := 0; x < b.Width(); x++ {
			pos := lattice.Pt(x, y, z)
			switch cell, ok := b.At(pos); {
			case ok && (shown == nil || shown[pos]):
				sb.WriteString(v.r.NewStyle().Foreground(hex(cell.Color)).Render(settledGlyph))
			case p != nil && p.Contains(pos):
				sb.WriteString(v.r.NewStyle().Foreground(hex(p.Color())).Bold(true).Render(pieceGlyph))
			default:
				sb.WriteString(v.empty.Render(emptyGlyph))
			}
		}
	}
	return v.frame.Render(sb.String())
}

// Board renders every layer, top first, PerRow slices to a row.
func (v *View) Board(b *board.Board, p *piece.Piece) string {
	return v.board(b, p, nil)
}

func (v *View) board(b *board.Board, p *piece.Piece, shown map[lattice.Point3]bool) string {
	perRow := max(v.PerRow, 1)

	var slices []string
	for y := b.Height() - 1; y >= 0; y-- {
		if v.SkipEmpty && b.LayerCount(y) == 0 && !touches(p, y) {
			continue
		}
		slices = append(slices, v.layer(b, p, y, shown))
	}

	var rows []string
	for i := 0; i < len(slices); i += perRow {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, slices[i:min(i+perRow, len(slices))]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Session renders the board, the live piece and a status line. While a
// reveal runs only the first RevealCount settled cells are drawn.
func (v *View) Session(s *game.Session) string {
	var p *piece.Piece
	if !s.GameOver() {
		p = s.Piece()
	}

	var shown map[lattice.Point3]bool
	if s.Revealing() {
		shown = make(map[lattice.Point3]bool, s.RevealCount())
		for c := range s.Board().Reveal(s.RevealCount()) {
			shown[c.Pos] = true
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, v.board(s.Board(), p, shown), Status(s))
}

// Status is the one-line scoreboard.
func Status(s *game.Session) string {
	status := fmt.Sprintf("layers: %d  pieces: %d  state: %s", s.LayersCleared(), s.PiecesSpawned(), s.State())
	if s.Paused() {
		status += " (paused)"
	}
	return status
}

func touches(p *piece.Piece, y int) bool {
	if p == nil {
		return false
	}
	for _, c := range p.Cells() {
		if c.Y == y {
			return true
		}
	}
	return false
}
