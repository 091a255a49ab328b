// Package board implements the fixed-size 3D occupancy grid that settled
// piece cells are committed into, along with full-layer detection and
// layer deletion with downward compaction.
package board

import (
	"fmt"
	"image/color"
	"iter"

	"github.com/kamstrup/intmap"
	"github.com/plus3/cubefall/lattice"
)

// Cell is a settled cube. Pos always equals the cell's grid index.
type Cell struct {
	Pos   lattice.Point3
	Color color.RGBA
}

// Piece is anything with absolute cells and a color that can be placed on
// the board. *piece.Piece satisfies it.
type Piece interface {
	Cells() []lattice.Point3
	Color() color.RGBA
}

// layer is one horizontal slab indexed [x][z].
type layer [][]*Cell

// Board is a W x D x H grid indexed [height][width][depth].
type Board struct {
	w, d, h int
	layers  []layer
	fill    *intmap.Map[int, int] // height -> occupied cells in that layer
}

// New allocates an empty w x d x h board. It panics on non-positive
// dimensions.
func New(w, d, h int) *Board {
	if w <= 0 || d <= 0 || h <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%dx%d", w, d, h))
	}

	b := &Board{
		w:      w,
		d:      d,
		h:      h,
		layers: make([]layer, h),
		fill:   intmap.New[int, int](h),
	}
	for y := range b.layers {
		b.layers[y] = b.newLayer()
	}
	return b
}

func (b *Board) newLayer() layer {
	l := make(layer, b.w)
	for x := range l {
		l[x] = make([]*Cell, b.d)
	}
	return l
}

func (b *Board) Width() int  { return b.w }
func (b *Board) Depth() int  { return b.d }
func (b *Board) Height() int { return b.h }

// InBounds reports whether p lies inside the grid.
func (b *Board) InBounds(p lattice.Point3) bool {
	return p.X >= 0 && p.X < b.w &&
		p.Y >= 0 && p.Y < b.h &&
		p.Z >= 0 && p.Z < b.d
}

// Occupied reports whether p holds a settled cell. Points outside the grid
// are never occupied.
func (b *Board) Occupied(p lattice.Point3) bool {
	_, ok := b.At(p)
	return ok
}

// At returns the settled cell at p.
func (b *Board) At(p lattice.Point3) (Cell, bool) {
	if !b.InBounds(p) {
		return Cell{}, false
	}
	c := b.layers[p.Y][p.X][p.Z]
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// Fits reports whether every point is inside the grid and unoccupied.
func (b *Board) Fits(cells []lattice.Point3) bool {
	for _, p := range cells {
		if !b.InBounds(p) || b.Occupied(p) {
			return false
		}
	}
	return true
}

// ValidPlacement reports whether p can occupy its current cells.
func (b *Board) ValidPlacement(p Piece) bool {
	return b.Fits(p.Cells())
}

// Commit settles every cell of p into the grid. Placement is not
// re-validated; committing a piece that overlaps settled cells overwrites
// them. It panics if a cell lies outside the grid.
func (b *Board) Commit(p Piece) {
	c := p.Color()
	for _, pos := range p.Cells() {
		b.Set(pos, c)
	}
}

// Set settles a single cell at pos.
func (b *Board) Set(pos lattice.Point3, c color.RGBA) {
	if !b.InBounds(pos) {
		panic(fmt.Sprintf("board: cell %s outside %dx%dx%d grid", pos, b.w, b.d, b.h))
	}
	slot := &b.layers[pos.Y][pos.X][pos.Z]
	if *slot == nil {
		b.addFill(pos.Y, 1)
	}
	*slot = &Cell{Pos: pos, Color: c}
}

func (b *Board) addFill(y, delta int) {
	n, _ := b.fill.Get(y)
	n += delta
	if n == 0 {
		b.fill.Del(y)
		return
	}
	b.fill.Put(y, n)
}

// LayerCount returns the number of settled cells at height y.
func (b *Board) LayerCount(y int) int {
	n, _ := b.fill.Get(y)
	return n
}

// IsLayerFull reports whether every (x, z) cell at height y is occupied.
func (b *Board) IsLayerFull(y int) bool {
	if y < 0 || y >= b.h {
		return false
	}
	return b.LayerCount(y) == b.w*b.d
}

// DeleteLayer removes layer y and drops every layer above it by one. The
// top layer becomes empty. Moved cells have their stored height updated.
func (b *Board) DeleteLayer(y int) {
	if y < 0 || y >= b.h {
		panic(fmt.Sprintf("board: layer %d outside height %d", y, b.h))
	}

	for j := y; j < b.h-1; j++ {
		b.layers[j] = b.layers[j+1]
		for _, column := range b.layers[j] {
			for _, c := range column {
				if c != nil {
					c.Pos.Y--
				}
			}
		}

		if n := b.LayerCount(j + 1); n > 0 {
			b.fill.Put(j, n)
		} else {
			b.fill.Del(j)
		}
	}

	b.layers[b.h-1] = b.newLayer()
	b.fill.Del(b.h - 1)
}

// ClearFullLayers deletes every full layer, lowest first, and returns how
// many were removed. After a deletion the scan stays at the same height,
// since the layer that dropped into it may be full too.
func (b *Board) ClearFullLayers() int {
	cleared := 0
	for y := 0; y < b.h; {
		if b.IsLayerFull(y) {
			b.DeleteLayer(y)
			cleared++
			continue
		}
		y++
	}
	return cleared
}

// CountOccupied returns the number of settled cells on the board.
func (b *Board) CountOccupied() int {
	total := 0
	for y := range b.h {
		total += b.LayerCount(y)
	}
	return total
}

// Cells iterates over settled cells bottom to top, back to front, left to
// right. Renderers rely on this order for the reveal animation.
func (b *Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y := 0; y < b.h; y++ {
			if b.LayerCount(y) == 0 {
				continue
			}
			for z := 0; z < b.d; z++ {
				for x := 0; x < b.w; x++ {
					if c := b.layers[y][x][z]; c != nil {
						if !yield(*c) {
							return
						}
					}
				}
			}
		}
	}
}

// Reveal is Cells limited to the first n settled cells.
func (b *Board) Reveal(n int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if n <= 0 {
			return
		}
		seen := 0
		for c := range b.Cells() {
			if !yield(c) {
				return
			}
			seen++
			if seen >= n {
				return
			}
		}
	}
}

// Reset empties the board.
func (b *Board) Reset() {
	for y := range b.layers {
		b.layers[y] = b.newLayer()
	}
	b.fill.Clear()
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := New(b.w, b.d, b.h)
	for cell := range b.Cells() {
		c.Set(cell.Pos, cell.Color)
	}
	return c
}
