// Package piece implements the falling polycube: an anchor position, a set
// of possibly rotated cell offsets and a color.
package piece

import (
	"image/color"
	"slices"

	"github.com/plus3/cubefall/lattice"
	"github.com/plus3/cubefall/shape"
)

// axisCycle is the order successive rotations walk through. Rotation state
// s turns about axisCycle[s mod 3].
var axisCycle = [3]lattice.Axis{lattice.AxisZ, lattice.AxisY, lattice.AxisX}

// Piece is a movable polycube instance. The zero value is not usable; build
// pieces with New.
type Piece struct {
	name     string
	base     lattice.Point3
	offsets  []lattice.Point3
	color    color.RGBA
	rotation int

	cells []lattice.Point3 // nil when stale
}

// New spawns a piece of shape s anchored at base. Offsets are copied, so
// rotating the piece never touches the shared shape.
func New(s shape.Shape, base lattice.Point3) *Piece {
	return &Piece{
		name:    s.Name,
		base:    base,
		offsets: slices.Clone(s.Offsets),
		color:   s.Color,
	}
}

// Name returns the name of the shape the piece was spawned from.
func (p *Piece) Name() string { return p.name }

// Base returns the anchor position.
func (p *Piece) Base() lattice.Point3 { return p.base }

// Color returns the piece color.
func (p *Piece) Color() color.RGBA { return p.color }

// RotationState returns the rotation counter. It goes negative when the
// piece is rotated backwards past its spawn orientation.
func (p *Piece) RotationState() int { return p.rotation }

// Size returns the number of cells. It never changes.
func (p *Piece) Size() int { return len(p.offsets) }

// Offsets returns a copy of the current cell offsets.
func (p *Piece) Offsets() []lattice.Point3 {
	return slices.Clone(p.offsets)
}

// Cells returns the absolute cell positions sorted back to front, left to
// right, bottom to top. The returned slice is shared until the next move or
// rotation and must not be modified.
func (p *Piece) Cells() []lattice.Point3 {
	if p.cells == nil {
		cells := make([]lattice.Point3, len(p.offsets))
		for i, off := range p.offsets {
			cells[i] = p.base.Add(off)
		}
		slices.SortFunc(cells, lattice.Compare)
		p.cells = cells
	}
	return p.cells
}

// Contains reports whether cell is one of the piece's absolute cells.
func (p *Piece) Contains(cell lattice.Point3) bool {
	return slices.Contains(p.Cells(), cell)
}

// Move translates the anchor. Bounds are not checked.
func (p *Piece) Move(dx, dy, dz int) {
	p.MoveBy(lattice.Pt(dx, dy, dz))
}

// MoveBy translates the anchor by delta.
func (p *Piece) MoveBy(delta lattice.Point3) {
	if delta == (lattice.Point3{}) {
		return
	}
	p.base = p.base.Add(delta)
	p.cells = nil
}

// MoveTo places the anchor at base.
func (p *Piece) MoveTo(base lattice.Point3) {
	p.MoveBy(base.Sub(p.base))
}

// NextAxis reports the axis Rotate(dir) would turn about.
func (p *Piece) NextAxis(dir int) lattice.Axis {
	s := p.rotation
	if dir < 0 {
		s--
	}
	return axisCycle[mod3(s)]
}

// Rotate turns every offset a quarter turn in direction dir (+1 or -1)
// about the axis picked by the rotation state. A backward turn steps the
// state back before picking the axis and a forward turn steps it after, so
// Rotate(1) followed by Rotate(-1) restores both offsets and state.
// Placement is not validated.
func (p *Piece) Rotate(dir int) lattice.Axis {
	if dir == 0 {
		return p.NextAxis(dir)
	}
	if dir < 0 {
		p.rotation--
	}
	axis := axisCycle[mod3(p.rotation)]
	for i, off := range p.offsets {
		p.offsets[i] = lattice.Rotate(off, axis, dir)
	}
	if dir > 0 {
		p.rotation++
	}
	p.cells = nil
	return axis
}

// Dims returns the extent of the piece along width, depth and height.
func (p *Piece) Dims() (w, d, h int) {
	lo, hi := lattice.Bounds(p.offsets)
	return hi.X - lo.X + 1, hi.Z - lo.Z + 1, hi.Y - lo.Y + 1
}

// Footprint returns the lowest x and z the piece covers along with its
// width and depth. Frontends draw it as a guide along the top of the board.
func (p *Piece) Footprint() (x, z, w, d int) {
	lo, _ := lattice.Bounds(p.offsets)
	w, d, _ = p.Dims()
	return p.base.X + lo.X, p.base.Z + lo.Z, w, d
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	c.offsets = slices.Clone(p.offsets)
	c.cells = nil
	return &c
}

func mod3(v int) int {
	return ((v % 3) + 3) % 3
}
