// Package shape defines the polycube shapes pieces are spawned from.
package shape

import (
	"image/color"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/plus3/cubefall/lattice"
)

// Shape is a named polycube: cell offsets from a logical origin and a color.
// Shapes are values shared read-only between pieces; callers must not
// modify Offsets.
type Shape struct {
	Name    string
	Offsets []lattice.Point3
	Color   color.RGBA
}

// Size returns the number of cells in the shape.
func (s Shape) Size() int {
	return len(s.Offsets)
}

// Box builds a w x d x h rectangular solid. The origin is the top-left-back
// cell and the solid hangs downward from it, so a piece anchored at the top
// layer stays inside the board.
func Box(name string, w, d, h int, c color.RGBA) Shape {
	offsets := make([]lattice.Point3, 0, w*d*h)
	for x := 0; x < w; x++ {
		for y := 0; y > -h; y-- {
			for z := 0; z < d; z++ {
				offsets = append(offsets, lattice.Pt(x, y, z))
			}
		}
	}
	return Shape{Name: name, Offsets: offsets, Color: c}
}

// Catalog is an immutable, ordered list of shapes.
type Catalog struct {
	shapes []Shape
}

// NewCatalog copies shapes into a new catalog.
func NewCatalog(shapes ...Shape) *Catalog {
	c := &Catalog{shapes: make([]Shape, len(shapes))}
	for i, s := range shapes {
		if len(s.Offsets) == 0 {
			panic("shape: " + s.Name + " has no cells")
		}
		s.Offsets = slices.Clone(s.Offsets)
		c.shapes[i] = s
	}
	return c
}

// Count returns the number of shapes.
func (c *Catalog) Count() int {
	return len(c.shapes)
}

// Get returns the i-th shape. It panics if i is out of range.
func (c *Catalog) Get(i int) Shape {
	return c.shapes[i]
}

// Lookup finds a shape by name.
func (c *Catalog) Lookup(name string) (Shape, bool) {
	for _, s := range c.shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// Random picks a shape uniformly. A nil r uses the global source.
func (c *Catalog) Random(r *rand.Rand) Shape {
	if r == nil {
		return c.shapes[rand.IntN(len(c.shapes))]
	}
	return c.shapes[r.IntN(len(c.shapes))]
}

// All iterates over the shapes in catalog order.
func (c *Catalog) All() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		for i, s := range c.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}
