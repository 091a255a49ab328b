package shape

import (
	"image/color"

	"github.com/plus3/cubefall/lattice"
)

var (
	Purple     = color.RGBA{204, 0, 204, 255}
	Blue       = color.RGBA{0, 0, 204, 255}
	Green      = color.RGBA{0, 204, 0, 255}
	Orange     = color.RGBA{230, 77, 26, 255}
	Red        = color.RGBA{204, 0, 0, 255}
	DarkYellow = color.RGBA{230, 204, 26, 255}
	Teal       = color.RGBA{26, 179, 204, 255}
	Pink       = color.RGBA{230, 128, 179, 255}
)

var defaultCatalog = NewCatalog(
	Box("cube", 1, 1, 1, Purple),
	Box("bar2", 1, 1, 2, Blue),
	Box("bar3", 1, 1, 3, Green),
	Box("bar4", 1, 1, 4, Orange),
	Box("square", 2, 2, 1, Red),
	Box("tower", 2, 2, 2, DarkYellow),
	Box("pillar", 2, 2, 3, Pink),
	Shape{
		Name: "ell",
		Offsets: []lattice.Point3{
			lattice.Pt(0, 0, 0),
			lattice.Pt(0, -1, 0),
			lattice.Pt(0, -2, 0),
			lattice.Pt(1, -2, 0),
		},
		Color: Teal,
	},
)

// Default returns the shared game catalog.
func Default() *Catalog {
	return defaultCatalog
}
