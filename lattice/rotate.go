package lattice

import "math"

//go:generate go tool stringer -type=Axis -trimprefix=Axis

// Axis names one of the three rotation axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// RotateX turns p a quarter turn about the X axis. A positive dir maps
// (x, y, z) to (x, -z, y).
func RotateX(p Point3, dir int) Point3 {
	sin, cos := quarter(dir)
	y := float64(p.Y)*cos - float64(p.Z)*sin
	z := float64(p.Y)*sin + float64(p.Z)*cos
	return Point3{X: p.X, Y: round(y), Z: round(z)}
}

// RotateY turns p a quarter turn about the Y axis. A positive dir maps
// (x, y, z) to (z, y, -x).
func RotateY(p Point3, dir int) Point3 {
	sin, cos := quarter(dir)
	x := float64(p.X)*cos + float64(p.Z)*sin
	z := -float64(p.X)*sin + float64(p.Z)*cos
	return Point3{X: round(x), Y: p.Y, Z: round(z)}
}

// RotateZ turns p a quarter turn about the Z axis. A positive dir maps
// (x, y, z) to (-y, x, z).
func RotateZ(p Point3, dir int) Point3 {
	sin, cos := quarter(dir)
	x := float64(p.X)*cos - float64(p.Y)*sin
	y := float64(p.X)*sin + float64(p.Y)*cos
	return Point3{X: round(x), Y: round(y), Z: p.Z}
}

// Rotate dispatches to RotateX, RotateY or RotateZ.
func Rotate(p Point3, axis Axis, dir int) Point3 {
	switch axis {
	case AxisX:
		return RotateX(p, dir)
	case AxisY:
		return RotateY(p, dir)
	case AxisZ:
		return RotateZ(p, dir)
	}
	panic("lattice: unknown axis " + axis.String())
}

// quarter returns sin and cos of dir*pi/2, with dir reduced to its sign.
func quarter(dir int) (float64, float64) {
	theta := 0.0
	switch {
	case dir > 0:
		theta = math.Pi / 2
	case dir < 0:
		theta = -math.Pi / 2
	}
	return math.Sin(theta), math.Cos(theta)
}

// round snaps the residue of the trig rotation back onto the lattice.
func round(v float64) int {
	return int(math.Round(v))
}
