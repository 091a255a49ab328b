package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/plus3/cubefall/lattice"
)

//go:generate go tool stringer -type=RotationPolicy -trimprefix=Rotate

// RotationPolicy decides what happens when a rotation lands in an invalid
// placement.
type RotationPolicy int

const (
	// RotateRevert undoes the blocked rotation with one opposite turn.
	RotateRevert RotationPolicy = iota
	// RotateCycle keeps turning in the same direction until an orientation
	// fits, giving up after maxCycleTurns and restoring the starting
	// orientation.
	RotateCycle
)

// ParseRotationPolicy accepts "revert" or "cycle", in any case.
func ParseRotationPolicy(s string) (RotationPolicy, error) {
	for _, p := range []RotationPolicy{RotateRevert, RotateCycle} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown rotation policy %q", s)
}

// Config holds the fixed parameters of a session.
type Config struct {
	Width, Depth, Height int

	// Spawn is the anchor new pieces appear at.
	Spawn lattice.Point3

	// Gravity is the tick cadence used by loop.GravitySystem.
	Gravity time.Duration

	// RevealStep is how long each settled cell takes to reappear after a
	// layer clear. Zero disables the reveal and gravity never pauses for it.
	RevealStep time.Duration

	Rotation RotationPolicy

	// DropCommits freezes the piece as part of a hard drop instead of
	// waiting for the next gravity tick.
	DropCommits bool

	// Seed drives shape selection. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the reference 5x5x13 setup.
func DefaultConfig() Config {
	return Config{
		Width:      5,
		Depth:      5,
		Height:     13,
		Spawn:      lattice.Pt(0, 12, 0),
		Gravity:    750 * time.Millisecond,
		RevealStep: 100 * time.Millisecond,
		Rotation:   RotateRevert,
	}
}

// WithSize returns c resized to w x d x h with the spawn anchor moved to
// the top-left-back cell.
func (c Config) WithSize(w, d, h int) Config {
	c.Width, c.Depth, c.Height = w, d, h
	c.Spawn = lattice.Pt(0, h-1, 0)
	return c
}

var (
	ErrDimensions = errors.New("board dimensions must be positive")
	ErrSpawn      = errors.New("spawn anchor outside the board")
	ErrInterval   = errors.New("intervals must be positive")
)

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Depth <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%dx%d", ErrDimensions, c.Width, c.Depth, c.Height)
	}
	s := c.Spawn
	if s.X < 0 || s.X >= c.Width || s.Y < 0 || s.Y >= c.Height || s.Z < 0 || s.Z >= c.Depth {
		return fmt.Errorf("%w: %s on %dx%dx%d", ErrSpawn, s, c.Width, c.Depth, c.Height)
	}
	if c.Gravity <= 0 || c.RevealStep < 0 {
		return fmt.Errorf("%w: gravity %s, reveal %s", ErrInterval, c.Gravity, c.RevealStep)
	}
	if c.Rotation != RotateRevert && c.Rotation != RotateCycle {
		return fmt.Errorf("unknown rotation policy %s", c.Rotation)
	}
	return nil
}
