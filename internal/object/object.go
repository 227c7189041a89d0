// Package object holds the moving parts of the simulation: the obstacles drifting
// across the field, the registry that owns them and the balls orbiting the ring.
package object

import (
	"math"

	"github.com/tomz197/ringballs/internal/physics"
)

// Field represents the playing field dimensions in logical units.
// The origin is the top-left corner and y grows downwards.
type Field struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (f Field) Valid() bool {
	return f.Width > 0 && f.Height > 0
}

// Center returns the field center.
func (f Field) Center() (float64, float64) {
	return float64(f.Width) / 2, float64(f.Height) / 2
}

// Diagonal returns the length of the field diagonal.
func (f Field) Diagonal() float64 {
	return physics.Length(float64(f.Width), float64(f.Height))
}

// Contains reports whether any part of the square still overlaps the field
// through its right, top or bottom side. Obstacles enter from the left edge,
// so the left side is never used as an exit.
func (f Field) Contains(s physics.Square) bool {
	return s.Left() < float64(f.Width) && s.Bottom() > 0 && s.Top() < float64(f.Height)
}

// Base holds the per-session obstacle parameters every tier multiplier applies to.
type Base struct {
	Side  float64 // Obstacle side before the tier multiplier
	Speed float64 // Obstacle speed before the tier multiplier (units/sec)
}

// BaseFor derives the obstacle base parameters: the side is one ball diameter and
// the speed is one field diagonal per second.
func BaseFor(field Field, balls *BallsField) Base {
	return Base{
		Side:  2 * balls.BallRadius,
		Speed: field.Diagonal(),
	}
}

// degPerRad converts radians to whole-degree space for travel angle draws.
const degPerRad = 180 / math.Pi
