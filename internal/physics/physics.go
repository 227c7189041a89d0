// Package physics provides the shapes and intersection tests used by the simulation.
package physics

import "math"

// Circle is a disk given by its center and radius.
type Circle struct {
	X, Y   float64 // Center
	Radius float64
}

// Square is an axis-aligned square given by its center and side length.
type Square struct {
	X, Y float64 // Center
	Side float64
}

// Left returns the x-coordinate of the left edge.
func (s Square) Left() float64 {
	return s.X - s.Side/2
}

// Right returns the x-coordinate of the right edge.
func (s Square) Right() float64 {
	return s.X + s.Side/2
}

// Top returns the y-coordinate of the top edge (smallest y).
func (s Square) Top() float64 {
	return s.Y - s.Side/2
}

// Bottom returns the y-coordinate of the bottom edge (largest y).
func (s Square) Bottom() float64 {
	return s.Y + s.Side/2
}

// Length returns the Euclidean norm of the vector (dx, dy).
func Length(dx, dy float64) float64 {
	return math.Sqrt(LengthSquared(dx, dy))
}

// LengthSquared returns the squared norm of the vector (dx, dy).
func LengthSquared(dx, dy float64) float64 {
	return dx*dx + dy*dy
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return Length(x2-x1, y2-y1)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	return LengthSquared(x2-x1, y2-y1)
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// CircleSquareIntersect reports whether the disk of c overlaps the closed area of s.
// Touching counts as intersecting.
//
// The circle center is classified against the square's x and y spans. Outside a span
// the nearest point of the square lies on the corresponding edge; inside it the
// offset on that axis is zero. The squared distance to that nearest point is then
// compared against the squared radius.
func CircleSquareIntersect(c Circle, s Square) bool {
	var dx, dy float64

	switch {
	case c.X < s.Left():
		dx = s.Left() - c.X
	case c.X > s.Right():
		dx = c.X - s.Right()
	}

	switch {
	case c.Y < s.Top():
		dy = s.Top() - c.Y
	case c.Y > s.Bottom():
		dy = c.Y - s.Bottom()
	}

	return LengthSquared(dx, dy) <= c.Radius*c.Radius
}
