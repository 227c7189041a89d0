package object

import (
	"math"
	"time"

	"github.com/tomz197/ringballs/internal/level"
	"github.com/tomz197/ringballs/internal/physics"
)

// Obstacle is a square drifting in a straight line across the field.
type Obstacle struct {
	Kind   level.Kind
	Square physics.Square // Position (center) and size
	Speed  float64        // Units per second
	Angle  float64        // Travel direction in radians (0 = right, y grows downwards)
}

// Update moves the obstacle along its travel direction.
func (o *Obstacle) Update(dt time.Duration) {
	secs := dt.Seconds()
	o.Square.X += o.Speed * math.Cos(o.Angle) * secs
	o.Square.Y += o.Speed * math.Sin(o.Angle) * secs
}

// Exited reports whether the obstacle has fully left the field.
func (o *Obstacle) Exited(field Field) bool {
	return !field.Contains(o.Square)
}
