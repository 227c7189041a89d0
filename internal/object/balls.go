package object

import (
	"math"
	"time"

	"github.com/tomz197/ringballs/internal/physics"
)

// BaseAngularSpeed is the ball angular speed before the tier multiplier (rad/sec).
const BaseAngularSpeed = math.Pi

// BallsField is the ring and the two balls orbiting on it.
// The balls share one angle and are always diametrically opposite.
type BallsField struct {
	Ring       physics.Circle
	BallRadius float64
	Angle      float64 // In (-π, π]
	AnglVel    float64 // Radians per second; > 0 = counterclockwise on screen
}

// NewBallsField centers the ring on the field with a radius of a quarter of the
// shorter field side. Balls are a sixth of the ring radius.
func NewBallsField(field Field, anglVel float64) *BallsField {
	cx, cy := field.Center()
	ringRadius := 0.25 * float64(min(field.Width, field.Height))

	return &BallsField{
		Ring: physics.Circle{
			X:      cx,
			Y:      cy,
			Radius: ringRadius,
		},
		BallRadius: ringRadius / 6,
		AnglVel:    anglVel,
	}
}

// Rotate advances the shared angle and wraps it back into (-π, π].
func (b *BallsField) Rotate(dt time.Duration) {
	b.Angle = NormalizeAngle(b.Angle + b.AnglVel*dt.Seconds())
}

// Reverse flips the direction of rotation.
func (b *BallsField) Reverse() {
	b.AnglVel = -b.AnglVel
}

// Balls returns the two ball circles. The second is the reflection of the first
// through the ring center.
func (b *BallsField) Balls() (physics.Circle, physics.Circle) {
	cos := b.Ring.Radius * math.Cos(b.Angle)
	sin := b.Ring.Radius * math.Sin(b.Angle)

	ball1 := physics.Circle{X: b.Ring.X - cos, Y: b.Ring.Y + sin, Radius: b.BallRadius}
	ball2 := physics.Circle{X: b.Ring.X + cos, Y: b.Ring.Y - sin, Radius: b.BallRadius}
	return ball1, ball2
}

// NormalizeAngle maps any finite angle into (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	a -= math.Pi
	// Rounding can land a value just above -π on -π itself.
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
