package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/ringballs/internal/level"
	"github.com/tomz197/ringballs/internal/physics"
)

// NewObstacleAtEdge creates an obstacle of a random kind on the left field edge,
// sized and timed for the given tier and aimed so that its path crosses the ring.
func NewObstacleAtEdge(rng *rand.Rand, tier level.Tier, field Field, ring physics.Circle, base Base) *Obstacle {
	cfg := level.Lookup(tier)

	kind := level.Kinds[rng.Intn(level.KindCount)]
	x := 0.0
	y := float64(rng.Intn(field.Height))

	return &Obstacle{
		Kind: kind,
		Square: physics.Square{
			X:    x,
			Y:    y,
			Side: cfg.SideCoef[kind] * base.Side,
		},
		Speed: cfg.SpeedCoef * base.Speed,
		Angle: TravelAngle(rng, x, y, ring),
	}
}

// TravelAngleRange returns the interval of headings from (x, y) whose rays cross
// the ring's disk. The bounds are the two tangent lines: the direction to the ring
// center plus or minus the half-angle the ring subtends.
//
// A point on or inside the ring sees the disk in every direction; the range is then
// clamped to a half-plane facing the center so that no asin domain error can occur.
func TravelAngleRange(x, y float64, ring physics.Circle) (lo, hi float64) {
	dx := ring.X - x
	dy := ring.Y - y
	toCenter := math.Atan2(dy, dx)

	if physics.PointInCircle(x, y, ring.X, ring.Y, ring.Radius) {
		return toCenter - math.Pi/2, toCenter + math.Pi/2
	}

	half := math.Asin(ring.Radius / physics.Distance(x, y, ring.X, ring.Y))
	return toCenter - half, toCenter + half
}

// TravelAngle draws a heading in whole degrees, uniformly within the tangent range
// from (x, y) to the ring. When the range holds no whole degree the middle of the
// range is used.
func TravelAngle(rng *rand.Rand, x, y float64, ring physics.Circle) float64 {
	lo, hi := TravelAngleRange(x, y, ring)

	loDeg := int(math.Ceil(lo * degPerRad))
	hiDeg := int(math.Floor(hi * degPerRad))
	if hiDeg < loDeg {
		return (lo + hi) / 2
	}

	deg := loDeg + rng.Intn(hiDeg-loDeg+1)
	return float64(deg) / degPerRad
}
