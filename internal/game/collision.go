package game

import (
	"github.com/tomz197/ringballs/internal/level"
	"github.com/tomz197/ringballs/internal/object"
	"github.com/tomz197/ringballs/internal/physics"
)

// FindCollision returns the first obstacle, in insertion order, that overlaps
// either ball, or nil.
func FindCollision(registry *object.Registry, balls *object.BallsField) *object.Obstacle {
	ball1, ball2 := balls.Balls()
	return registry.Find(func(o *object.Obstacle) bool {
		return physics.CircleSquareIntersect(ball1, o.Square) ||
			physics.CircleSquareIntersect(ball2, o.Square)
	})
}

// Resolve applies a collision with o to the state.
//
// A killer ends the session at once; it stays in the registry and is not counted.
// Any other kind adds its tier score, is counted and removed, and ends the session
// if the score drops below zero.
func Resolve(registry *object.Registry, o *object.Obstacle, state *GameState) (over bool, reason EndReason) {
	if o.Kind == level.Killer {
		return true, EndKiller
	}

	state.Score += level.Lookup(state.Level).Points[o.Kind]
	state.Hits[o.Kind]++
	registry.Remove(o)

	if state.Score < 0 {
		return true, EndNegativeScore
	}
	return false, EndNone
}

// CheckLevelAdvance reports whether the score sits exactly on the current tier's
// threshold. Scores that jump past the threshold never advance.
func CheckLevelAdvance(state GameState) bool {
	cfg := level.Lookup(state.Level)
	return !cfg.Terminal && state.Score == cfg.AdvanceScore
}

// AdvanceLevel moves to the next tier and resets the ball angular velocity to
// that tier's speed. The terminal tier is left unchanged.
func AdvanceLevel(state *GameState, balls *object.BallsField) {
	next, ok := level.Next(state.Level)
	if !ok {
		return
	}
	state.Level = next
	balls.AnglVel = ballSpeed(next)
}
