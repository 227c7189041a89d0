package game

import (
	"time"

	"github.com/tomz197/ringballs/internal/level"
)

// Input is the externally sampled input for one step.
type Input struct {
	Escape  bool // End the session now
	Reverse bool // Flip the balls' direction of rotation
}

// Step advances the simulation by dt. It is a no-op once the session is over.
//
// Order within a step: level change, escape, reversal, spawn timer, motion,
// then at most one collision.
func (s *Simulation) Step(dt time.Duration, in Input) {
	if s.over {
		return
	}

	if CheckLevelAdvance(s.State) {
		AdvanceLevel(&s.State, s.balls)
		s.logger.Debug("level changed", "level", s.State.Level, "anglVel", s.balls.AnglVel)
		s.reporter.ReportLevel(s.State.Level)
	}

	if in.Escape {
		s.finish(EndEscape)
		return
	}

	if in.Reverse {
		s.balls.Reverse()
		s.logger.Debug("reverse balls rotation", "anglVel", s.balls.AnglVel)
	}

	s.State.SpawnTimer += dt
	if s.State.SpawnTimer >= level.Lookup(s.State.Level).SpawnInterval {
		s.State.SpawnTimer = 0
		o := s.registry.Spawn(s.State.Level)
		s.logger.Debug("obstacle spawned", "kind", o.Kind, "y", o.Square.Y, "angle", o.Angle)
	}

	s.balls.Rotate(dt)
	if removed := s.registry.Advance(dt); removed != nil {
		s.logger.Debug("obstacle left the field", "kind", removed.Kind)
	}

	hit := FindCollision(s.registry, s.balls)
	if hit == nil {
		return
	}

	s.logger.Debug("collision", "kind", hit.Kind)
	if over, reason := Resolve(s.registry, hit, &s.State); over {
		s.finish(reason)
		return
	}
	s.reporter.ReportScore(s.State.Score)
}
