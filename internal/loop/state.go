package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/ringballs/internal/draw"
	"github.com/tomz197/ringballs/internal/game"
	"github.com/tomz197/ringballs/internal/input"
	"github.com/tomz197/ringballs/internal/level"
)

// Phase is the screen the session is on.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseResults
)

// State holds everything the loop needs between frames.
type State struct {
	Phase   Phase
	Running bool
	Sim     *game.Simulation
	Delta   time.Duration

	opts     Options
	stream   *input.Stream
	canvas   *draw.Canvas
	styles   styles
	sessions int

	lastLevel   level.Tier
	banner      string
	bannerUntil time.Time

	clear bool // Screen must be cleared before the next draw
}

// newSession replaces the simulation with a fresh one.
func (s *State) newSession() error {
	if s.stream != nil {
		input.Reset(s.stream)
	}

	seed := s.opts.Seed
	if seed != 0 {
		seed += int64(s.sessions)
	}

	sim, err := game.New(game.Options{
		Field:    s.opts.Field,
		Seed:     seed,
		Logger:   s.opts.Logger,
		Reporter: s.opts.Reporter,
	})
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}

	s.sessions++
	s.Sim = sim
	s.Phase = PhasePlaying
	s.lastLevel = sim.State.Level
	s.banner = ""
	s.clear = true
	s.opts.Logger.Info("session started", "session", s.sessions)
	return nil
}

// update advances the current screen by one frame.
func (s *State) update(in input.Input, now time.Time) error {
	switch s.Phase {
	case PhasePlaying:
		s.Sim.Step(s.Delta, game.Input{
			Escape:  in.IsKeyPressed(input.KeyEscape),
			Reverse: in.IsKeyPressed(input.KeyReverse),
		})

		if tier := s.Sim.State.Level; tier != s.lastLevel {
			s.lastLevel = tier
			s.banner = fmt.Sprintf("LEVEL UP: %s", tier)
			s.bannerUntil = now.Add(bannerDuration)
		}

		if s.Sim.QuitRequested() {
			res := s.Sim.Results()
			s.opts.Logger.Info("session ended", "session", s.sessions, "reason", res.Reason, "score", res.Score)
			s.Phase = PhaseResults
			s.clear = true
		}
	case PhaseResults:
		if in.IsKeyPressed(input.KeyEnter) {
			if err := s.newSession(); err != nil {
				return err
			}
		}
	}

	if in.IsKeyPressed(input.KeyQuit) {
		s.Running = false
	}
	return nil
}
