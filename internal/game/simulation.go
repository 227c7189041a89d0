// Package game runs one playthrough: it owns the game state, the obstacle registry
// and the balls, and advances them one step at a time.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/ringballs/internal/level"
	"github.com/tomz197/ringballs/internal/object"
	"github.com/tomz197/ringballs/internal/physics"
)

// ErrInvalidField is returned by New when a field dimension is not positive.
var ErrInvalidField = errors.New("invalid field dimensions")

// GameState is the per-session progress. It is reset only by creating a new Simulation.
type GameState struct {
	Level      level.Tier
	Score      int
	Hits       [level.KindCount]int // Obstacles collected per kind
	SpawnTimer time.Duration        // Time since the last spawn
}

// Options configures a Simulation.
type Options struct {
	Field    object.Field
	Seed     int64      // Used when Rand is nil; 0 seeds from the clock
	Rand     *rand.Rand // Source for kinds, spawn positions and headings
	Logger   *log.Logger
	Reporter Reporter      // Defaults to a LogReporter on Logger
	Quitter  QuitRequester // Optional; QuitRequested can be polled instead
	Palette  *Palette      // Defaults to DefaultPalette
}

// Simulation is a single playthrough. It is not safe for concurrent use;
// the caller drives it one Step per frame.
type Simulation struct {
	State GameState

	field    object.Field
	balls    *object.BallsField
	registry *object.Registry
	rng      *rand.Rand
	logger   *log.Logger
	reporter Reporter
	quitter  QuitRequester
	palette  Palette

	over          bool
	reason        EndReason
	quitRequested bool
}

// New validates the options and sets up a fresh session at the first tier.
func New(opts Options) (*Simulation, error) {
	if !opts.Field.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidField, opts.Field.Width, opts.Field.Height)
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = LogReporter{Logger: logger}
	}

	quitter := opts.Quitter
	if quitter == nil {
		quitter = nopQuitter{}
	}

	palette := DefaultPalette
	if opts.Palette != nil {
		palette = *opts.Palette
	}

	state := GameState{Level: level.Easy}
	balls := object.NewBallsField(opts.Field, ballSpeed(state.Level))
	registry := object.NewRegistry(opts.Field, balls.Ring, object.BaseFor(opts.Field, balls), rng)

	s := &Simulation{
		State:    state,
		field:    opts.Field,
		balls:    balls,
		registry: registry,
		rng:      rng,
		logger:   logger,
		reporter: reporter,
		quitter:  quitter,
		palette:  palette,
	}

	logger.Debug("simulation initialized",
		"width", opts.Field.Width,
		"height", opts.Field.Height,
		"ring", balls.Ring.Radius,
		"ball", balls.BallRadius,
	)
	reporter.ReportScore(s.State.Score)

	return s, nil
}

// ballSpeed returns the ball angular velocity for a tier.
func ballSpeed(tier level.Tier) float64 {
	return level.Lookup(tier).BallSpeedCoef * object.BaseAngularSpeed
}

// Field returns the field dimensions.
func (s *Simulation) Field() object.Field {
	return s.field
}

// Balls returns a copy of the balls field.
func (s *Simulation) Balls() object.BallsField {
	return *s.balls
}

// Obstacles returns copies of the live obstacles, oldest first.
func (s *Simulation) Obstacles() []object.Obstacle {
	return s.registry.Snapshot()
}

// Over reports whether the session has ended.
func (s *Simulation) Over() bool {
	return s.over
}

// Reason returns why the session ended, or EndNone while playing.
func (s *Simulation) Reason() EndReason {
	return s.reason
}

// QuitRequested reports whether the simulation has asked the driver to stop.
func (s *Simulation) QuitRequested() bool {
	return s.quitRequested
}

// Results returns the current results.
func (s *Simulation) Results() Results {
	return Results{
		Level:  s.State.Level,
		Score:  s.State.Score,
		Hits:   s.State.Hits,
		Reason: s.reason,
	}
}

// ObstacleView is an obstacle as a renderer sees it.
type ObstacleView struct {
	Square physics.Square
	Kind   level.Kind
	Color  colorful.Color
}

// DrawState is a read-only copy of everything a renderer needs for one frame.
type DrawState struct {
	Background colorful.Color
	Ring       physics.Circle
	RingColor  colorful.Color
	Balls      [2]physics.Circle
	BallColor  colorful.Color
	Obstacles  []ObstacleView // Oldest first
}

// DrawState returns the current draw state.
func (s *Simulation) DrawState() DrawState {
	ball1, ball2 := s.balls.Balls()

	obstacles := s.registry.Snapshot()
	views := make([]ObstacleView, len(obstacles))
	for i, o := range obstacles {
		views[i] = ObstacleView{
			Square: o.Square,
			Kind:   o.Kind,
			Color:  s.palette.Obstacles[o.Kind],
		}
	}

	return DrawState{
		Background: s.palette.Background,
		Ring:       s.balls.Ring,
		RingColor:  s.palette.Ring,
		Balls:      [2]physics.Circle{ball1, ball2},
		BallColor:  s.palette.Balls,
		Obstacles:  views,
	}
}

// finish ends the session: it reports the results and requests a quit.
func (s *Simulation) finish(reason EndReason) {
	s.over = true
	s.reason = reason
	s.logger.Debug("game over", "reason", reason, "score", s.State.Score, "level", s.State.Level)
	s.reporter.ReportResults(s.Results())
	s.quitRequested = true
	s.quitter.RequestQuit()
}
