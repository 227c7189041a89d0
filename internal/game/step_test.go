package game

import (
	"io"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/ringballs/internal/level"
	"github.com/tomz197/ringballs/internal/object"
)

const tick = time.Millisecond

func TestStepLevelAdvanceScenario(t *testing.T) {
	s, rep := newTestSimulation(t, 1)
	s.State.Score = 2

	onBall(s, level.Prize)
	s.Step(tick, Input{})

	if s.State.Score != 3 || s.State.Level != level.Easy {
		t.Fatalf("after prize: score = %d level = %s", s.State.Score, s.State.Level)
	}
	if got := rep.scores[len(rep.scores)-1]; got != 3 {
		t.Fatalf("last reported score = %d, want 3", got)
	}

	s.Step(tick, Input{})
	if s.State.Level != level.Normal {
		t.Fatalf("level = %s, want normal", s.State.Level)
	}
	if want := 0.4 * math.Pi; s.balls.AnglVel != want {
		t.Fatalf("anglVel = %f, want %f", s.balls.AnglVel, want)
	}
	if len(rep.levels) != 1 || rep.levels[0] != level.Normal {
		t.Fatalf("level reports = %v", rep.levels)
	}
}

func TestStepSkippingThresholdNeverAdvances(t *testing.T) {
	s, _ := newTestSimulation(t, 1)
	s.State.Level = level.Normal
	s.State.Score = 8

	onBall(s, level.Prize)
	s.Step(tick, Input{})
	s.Step(tick, Input{})

	if s.State.Score != 10 || s.State.Level != level.Normal {
		t.Fatalf("score = %d level = %s; want 10 and still normal", s.State.Score, s.State.Level)
	}
}

func TestStepEscape(t *testing.T) {
	quits := 0
	rep := &recordingReporter{}
	s, err := New(Options{
		Field:    object.Field{Width: 120, Height: 80},
		Rand:     rand.New(rand.NewSource(1)),
		Logger:   log.New(io.Discard),
		Reporter: rep,
		Quitter:  QuitFunc(func() { quits++ }),
	})
	if err != nil {
		t.Fatal(err)
	}

	s.Step(time.Second, Input{Escape: true, Reverse: true})

	if !s.Over() || s.Reason() != EndEscape || !s.QuitRequested() || quits != 1 {
		t.Fatalf("over=%v reason=%s quit=%v quits=%d", s.Over(), s.Reason(), s.QuitRequested(), quits)
	}
	if len(rep.results) != 1 || rep.results[0].Reason != EndEscape || rep.results[0].Level != level.Easy {
		t.Fatalf("results = %+v", rep.results)
	}
	if s.State.SpawnTimer != 0 || s.balls.AnglVel < 0 || s.balls.Angle != 0 {
		t.Fatal("escape did not skip the rest of the step")
	}

	s.Step(time.Second, Input{})
	if s.State.SpawnTimer != 0 || quits != 1 || len(rep.results) != 1 {
		t.Fatal("step after the session ended changed state")
	}
}

func TestStepReverse(t *testing.T) {
	s, _ := newTestSimulation(t, 1)
	before := s.balls.AnglVel

	s.Step(tick, Input{Reverse: true})
	if s.balls.AnglVel != -before {
		t.Fatalf("anglVel = %f, want %f", s.balls.AnglVel, -before)
	}
	if s.balls.Angle >= 0 {
		t.Fatalf("angle = %f; reversed balls should rotate clockwise", s.balls.Angle)
	}
}

func TestStepSpawnTimer(t *testing.T) {
	s, _ := newTestSimulation(t, 1)

	s.Step(5999*time.Millisecond, Input{})
	if s.registry.Len() != 0 || s.State.SpawnTimer != 5999*time.Millisecond {
		t.Fatalf("len = %d timer = %v before the interval", s.registry.Len(), s.State.SpawnTimer)
	}

	s.Step(tick, Input{})
	if s.registry.Len() != 1 || s.State.SpawnTimer != 0 {
		t.Fatalf("len = %d timer = %v after the interval", s.registry.Len(), s.State.SpawnTimer)
	}
	if x := s.registry.Front().Square.X; x < 0 || x > 0.1 {
		t.Fatalf("spawned obstacle at x = %f, want near the left edge", x)
	}
}

func TestStepKiller(t *testing.T) {
	s, rep := newTestSimulation(t, 1)
	s.State.Score = 2
	killer := onBall(s, level.Killer)

	s.Step(tick, Input{})

	if !s.Over() || s.Reason() != EndKiller || !s.QuitRequested() {
		t.Fatalf("over=%v reason=%s", s.Over(), s.Reason())
	}
	if s.State.Score != 2 {
		t.Fatalf("killer changed the score to %d", s.State.Score)
	}
	if s.registry.Front() != killer {
		t.Fatal("killer removed from the registry")
	}
	if len(rep.results) != 1 || rep.results[0].Score != 2 {
		t.Fatalf("results = %+v", rep.results)
	}
}

func TestStepPenaltyBelowZero(t *testing.T) {
	s, rep := newTestSimulation(t, 1)
	onBall(s, level.Penalty)

	s.Step(tick, Input{})

	if !s.Over() || s.Reason() != EndNegativeScore || s.State.Score != -1 {
		t.Fatalf("over=%v reason=%s score=%d", s.Over(), s.Reason(), s.State.Score)
	}
	if len(rep.results) != 1 || rep.results[0].Hits[level.Penalty] != 1 {
		t.Fatalf("results = %+v", rep.results)
	}
}

func TestStepResolvesOneCollisionPerStep(t *testing.T) {
	s, _ := newTestSimulation(t, 1)
	onBall(s, level.Prize)
	onBall(s, level.Prize)

	s.Step(tick, Input{})
	if s.State.Score != 1 || s.registry.Len() != 1 {
		t.Fatalf("score = %d len = %d after first step", s.State.Score, s.registry.Len())
	}

	s.Step(tick, Input{})
	if s.State.Score != 2 || s.registry.Len() != 0 {
		t.Fatalf("score = %d len = %d after second step", s.State.Score, s.registry.Len())
	}
}

func TestStepIsDeterministic(t *testing.T) {
	a, _ := newTestSimulation(t, 77)
	b, _ := newTestSimulation(t, 77)

	for i := 0; i < 3000; i++ {
		in := Input{Reverse: i%250 == 0}
		a.Step(16*time.Millisecond, in)
		b.Step(16*time.Millisecond, in)
	}

	if a.State != b.State || a.Over() != b.Over() {
		t.Fatalf("states diverged: %+v vs %+v", a.State, b.State)
	}
	oa, ob := a.Obstacles(), b.Obstacles()
	if len(oa) != len(ob) {
		t.Fatalf("obstacle counts diverged: %d vs %d", len(oa), len(ob))
	}
	for i := range oa {
		if oa[i] != ob[i] {
			t.Fatalf("obstacle %d diverged: %+v vs %+v", i, oa[i], ob[i])
		}
	}
}

func TestStepLongRunInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s, _ := newTestSimulation(t, seed)
		rng := rand.New(rand.NewSource(seed))

		for i := 0; i < 20000 && !s.Over(); i++ {
			s.Step(time.Duration(5+rng.Intn(30))*time.Millisecond, Input{Reverse: rng.Intn(60) == 0})

			angle := s.balls.Angle
			if angle <= -math.Pi || angle > math.Pi {
				t.Fatalf("seed %d step %d: angle %f outside (-π, π]", seed, i, angle)
			}
			if s.State.Score < 0 && !s.Over() {
				t.Fatalf("seed %d: negative score %d without game over", seed, s.State.Score)
			}
		}
	}
}
