package object

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/ringballs/internal/level"
	"github.com/tomz197/ringballs/internal/physics"
)

func newTestRegistry(seed int64) *Registry {
	field := Field{Width: 100, Height: 80}
	ring := physics.Circle{X: 50, Y: 40, Radius: 20}
	return NewRegistry(field, ring, Base{Side: 10, Speed: 128}, rand.New(rand.NewSource(seed)))
}

func square(x, y float64) physics.Square {
	return physics.Square{X: x, Y: y, Side: 10}
}

func TestRegistrySpawnAppends(t *testing.T) {
	r := newTestRegistry(1)

	first := r.Spawn(level.Easy)
	second := r.Spawn(level.Normal)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if r.Front() != first {
		t.Fatal("first spawned obstacle is not at the front")
	}
	if first.Speed != 0.1*128 || second.Speed != 0.15*128 {
		t.Fatalf("speeds = %f, %f", first.Speed, second.Speed)
	}
}

func TestRegistryAdvanceMovesAll(t *testing.T) {
	r := newTestRegistry(1)
	a := &Obstacle{Kind: level.Prize, Square: square(0, 10), Speed: 10, Angle: 0}
	b := &Obstacle{Kind: level.Killer, Square: square(5, 40), Speed: 20, Angle: math.Pi / 2}
	r.Add(a)
	r.Add(b)

	if removed := r.Advance(500 * time.Millisecond); removed != nil {
		t.Fatalf("unexpected removal of %+v", removed)
	}

	if math.Abs(a.Square.X-5) > 1e-9 || math.Abs(a.Square.Y-10) > 1e-9 {
		t.Fatalf("a moved to (%f, %f), want (5, 10)", a.Square.X, a.Square.Y)
	}
	if math.Abs(b.Square.X-5) > 1e-9 || math.Abs(b.Square.Y-50) > 1e-9 {
		t.Fatalf("b moved to (%f, %f), want (5, 50)", b.Square.X, b.Square.Y)
	}
}

func TestRegistryAdvanceRemovesExitedFront(t *testing.T) {
	tests := []struct {
		name   string
		square physics.Square
		exited bool
	}{
		{"past right edge", square(105, 40), true},
		{"right edge on boundary", square(100, 40), false},
		{"above top", square(50, -5), true},
		{"below bottom", square(50, 85), true},
		{"partly visible at bottom", square(50, 84), false},
		{"inside", square(50, 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(1)
			o := &Obstacle{Kind: level.Penalty, Square: tt.square}
			r.Add(o)

			removed := r.Advance(time.Second)
			if tt.exited {
				if removed != o || r.Len() != 0 {
					t.Fatalf("removed = %v, Len() = %d; want the obstacle removed", removed, r.Len())
				}
				return
			}
			if removed != nil || r.Len() != 1 {
				t.Fatalf("removed = %v, Len() = %d; want the obstacle kept", removed, r.Len())
			}
		})
	}
}

func TestRegistryAdvanceChecksOnlyFront(t *testing.T) {
	r := newTestRegistry(1)
	front := &Obstacle{Kind: level.Prize, Square: square(50, 40)}
	gone := &Obstacle{Kind: level.Killer, Square: square(150, 40)}
	r.Add(front)
	r.Add(gone)

	if removed := r.Advance(time.Second); removed != nil {
		t.Fatalf("removed %+v; only the front may be checked", removed)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	r.Remove(front)
	if removed := r.Advance(time.Second); removed != gone {
		t.Fatal("exited obstacle not removed once it reached the front")
	}
}

func TestRegistryAdvanceRemovesOnePerStep(t *testing.T) {
	r := newTestRegistry(1)
	a := &Obstacle{Square: square(200, 40)}
	b := &Obstacle{Square: square(300, 40)}
	r.Add(a)
	r.Add(b)

	if removed := r.Advance(time.Second); removed != a {
		t.Fatal("front obstacle not removed first")
	}
	if r.Len() != 1 || r.Front() != b {
		t.Fatalf("Len() = %d, want 1 with b at the front", r.Len())
	}
}

func TestRegistryRemoveUnknownPanics(t *testing.T) {
	r := newTestRegistry(1)
	o := &Obstacle{Square: square(10, 10)}
	r.Add(o)
	r.Remove(o)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second removal")
		}
	}()
	r.Remove(o)
}

func TestRegistryFindInInsertionOrder(t *testing.T) {
	r := newTestRegistry(1)
	a := &Obstacle{Kind: level.Penalty, Square: square(10, 10)}
	b := &Obstacle{Kind: level.Prize, Square: square(20, 10)}
	c := &Obstacle{Kind: level.Prize, Square: square(30, 10)}
	r.Add(a)
	r.Add(b)
	r.Add(c)

	got := r.Find(func(o *Obstacle) bool { return o.Kind == level.Prize })
	if got != b {
		t.Fatalf("Find returned %+v, want the first prize", got)
	}
	if r.Find(func(o *Obstacle) bool { return o.Kind == level.Killer }) != nil {
		t.Fatal("Find returned an obstacle for a kind that is absent")
	}
}

func TestRegistrySnapshotIsCopy(t *testing.T) {
	r := newTestRegistry(1)
	o := &Obstacle{Kind: level.Prize, Square: square(10, 10)}
	r.Add(o)

	snap := r.Snapshot()
	snap[0].Square.X = 99
	if o.Square.X != 10 {
		t.Fatal("mutating a snapshot changed the registry")
	}
}

func TestFieldHelpers(t *testing.T) {
	f := Field{Width: 30, Height: 40}
	if !f.Valid() || (Field{Width: 0, Height: 1}).Valid() {
		t.Fatal("Valid() mismatch")
	}
	if f.Diagonal() != 50 {
		t.Fatalf("Diagonal() = %f, want 50", f.Diagonal())
	}
	if cx, cy := f.Center(); cx != 15 || cy != 20 {
		t.Fatalf("Center() = (%f, %f)", cx, cy)
	}
}
