package object

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/tomz197/ringballs/internal/level"
	"github.com/tomz197/ringballs/internal/physics"
)

// Registry owns the live obstacles in insertion order.
// The oldest obstacle is at the front.
type Registry struct {
	field     Field
	ring      physics.Circle
	base      Base
	rng       *rand.Rand
	obstacles []*Obstacle
}

// NewRegistry creates an empty registry for the given field and ring.
func NewRegistry(field Field, ring physics.Circle, base Base, rng *rand.Rand) *Registry {
	return &Registry{
		field:     field,
		ring:      ring,
		base:      base,
		rng:       rng,
		obstacles: []*Obstacle{},
	}
}

// Spawn creates a new obstacle for the tier and appends it to the registry.
func (r *Registry) Spawn(tier level.Tier) *Obstacle {
	o := NewObstacleAtEdge(r.rng, tier, r.field, r.ring, r.base)
	r.Add(o)
	return o
}

// Add appends an obstacle to the back of the registry.
func (r *Registry) Add(o *Obstacle) {
	r.obstacles = append(r.obstacles, o)
}

// Advance moves every obstacle, then removes the front obstacle if it has left
// the field. Only the front is checked; obstacles leaving out of insertion order
// linger until they reach the front. Returns the removed obstacle, if any.
func (r *Registry) Advance(dt time.Duration) *Obstacle {
	for _, o := range r.obstacles {
		o.Update(dt)
	}

	front := r.Front()
	if front == nil || !front.Exited(r.field) {
		return nil
	}
	r.Remove(front)
	return front
}

// Remove deletes the obstacle from the registry.
// Removing an obstacle the registry does not hold is a programming error and panics.
func (r *Registry) Remove(o *Obstacle) {
	i := slices.Index(r.obstacles, o)
	if i < 0 {
		panic(fmt.Sprintf("object: remove of unknown obstacle %p", o))
	}
	r.obstacles[i] = nil
	r.obstacles = slices.Delete(r.obstacles, i, i+1)
}

// Front returns the oldest surviving obstacle, or nil if the registry is empty.
func (r *Registry) Front() *Obstacle {
	if len(r.obstacles) == 0 {
		return nil
	}
	return r.obstacles[0]
}

// Find returns the first obstacle, in insertion order, for which fn returns true.
func (r *Registry) Find(fn func(o *Obstacle) bool) *Obstacle {
	for _, o := range r.obstacles {
		if fn(o) {
			return o
		}
	}
	return nil
}

// Len returns the number of live obstacles.
func (r *Registry) Len() int {
	return len(r.obstacles)
}

// Snapshot returns copies of the live obstacles in insertion order.
// Mutating the copies does not affect the registry.
func (r *Registry) Snapshot() []Obstacle {
	out := make([]Obstacle, len(r.obstacles))
	for i, o := range r.obstacles {
		out[i] = *o
	}
	return out
}
