package tri

import (
	"time"

	"github.com/google/uuid"
)

// Registration records one Modify call on a rail: a unique id and the UTC
// time the modifier joined the chain. The modifier itself stays private to
// the list.
type Registration struct {
	id        uuid.UUID
	createdAt time.Time
}

func (r Registration) Id() uuid.UUID {
	return r.id
}

func (r Registration) CreatedAt() time.Time {
	return r.createdAt
}

// registration pairs a registered modifier with its metadata.
type registration[T any] struct {
	fn   Modifier[T]
	meta Registration
}

// chain holds one element type's modifiers in registration order, together
// with a fused composition of the whole chain. Fusing happens on the read
// path; add and reset only invalidate, so reads always observe the chain as
// registered at the moment they run.
type chain[T any] struct {
	regs  []registration[T]
	fused Modifier[T]
}

func (c *chain[T]) add(f Modifier[T]) {
	c.regs = append(c.regs, registration[T]{
		fn: f,
		meta: Registration{
			id:        uuid.New(),
			createdAt: time.Now().UTC(),
		},
	})
	c.fused = nil
}

func (c *chain[T]) reset() {
	c.regs = nil
	c.fused = nil
}

// apply runs v through the chain: the earliest registered modifier first,
// the most recent last.
func (c *chain[T]) apply(v T) T {
	if c.fused == nil {
		c.fused = c.fuse()
	}
	return c.fused(v)
}

func (c *chain[T]) fuse() Modifier[T] {
	fused := Modifier[T](Identity[T])
	for _, r := range c.regs {
		fused = Compose(r.fn, fused)
	}
	return fused
}

// history returns a copy of the chain's registration metadata in order.
func (c *chain[T]) history() []Registration {
	out := make([]Registration, len(c.regs))
	for i, r := range c.regs {
		out[i] = r.meta
	}
	return out
}
