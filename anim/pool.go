package anim

// Particle is one slot in a Pool: position, velocity, a remaining-lifetime
// counter, and a face-defined size field.
type Particle struct {
	X, Y   int
	VX, VY int
	Size   int
	Life   int
	Active bool
}

// Pool is a fixed-capacity particle arena with round-robin slot reuse. No
// slot is ever allocated after construction; retriggering an effect
// reinitializes the oldest slots in place.
type Pool struct {
	parts  []Particle
	cursor int
}

// NewPool creates a pool with the given capacity.
func NewPool(capacity int) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool{parts: make([]Particle, capacity)}
}

// Spawn activates up to n free slots, initializing each through init, and
// returns how many were activated. A burst into a partially occupied pool
// activates fewer than n; it never exceeds capacity and never steals a
// live slot. The cursor rotates the starting slot so reuse is round-robin.
func (p *Pool) Spawn(n int, init func(*Particle)) int {
	if n > len(p.parts) {
		n = len(p.parts)
	}
	spawned := 0
	for i := 0; i < len(p.parts) && spawned < n; i++ {
		slot := &p.parts[(p.cursor+i)%len(p.parts)]
		if slot.Active {
			continue
		}
		*slot = Particle{}
		init(slot)
		slot.Active = true
		spawned++
	}
	p.cursor = (p.cursor + spawned) % len(p.parts)
	return spawned
}

// Step advances every active slot one tick: position integrates velocity,
// velocity integrates gravity, lifetime counts down. A slot deactivates
// when its lifetime expires or inBounds rejects it. inBounds may be nil.
func (p *Pool) Step(gravity int, inBounds func(*Particle) bool) {
	for i := range p.parts {
		part := &p.parts[i]
		if !part.Active {
			continue
		}
		part.X += part.VX
		part.VY += gravity
		part.Y += part.VY
		part.Life--
		if part.Life <= 0 || (inBounds != nil && !inBounds(part)) {
			part.Active = false
		}
	}
}

// Each calls fn for every active slot in storage order.
func (p *Pool) Each(fn func(*Particle)) {
	for i := range p.parts {
		if p.parts[i].Active {
			fn(&p.parts[i])
		}
	}
}

// ActiveCount returns the number of live slots.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.parts {
		if p.parts[i].Active {
			n++
		}
	}
	return n
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return len(p.parts)
}
