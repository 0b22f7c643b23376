// Package anim is the shared animation core for the watchfaces: clamped
// tween steps toward pose targets, per-pose frame clocks, cyclic move
// sequences, weighted random selection, integer segment geometry, and a
// fixed-capacity particle pool. Faces own their state; anim has none.
package anim

// Tween moves current toward target by at most step and never overshoots.
// Once current equals target the call is a no-op, so ticking a converged
// attribute is free.
func Tween(current, target, step int) int {
	if step < 0 {
		step = -step
	}
	diff := target - current
	if diff > step {
		return current + step
	}
	if diff < -step {
		return current - step
	}
	return target
}

// Table is a fixed pose table indexed by an enumerated tag. Lookups with a
// corrupt tag clamp to the first entry instead of panicking; entry 0 is the
// safe default pose for every face.
type Table[T any] struct {
	entries []T
}

// NewTable wraps entries. The slice is not copied; callers pass package-level
// pose arrays that never change after init.
func NewTable[T any](entries []T) Table[T] {
	return Table[T]{entries: entries}
}

// Get returns the entry for tag, clamped into range.
func (t Table[T]) Get(tag int) T {
	if tag < 0 || tag >= len(t.entries) {
		tag = 0
	}
	return t.entries[tag]
}

// Len returns the number of poses in the table.
func (t Table[T]) Len() int {
	return len(t.entries)
}
