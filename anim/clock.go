package anim

// hardFrameCap is the sanity ceiling for a frame counter. A counter past it
// (or wrapped negative) means state was corrupted mid-tick; Sanitize resets
// rather than letting sub-phase math see garbage.
const hardFrameCap = 500

// Clock tracks one actor's progress through its current pose. Frame counts
// up every tick; when it reaches MaxFrames the pose's budget is spent and
// the caller selects the next pose.
type Clock struct {
	Frame     int
	MaxFrames int
}

// Advance increments the frame counter and reports whether the pose budget
// is exhausted. It does not reset; Reset or Interrupt starts the next pose.
func (c *Clock) Advance() bool {
	c.Frame++
	return c.Frame >= c.MaxFrames
}

// Reset starts a new pose with the given frame budget.
func (c *Clock) Reset(maxFrames int) {
	c.Frame = 0
	c.MaxFrames = maxFrames
}

// Interrupt preempts the current pose immediately, regardless of remaining
// budget. Identical to Reset today; kept separate so the call sites read as
// interrupts rather than scheduled transitions.
func (c *Clock) Interrupt(maxFrames int) {
	c.Frame = 0
	c.MaxFrames = maxFrames
}

// Progress returns the pose progress as 0..100. The result is clamped even
// when Frame has run past MaxFrames (an interrupt can land mid-tick), so
// sub-phase trig never sees out-of-domain input.
func (c *Clock) Progress() int {
	if c.MaxFrames <= 0 {
		return 0
	}
	return Clamp(c.Frame*100/c.MaxFrames, 0, 100)
}

// Sanitize hard-resets the clock when the counter is negative or absurdly
// large and reports whether it did. fallback becomes the new budget.
func (c *Clock) Sanitize(fallback int) bool {
	reset := false
	if c.Frame < 0 || c.Frame > hardFrameCap {
		c.Frame = 0
		reset = true
	}
	if c.MaxFrames <= 0 || c.MaxFrames > hardFrameCap {
		c.MaxFrames = fallback
		reset = true
	}
	return reset
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
