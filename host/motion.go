package host

import "time"

// Gravity shows up as roughly 1000 milli-g on one axis, so a resting watch
// reads a magnitude squared near 1,000,000. A vigorous shake clears four
// times that.
const (
	shakeThresholdSq int64 = 4_000_000
	shakeCooldown          = 1500 * time.Millisecond
)

// ShakeDetector turns raw accelerometer samples into discrete shake events:
// sum-of-squares magnitude against a fixed threshold, with a cooldown
// window so one shake does not fire a burst of events.
type ShakeDetector struct {
	thresholdSq int64
	cooldown    time.Duration
	lastShake   time.Time

	now func() time.Time
}

// NewShakeDetector uses the default threshold and cooldown.
func NewShakeDetector() *ShakeDetector {
	return &ShakeDetector{
		thresholdSq: shakeThresholdSq,
		cooldown:    shakeCooldown,
		now:         time.Now,
	}
}

// Sample feeds one accelerometer reading in milli-g and reports whether it
// crossed the shake threshold outside the cooldown window.
func (d *ShakeDetector) Sample(x, y, z int) bool {
	mag := int64(x)*int64(x) + int64(y)*int64(y) + int64(z)*int64(z)
	if mag < d.thresholdSq {
		return false
	}
	now := d.now()
	if !d.lastShake.IsZero() && now.Sub(d.lastShake) < d.cooldown {
		return false
	}
	d.lastShake = now
	return true
}
