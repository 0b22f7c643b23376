// Package host emulates the watch services a face consumes: battery state,
// shake detection, haptic output, and persistent storage.
package host

// Battery is the emulated charge state. Level is 0..100; the emulator
// drains it slowly while running and recharges it while Charging is set.
type Battery struct {
	Level    int
	Charging bool

	accum int
}

// NewBattery starts at the given level, clamped to 0..100.
func NewBattery(level int) *Battery {
	b := &Battery{Level: level}
	b.clamp()
	return b
}

// batterySlope is how many animation ticks one percent of charge lasts.
const batterySlope = 2400

// Step advances the emulation by one animation tick.
func (b *Battery) Step() {
	b.accum++
	if b.accum < batterySlope {
		return
	}
	b.accum = 0
	if b.Charging {
		b.Level += 1
	} else {
		b.Level -= 1
	}
	b.clamp()
}

// Adjust shifts the level by delta, for the emulator's battery keys.
func (b *Battery) Adjust(delta int) {
	b.Level += delta
	b.clamp()
}

// ToggleCharging flips the charger.
func (b *Battery) ToggleCharging() {
	b.Charging = !b.Charging
}

func (b *Battery) clamp() {
	if b.Level < 0 {
		b.Level = 0
	}
	if b.Level > 100 {
		b.Level = 100
	}
}
