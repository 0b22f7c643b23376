// Package platform describes the emulated watch: screen shape and palette,
// animation intervals, and the config file that selects them.
package platform

// Shape names a watch screen layout.
type Shape string

const (
	ShapeRect  Shape = "rect"
	ShapeRound Shape = "round"
)

// Profile is the resolved watch platform a face runs on. Faces derive all
// layout anchors from it so the same face fits both screens.
type Profile struct {
	Shape  Shape
	Width  int
	Height int
	Round  bool
	Color  bool

	// TickMillis is the animation interval while fully powered;
	// LowPowerTickMillis applies under low battery or the user toggle.
	TickMillis          int
	LowPowerTickMillis  int
	LowBatteryThreshold int
}

// NewProfile resolves a config into screen dimensions. Unknown shapes fall
// back to the rectangular watch.
func NewProfile(cfg Config) Profile {
	p := Profile{
		Shape:               ShapeRect,
		Width:               144,
		Height:              168,
		Color:               cfg.Color,
		TickMillis:          cfg.TickMillis,
		LowPowerTickMillis:  cfg.LowPowerTickMillis,
		LowBatteryThreshold: cfg.LowBatteryThreshold,
	}
	if Shape(cfg.Shape) == ShapeRound {
		p.Shape = ShapeRound
		p.Width = 180
		p.Height = 180
		p.Round = true
	}
	if p.TickMillis < 20 {
		p.TickMillis = 20
	}
	if p.LowPowerTickMillis < p.TickMillis {
		p.LowPowerTickMillis = p.TickMillis * 2
	}
	if p.LowBatteryThreshold <= 0 {
		p.LowBatteryThreshold = 20
	}
	return p
}

// Interval returns the animation interval in milliseconds for the given
// power conditions.
func (p Profile) Interval(batteryLevel int, lowPower bool) int {
	if lowPower || batteryLevel <= p.LowBatteryThreshold {
		return p.LowPowerTickMillis
	}
	return p.TickMillis
}
