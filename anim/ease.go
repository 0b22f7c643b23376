package anim

import "math"

// WrapDeg folds an accumulating angle into [0, 360). Every angle that
// derives from a counter goes through here before trig so phase counters
// can grow without pushing math.Sin out of a sane domain.
func WrapDeg(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Sin returns sin(deg degrees) scaled by scale, as an integer offset.
// Angles are wrapped first; callers feed raw phase counters.
func Sin(deg, scale int) int {
	return int(math.Round(math.Sin(float64(WrapDeg(deg))*math.Pi/180) * float64(scale)))
}

// Cos returns cos(deg degrees) scaled by scale.
func Cos(deg, scale int) int {
	return int(math.Round(math.Cos(float64(WrapDeg(deg)) * math.Pi / 180) * float64(scale)))
}

// EaseInOut maps a 0..100 progress fraction through a cosine ease. Input is
// clamped first, so a frame counter past its budget still yields 100.
func EaseInOut(progress int) int {
	progress = Clamp(progress, 0, 100)
	return int(math.Round(50 - 50*math.Cos(float64(progress)*math.Pi/100)))
}

// EaseOut maps 0..100 through a quadratic ease-out.
func EaseOut(progress int) int {
	progress = Clamp(progress, 0, 100)
	return 100 - (100-progress)*(100-progress)/100
}
