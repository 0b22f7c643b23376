// Package beach is an ambient shoreline scene: three phase-driven waves
// rolling toward a sand strip, a sun with rays, and a couple of gulls
// drifting across the sky.
package beach

import (
	"time"

	"github.com/milk9111/watchfaces/anim"
	"github.com/milk9111/watchfaces/face"
)

const (
	numWaves = 3
	numGulls = 2

	// Shake surge: extra wave amplitude that decays back to calm.
	surgeFrames = 40
	surgeBoost  = 4
)

func init() {
	face.Register("beach", New)
}

// Wave is one rolling front. Phase is an accumulating degree counter;
// Amplitude and Speed are per-wave so the fronts drift out of sync.
type Wave struct {
	BaseY     int
	Phase     int
	Amplitude int
	Speed     int
}

// Gull drifts horizontally and bobs on its own flap phase.
type Gull struct {
	X, Y  int
	Dir   int
	Flap  int
	Speed int
}

// Beach is the face state.
type Beach struct {
	ctx face.Context

	waves [numWaves]Wave
	gulls [numGulls]Gull
	surge int

	sunX, sunY int
	sandTop    int
	skyEnd     int

	// Sand texture dots, fixed at load so the beach doesn't shimmer.
	dotX, dotY []int
}

// New lays the scene out for the profile. The wave bases hug the sand
// strip so the same spacing holds on both screens.
func New(ctx face.Context) (face.Face, error) {
	w := ctx.Profile.Width
	h := ctx.Profile.Height

	f := &Beach{
		ctx:     ctx,
		sunX:    w - 29,
		sunY:    28,
		sandTop: h - 28,
		skyEnd:  h / 3,
	}

	// Front wave is closest, fastest, and tallest.
	f.waves[0] = Wave{BaseY: f.sandTop - 12, Phase: 0, Amplitude: 5, Speed: 5}
	f.waves[1] = Wave{BaseY: f.sandTop - 25, Phase: 120, Amplitude: 6, Speed: 3}
	f.waves[2] = Wave{BaseY: f.sandTop - 38, Phase: 240, Amplitude: 4, Speed: 2}

	for i := range f.gulls {
		f.gulls[i] = Gull{
			X:     anim.RandRange(ctx.Rand, 10, w-10),
			Y:     anim.RandRange(ctx.Rand, 14, f.skyEnd-18),
			Dir:   1 - 2*(i%2),
			Flap:  anim.RandRange(ctx.Rand, 0, 359),
			Speed: 1,
		}
	}

	for i := 0; i < 12; i++ {
		f.dotX = append(f.dotX, anim.RandRange(ctx.Rand, 4, w-4))
		f.dotY = append(f.dotY, f.sandTop+anim.RandRange(ctx.Rand, 4, h-f.sandTop-4))
	}

	return f, nil
}

func (f *Beach) Name() string { return "beach" }

// Tick rolls every wave phase forward and drifts the gulls. Waves wrap
// off one edge back onto the other.
func (f *Beach) Tick() {
	for i := range f.waves {
		f.waves[i].Phase = anim.WrapDeg(f.waves[i].Phase + f.waves[i].Speed)
	}

	w := f.ctx.Profile.Width
	for i := range f.gulls {
		g := &f.gulls[i]
		g.X += g.Dir * g.Speed
		g.Flap = anim.WrapDeg(g.Flap + 9)
		if g.X < -8 {
			g.X = w + 8
		} else if g.X > w+8 {
			g.X = -8
		}
	}

	if f.surge > 0 {
		f.surge--
	}
}

func (f *Beach) MinuteTick(now time.Time) {}

// Shake kicks up the surf for a moment.
func (f *Beach) Shake() {
	f.surge = surgeFrames
}

func (f *Beach) Unload() {}

// surgeAmp is the extra amplitude the current surge adds, tapering off
// linearly as it decays.
func (f *Beach) surgeAmp() int {
	if f.surge <= 0 {
		return 0
	}
	return surgeBoost * f.surge / surgeFrames
}

func (f *Beach) lowPower() bool {
	return f.ctx.Battery.Level <= f.ctx.Profile.LowBatteryThreshold
}
