// Package castle is an ambient night scene: a keep flanked by two towers,
// knights patrolling the grounds, and a twinkling star field.
package castle

import (
	"time"

	"github.com/milk9111/watchfaces/anim"
	"github.com/milk9111/watchfaces/face"
)

const (
	numKnights = 2
	numStars   = 8

	towerWidth      = 18
	towerHeight     = 70
	keepHeight      = 50
	battlementH     = 8
	knightEdge      = 5
	knightEdgeRight = 20
)

func init() {
	face.Register("castle", New)
}

// Knight patrols the ground, bouncing at the screen edges. LegPhase
// drives the walk cycle.
type Knight struct {
	X        int
	Dir      int
	LegPhase int
}

// Star twinkles on its own phase so the field shimmers unevenly.
type Star struct {
	X, Y  int
	Phase int
}

// Castle is the face state.
type Castle struct {
	ctx face.Context

	knights [numKnights]Knight
	stars   [numStars]Star

	groundTop int
	knightY   int
}

// New places the knights at opposite ends and scatters the stars. Star
// positions are fixed at load; only their brightness moves.
func New(ctx face.Context) (face.Face, error) {
	w := ctx.Profile.Width
	h := ctx.Profile.Height

	f := &Castle{
		ctx:       ctx,
		groundTop: h - 30,
	}
	f.knightY = f.groundTop + 10

	f.knights[0] = Knight{X: 10, Dir: 1}
	f.knights[1] = Knight{X: w - 25, Dir: -1, LegPhase: 4}

	starY := [numStars]int{8, 15, 12, 20, 10, 18, 25, 14}
	for i := range f.stars {
		f.stars[i] = Star{
			X:     anim.RandRange(ctx.Rand, 5, w-5),
			Y:     starY[i],
			Phase: anim.RandRange(ctx.Rand, 0, 359),
		}
	}

	return f, nil
}

func (f *Castle) Name() string { return "castle" }

// Tick walks each knight one pixel and advances the twinkle phases.
func (f *Castle) Tick() {
	w := f.ctx.Profile.Width
	for i := range f.knights {
		k := &f.knights[i]
		k.X += k.Dir

		if k.X <= knightEdge {
			k.X = knightEdge
			k.Dir = 1
		} else if k.X >= w-knightEdgeRight {
			k.X = w - knightEdgeRight
			k.Dir = -1
		}

		k.LegPhase = (k.LegPhase + 1) % 8
	}

	for i := range f.stars {
		f.stars[i].Phase = anim.WrapDeg(f.stars[i].Phase + 7)
	}
}

func (f *Castle) MinuteTick(now time.Time) {}

// Shake startles the patrol: both knights turn around.
func (f *Castle) Shake() {
	for i := range f.knights {
		f.knights[i].Dir = -f.knights[i].Dir
	}
}

func (f *Castle) Unload() {}

func (f *Castle) lowPower() bool {
	return f.ctx.Battery.Level <= f.ctx.Profile.LowBatteryThreshold
}
