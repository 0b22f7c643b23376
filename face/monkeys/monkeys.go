// Package monkeys animates a troupe of jungle monkeys performing tricks on
// vines and branches. Each monkey runs its own trick state machine; a new
// trick is picked by weighted roll when the current one's frame budget is
// spent. Shaking the watch knocks the monkeys off their vines.
package monkeys

import (
	"time"

	"github.com/milk9111/watchfaces/anim"
	"github.com/milk9111/watchfaces/face"
)

const (
	numMonkeys  = 2
	numVines    = 4
	numBranches = 2
)

func init() {
	face.Register("monkeys", New)
}

// Vine hangs from the canopy and sways continuously.
type Vine struct {
	Top    anim.Point
	Length int
	Phase  int // sway phase, degrees
	Amount int // sway amplitude, pixels
}

// Branch is a perch between two endpoints.
type Branch struct {
	Start     anim.Point
	End       anim.Point
	Thickness int
}

// Monkey is one performer. Trick updaters own Pos, Rotation and the limb
// phases; Clock owns the trick lifecycle.
type Monkey struct {
	Pos   anim.Point
	Dir   int // 1 = right, -1 = left
	Trick Trick
	Clock anim.Clock

	StartPos     anim.Point
	Rotation     int // degrees
	VineIndex    int
	BranchIndex  int
	TargetBranch int
	Bites        int

	TailPhase int
	LimbPhase int
}

// Monkeys is the face state: fixed troupe, fixed scenery.
type Monkeys struct {
	ctx face.Context

	monkeys  [numMonkeys]Monkey
	vines    [numVines]Vine
	branches [numBranches]Branch

	canopyTop    int
	groundY      int
	swingZoneTop int
}

// New lays out the jungle for the profile and starts both monkeys
// mid-swing with staggered frames so they never move in sync.
func New(ctx face.Context) (face.Face, error) {
	f := &Monkeys{
		ctx:          ctx,
		canopyTop:    68,
		groundY:      150,
		swingZoneTop: 70,
	}
	if ctx.Profile.Round {
		f.canopyTop = 72
		f.swingZoneTop = 75
	}

	w := ctx.Profile.Width
	for i := range f.vines {
		f.vines[i] = Vine{
			Top:    anim.Point{X: 15 + i*(w-30)/(numVines-1), Y: f.canopyTop - 5},
			Length: anim.Clamp(anim.RandRange(ctx.Rand, 35, 50), 20, 70),
			Phase:  anim.RandRange(ctx.Rand, 0, 359),
			Amount: anim.RandRange(ctx.Rand, 5, 10),
		}
	}

	f.branches[0] = Branch{
		Start:     anim.Point{X: 10, Y: f.canopyTop + 12},
		End:       anim.Point{X: w / 2, Y: f.canopyTop + 16},
		Thickness: 4,
	}
	f.branches[1] = Branch{
		Start:     anim.Point{X: w/2 + 10, Y: f.canopyTop + 10},
		End:       anim.Point{X: w - 10, Y: f.canopyTop + 14},
		Thickness: 5,
	}

	for i := range f.monkeys {
		m := &f.monkeys[i]
		m.Dir = 1
		m.VineIndex = 1
		m.Pos = anim.Point{X: w / 3, Y: f.swingZoneTop + 15}
		if i == 1 {
			m.Dir = -1
			m.VineIndex = 2
			m.Pos = anim.Point{X: 2 * w / 3, Y: f.swingZoneTop + 25}
		}
		m.Trick = TrickVineSwing
		m.Clock.Reset(tricks[TrickVineSwing].Frames)
		m.Clock.Frame = anim.RandRange(ctx.Rand, 0, 20)
		m.StartPos = m.Pos
		m.TailPhase = anim.RandRange(ctx.Rand, 0, 359)
		m.LimbPhase = anim.RandRange(ctx.Rand, 0, 359)
	}
	return f, nil
}

func (f *Monkeys) Name() string { return "monkeys" }

func (f *Monkeys) Tick() {
	f.updateVines()
	for i := range f.monkeys {
		f.updateMonkey(&f.monkeys[i])
	}
}

func (f *Monkeys) updateVines() {
	delta := 3
	if f.lowPower() {
		delta = 1
	}
	for i := range f.vines {
		f.vines[i].Phase = anim.WrapDeg(f.vines[i].Phase + delta)
	}
}

func (f *Monkeys) lowPower() bool {
	return f.ctx.Battery.Level <= f.ctx.Profile.LowBatteryThreshold
}

func (f *Monkeys) updateMonkey(m *Monkey) {
	m.Clock.Advance()

	// Corrupt counters reset to the safest trick rather than feeding
	// garbage into the sub-phase math.
	if m.Clock.Sanitize(tricks[TrickVineSwing].Frames) {
		m.Trick = TrickVineSwing
		m.Clock.Reset(tricks[TrickVineSwing].Frames)
	}
	if m.Trick < 0 || m.Trick >= trickCount {
		m.Trick = TrickVineSwing
		m.Clock.Reset(tricks[TrickVineSwing].Frames)
	}

	tricks[m.Trick].Update(f, m)

	m.TailPhase = anim.WrapDeg(m.TailPhase + 8)
	m.LimbPhase = anim.WrapDeg(m.LimbPhase + 11)

	if m.Clock.Frame >= m.Clock.MaxFrames {
		f.selectNextTrick(m)
	}

	w := f.ctx.Profile.Width
	m.Pos.X = anim.Clamp(m.Pos.X, 10, w-10)
	m.Pos.Y = anim.Clamp(m.Pos.Y, f.canopyTop+15, f.groundY-5)
}

// selectNextTrick rolls the next trick. A monkey recovering from a fall is
// snapped back to a random vine and always swings first.
func (f *Monkeys) selectNextTrick(m *Monkey) {
	wasFalling := m.Trick == TrickFalling
	if wasFalling {
		m.VineIndex = anim.RandRange(f.ctx.Rand, 0, numVines-1)
		vine := &f.vines[m.VineIndex]
		m.Pos = anim.Point{X: vine.Top.X, Y: vine.Top.Y + vine.Length - 10}
		m.Dir = 1
		if f.ctx.Rand.Intn(2) == 0 {
			m.Dir = -1
		}
	}

	m.StartPos = m.Pos
	m.Rotation = 0
	m.Bites = 0
	m.VineIndex = anim.Clamp(m.VineIndex, 0, numVines-1)
	m.BranchIndex = anim.Clamp(m.BranchIndex, 0, numBranches-1)
	if m.Dir == 0 {
		m.Dir = 1
	}
	if m.VineIndex <= 0 {
		m.Dir = 1
	}
	if m.VineIndex >= numVines-1 {
		m.Dir = -1
	}

	if wasFalling {
		m.Trick = TrickVineSwing
		m.Clock.Reset(tricks[TrickVineSwing].Frames)
		return
	}

	next := anim.Pick(f.ctx.Rand, trickChoices)
	m.Trick = next
	m.Clock.Reset(tricks[next].Frames)
	switch next {
	case TrickClimbVine:
		m.TargetBranch = anim.RandRange(f.ctx.Rand, 0, 1)
	case TrickTailHang, TrickSitMunch:
		m.BranchIndex = anim.RandRange(f.ctx.Rand, 0, numBranches-1)
	}
}

// Shake knocks every monkey that isn't already falling off its perch.
func (f *Monkeys) Shake() {
	anyFell := false
	for i := range f.monkeys {
		m := &f.monkeys[i]
		if m.Trick == TrickFalling {
			continue
		}
		m.StartPos = m.Pos
		m.Trick = TrickFalling
		m.Clock.Reset(tricks[TrickFalling].Frames)
		m.Rotation = 0
		anyFell = true
	}
	if anyFell {
		f.ctx.Haptics.ShortPulse()
	}
}

func (f *Monkeys) MinuteTick(time.Time) {}

func (f *Monkeys) Unload() {}
