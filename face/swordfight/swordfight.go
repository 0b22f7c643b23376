package swordfight

import (
	"time"

	"github.com/milk9111/watchfaces/anim"
	"github.com/milk9111/watchfaces/face"
)

const (
	sparkLife         = 10
	vibeCooldownTicks = 90 // roughly two seconds at full rate
	vibeBatteryFloor  = 50
	shakeBatteryFloor = 20
)

func init() {
	face.Register("swordfight", New)
}

// SwordFight runs the duel: a cyclic choreography drives both fighters in
// lockstep, sparks fire where the blades cross on clash beats.
type SwordFight struct {
	ctx face.Context

	left  *Fighter // faces right
	right *Fighter // faces left

	moves *anim.Sequence[Move]
	beat  anim.Clock
	frame int

	sparkOn   bool
	sparkLife int
	spark     anim.Point

	shakeFrames int
	shakeMag    int
	shakeX      int
	shakeY      int

	vibeCooldown int

	groundY int
}

// New builds the duel sized for the profile.
func New(ctx face.Context) (face.Face, error) {
	w := ctx.Profile.Width
	groundY := ctx.Profile.Height - 18
	leftX, rightX := 38, 106
	if ctx.Profile.Round {
		leftX, rightX = 55, 125
	}

	moves := LoadChoreography()
	f := &SwordFight{
		ctx:     ctx,
		left:    NewFighter(leftX, 1),
		right:   NewFighter(rightX, -1),
		moves:   anim.NewSequence(moves),
		groundY: groundY,
	}
	f.beat.Reset(f.moves.Current().Dur)
	f.clampPositions(w)
	return f, nil
}

func (f *SwordFight) Name() string { return "swordfight" }

// Tick advances the duel one frame, mirroring the timer path: beat
// progression, then tween interpolation, then movement and effect decay.
func (f *SwordFight) Tick() {
	f.frame++

	if f.beat.Advance() {
		f.moves.Advance()
		next := f.moves.Current()
		f.beat.Reset(next.Dur)

		f.left.Pose = next.A
		f.right.Pose = next.B

		if next.Clash {
			f.triggerClash()
		}
	}

	f.left.Interpolate()
	f.right.Interpolate()

	w := f.ctx.Profile.Width

	// Footwork happens one pixel per frame so it reads as a step, not a slide.
	switch f.left.Pose {
	case PoseStepFwd:
		if f.left.X < f.right.X-20 {
			f.left.X++
		}
	case PoseStepBack, PoseStruck:
		if f.left.X > 35 {
			f.left.X--
		}
	}
	switch f.right.Pose {
	case PoseStepFwd:
		if f.right.X > f.left.X+20 {
			f.right.X--
		}
	case PoseStepBack, PoseStruck:
		if f.right.X < w-35 {
			f.right.X++
		}
	}
	f.clampPositions(w)

	if f.sparkOn {
		f.sparkLife--
		if f.sparkLife <= 0 {
			f.sparkOn = false
		}
	}

	if f.vibeCooldown > 0 {
		f.vibeCooldown--
	}

	if f.shakeFrames > 0 && f.shakeMag > 0 {
		m := f.shakeMag
		if f.frame&1 != 0 {
			f.shakeX = -m
		} else {
			f.shakeX = m
		}
		if f.frame&2 != 0 {
			f.shakeY = m
		} else {
			f.shakeY = -m
		}
		f.shakeFrames--
	} else {
		f.shakeX, f.shakeY = 0, 0
	}
}

func (f *SwordFight) triggerClash() {
	f.sparkOn = true
	f.sparkLife = sparkLife

	lHand, lTip := f.left.SwordPoints(f.groundY, f.shakeX, f.shakeY)
	rHand, rTip := f.right.SwordPoints(f.groundY, f.shakeX, f.shakeY)
	f.spark = anim.ClashPoint(lHand, lTip, rHand, rTip)

	if f.ctx.Battery.Level > shakeBatteryFloor {
		f.shakeFrames = 1
		f.shakeMag = 1
	}

	if f.ctx.Battery.Level > vibeBatteryFloor && f.vibeCooldown == 0 {
		f.ctx.Haptics.ShortPulse()
		f.vibeCooldown = vibeCooldownTicks
	}
}

// Hard bounds: fighters stay on their own half so the blades meet in the
// middle of the screen.
func (f *SwordFight) clampPositions(w int) {
	f.left.X = anim.Clamp(f.left.X, 30, w/2-20)
	f.right.X = anim.Clamp(f.right.X, w/2+20, w-30)
}

func (f *SwordFight) MinuteTick(time.Time) {}

// Shake knocks the right fighter into the struck pose and restarts that
// beat, a small reward for shaking the watch.
func (f *SwordFight) Shake() {
	f.right.Pose = PoseStruck
	f.left.Pose = PoseReady
	f.beat.Interrupt(12)
}

func (f *SwordFight) Unload() {}
