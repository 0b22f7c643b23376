// Package swordfight is a choreographed two-fighter duel: a cyclic move
// sequence drives both fighters' poses in lockstep, attributes tween toward
// each pose's targets at bounded speed, and crossing blades spawn sparks at
// the computed intersection.
package swordfight

import (
	"github.com/milk9111/watchfaces/anim"
)

// Pose tags. PoseReady is the safe default every corrupt tag clamps to.
type Pose int

const (
	PoseReady Pose = iota
	PoseStepFwd
	PoseThrust
	PoseSlash
	PoseBlockHigh
	PoseBlockLow
	PoseStruck
	PoseStepBack
)

// PoseData is the immutable target attribute bundle for one pose. Sword
// angles are degrees: 0 is straight up, 90 horizontal toward the opponent,
// past 90 the tip drops below the hand.
type PoseData struct {
	Lean     int
	StepFwd  int
	StepBack int
	Crouch   int
	SwordAng int
	ArmRaise int
}

// An attacker swings past 90 while the blocker catches below it, so the
// blades cross in an X between the fighters.
var poses = anim.NewTable([]PoseData{
	PoseReady:     {Lean: 3, StepFwd: 6, SwordAng: 75},
	PoseStepFwd:   {Lean: 6, StepFwd: 10, Crouch: 3, SwordAng: 80, ArmRaise: -2},
	PoseThrust:    {Lean: 12, StepFwd: 16, Crouch: 8, SwordAng: 95, ArmRaise: -8},
	PoseSlash:     {Lean: 10, StepFwd: 12, Crouch: 5, SwordAng: 135, ArmRaise: 12},
	PoseBlockHigh: {Lean: 2, StepFwd: 6, Crouch: 2, SwordAng: 45, ArmRaise: 10},
	PoseBlockLow:  {Lean: 4, StepFwd: 8, Crouch: 4, SwordAng: 105, ArmRaise: -4},
	PoseStruck:    {Lean: -16, StepFwd: -6, StepBack: 12, Crouch: 12, SwordAng: 160, ArmRaise: 8},
	PoseStepBack:  {Lean: -8, StepBack: 10, Crouch: 2, SwordAng: 70},
})

// poseNames maps choreography script identifiers to tags.
var poseNames = map[string]Pose{
	"ready":      PoseReady,
	"step_fwd":   PoseStepFwd,
	"thrust":     PoseThrust,
	"slash":      PoseSlash,
	"block_high": PoseBlockHigh,
	"block_low":  PoseBlockLow,
	"struck":     PoseStruck,
	"step_back":  PoseStepBack,
}

// Per-attribute tween speeds. The sword arm snaps while the body follows
// smoothly, which is what sells a strike.
const (
	bodySpeed  = 4
	stepSpeed  = 6
	swordSpeed = 14
)

// Fighter is one duelist: screen position, facing, current pose tag, and
// the interpolated attribute values that lag the pose targets.
type Fighter struct {
	X    int
	Dir  int // +1 faces right, -1 faces left
	Pose Pose

	Lean     int
	StepFwd  int
	StepBack int
	Crouch   int
	SwordAng int
	ArmRaise int
}

// NewFighter starts a fighter at x in the ready pose, already converged so
// the opening frame doesn't snap.
func NewFighter(x, dir int) *Fighter {
	f := &Fighter{X: x, Dir: dir, Pose: PoseReady}
	p := poses.Get(int(PoseReady))
	f.Lean, f.StepFwd, f.StepBack = p.Lean, p.StepFwd, p.StepBack
	f.Crouch, f.SwordAng, f.ArmRaise = p.Crouch, p.SwordAng, p.ArmRaise
	return f
}

// Interpolate runs one tween step toward the active pose's targets.
func (f *Fighter) Interpolate() {
	target := poses.Get(int(f.Pose))
	f.Lean = anim.Tween(f.Lean, target.Lean, bodySpeed+1)
	f.StepFwd = anim.Tween(f.StepFwd, target.StepFwd, stepSpeed)
	f.StepBack = anim.Tween(f.StepBack, target.StepBack, stepSpeed)
	f.Crouch = anim.Tween(f.Crouch, target.Crouch, bodySpeed)
	f.SwordAng = anim.Tween(f.SwordAng, target.SwordAng, swordSpeed)
	f.ArmRaise = anim.Tween(f.ArmRaise, target.ArmRaise, stepSpeed)
}

// SwordPoints computes the hand and blade-tip segment from the same
// interpolated attributes the renderer draws with, so spark placement
// matches the visuals. Shake offsets shift the whole figure.
func (f *Fighter) SwordPoints(groundY, shakeX, shakeY int) (hand, tip anim.Point) {
	d := f.Dir
	cx := f.X + shakeX + f.Lean*d
	cy := groundY + shakeY + f.Crouch

	shoulderY := cy - 52
	sarmX := cx + 6*d
	sarmY := shoulderY + 5 - f.ArmRaise

	sin := func(dist int) int { return anim.Sin(f.SwordAng, dist) * d }
	cos := func(dist int) int { return anim.Cos(f.SwordAng, dist) }

	elbowX := sarmX + sin(10)
	elbowY := sarmY - cos(10)

	handX := elbowX + sin(10)
	handY := elbowY - cos(10)

	const bladeLen = 50
	tipX := handX + sin(bladeLen)
	tipY := handY - cos(bladeLen)

	return anim.Point{X: handX, Y: handY}, anim.Point{X: tipX, Y: tipY}
}
