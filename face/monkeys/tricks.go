package monkeys

import "github.com/milk9111/watchfaces/anim"

// Trick identifies one monkey routine.
type Trick int

const (
	TrickVineSwing Trick = iota
	TrickClimbVine
	TrickHangLook
	TrickTailHang
	TrickSitMunch
	TrickFight
	TrickFalling
	trickCount
)

// tricks is the dispatch table: frame budget plus the per-tick updater.
// Updaters derive everything from Clock.Progress so an interrupt mid-trick
// can never index past a sub-phase.
var tricks [trickCount]struct {
	Frames int
	Update func(*Monkeys, *Monkey)
}

// Assigned in init to break the initialization cycle between the table and
// updateVineSwing, which reads its own frame budget from the table.
func init() {
	tricks = [trickCount]struct {
		Frames int
		Update func(*Monkeys, *Monkey)
	}{
		TrickVineSwing: {50, updateVineSwing},
		TrickClimbVine: {40, updateClimbVine},
		TrickHangLook:  {60, updateHangLook},
		TrickTailHang:  {50, updateTailHang},
		TrickSitMunch:  {80, updateSitMunch},
		TrickFight:     {60, updateFight},
		TrickFalling:   {50, updateFalling},
	}
}

// trickChoices weights the random roll. Swinging dominates; fighting and
// falling only happen through interrupts.
var trickChoices = []anim.Choice[Trick]{
	{Weight: 40, Value: TrickVineSwing},
	{Weight: 10, Value: TrickClimbVine},
	{Weight: 10, Value: TrickHangLook},
	{Weight: 10, Value: TrickTailHang},
	{Weight: 30, Value: TrickSitMunch},
}

// updateVineSwing is the signature move: swing out on the current vine,
// fly through the air, catch the next vine and settle.
func updateVineSwing(f *Monkeys, m *Monkey) {
	progress := m.Clock.Progress()

	m.VineIndex = anim.Clamp(m.VineIndex, 0, numVines-1)
	vine := &f.vines[m.VineIndex]

	nextIdx := m.VineIndex + m.Dir
	if nextIdx < 0 || nextIdx >= numVines {
		m.Dir = -m.Dir
		nextIdx = m.VineIndex + m.Dir
	}
	nextIdx = anim.Clamp(nextIdx, 0, numVines-1)
	nextVine := &f.vines[nextIdx]

	switch {
	case progress < 35:
		// Wind up: swing from -30 to +45 degrees.
		swingP := progress * 100 / 35
		angle := swingP*75/100 - 30
		radius := vine.Length - 5
		m.Pos.X = vine.Top.X + anim.Sin(angle, radius)
		m.Pos.Y = vine.Top.Y + anim.Cos(angle, radius)
		m.Rotation = angle / 6

	case progress < 65:
		// Airborne between vines, arcing up and over.
		flyP := anim.Clamp((progress-35)*100/30, 0, 100)

		startX := vine.Top.X + anim.Sin(45, vine.Length-5)
		startY := vine.Top.Y + anim.Cos(45, vine.Length-5)
		endX := nextVine.Top.X + anim.Sin(-30, nextVine.Length-5)
		endY := nextVine.Top.Y + anim.Cos(-30, nextVine.Length-5)

		m.Pos.X = startX + (endX-startX)*flyP/100

		arc := flyP * 25 / 50
		if flyP >= 50 {
			arc = (100 - flyP) * 25 / 50
		}
		m.Pos.Y = startY + (endY-startY)*flyP/100 - arc

		m.Rotation = m.Dir * 22

		// Hand off to the next vine exactly once, at the midpoint frame.
		midFrame := tricks[TrickVineSwing].Frames * 50 / 100
		if m.Clock.Frame == midFrame {
			m.VineIndex = nextIdx
		}

	default:
		// Catch and settle on the new vine.
		swingP := anim.Clamp((progress-65)*100/35, 0, 100)
		angle := -30 + swingP*40/100
		vine = &f.vines[m.VineIndex]
		radius := vine.Length - 5
		m.Pos.X = vine.Top.X + anim.Sin(angle, radius)
		m.Pos.Y = vine.Top.Y + anim.Cos(angle, radius)
		m.Rotation = angle / 6
	}

	m.LimbPhase = progress * 360 / 100
}

func updateClimbVine(f *Monkeys, m *Monkey) {
	progress := m.Clock.Progress()

	m.VineIndex = anim.Clamp(m.VineIndex, 0, numVines-1)
	vine := &f.vines[m.VineIndex]

	climbDir := 1
	if m.TargetBranch > 0 {
		climbDir = -1
	}

	baseY := vine.Top.Y + vine.Length/2
	const climbRange = 25
	offset := climbDir * (progress - 50) * climbRange / 50

	m.Pos.X = vine.Top.X
	m.Pos.Y = baseY + offset + anim.Sin(progress*36, 3)

	m.LimbPhase = progress * 30
	m.Rotation = 0
	m.Dir = 1
}

func updateHangLook(f *Monkeys, m *Monkey) {
	progress := m.Clock.Progress()

	m.VineIndex = anim.Clamp(m.VineIndex, 0, numVines-1)
	vine := &f.vines[m.VineIndex]

	sway := anim.Sin(progress*6, 8)
	m.Pos.X = vine.Top.X + sway
	m.Pos.Y = vine.Top.Y + vine.Length - 10

	// Glance left, right, left again.
	m.Dir = -1
	if progress >= 30 && progress < 60 {
		m.Dir = 1
	}

	m.Rotation = sway * 4
	m.LimbPhase = 0
}

func updateTailHang(f *Monkeys, m *Monkey) {
	progress := m.Clock.Progress()

	m.BranchIndex = anim.Clamp(m.BranchIndex, 0, numBranches-1)
	branch := &f.branches[m.BranchIndex]
	mid := anim.Mid(branch.Start, branch.End)

	swing := anim.Sin(progress*9, 15)
	m.Pos.X = mid.X + swing
	m.Pos.Y = mid.Y + 22

	m.Rotation = 180
	m.Dir = 1
	if swing <= 0 {
		m.Dir = -1
	}
	m.LimbPhase = progress * 7
}

func updateSitMunch(f *Monkeys, m *Monkey) {
	progress := m.Clock.Progress()

	m.BranchIndex = anim.Clamp(m.BranchIndex, 0, numBranches-1)
	branch := &f.branches[m.BranchIndex]

	sitX := branch.Start.X + (branch.End.X-branch.Start.X)/3
	if m.Dir < 0 {
		sitX = branch.End.X - (branch.End.X-branch.Start.X)/3
	}
	m.Pos.X = sitX
	m.Pos.Y = branch.Start.Y - 8

	m.LimbPhase = anim.WrapDeg(progress * 36)
	m.Rotation = 0
	m.Bites = anim.Clamp(progress/20, 0, 4)
}

func updateFight(f *Monkeys, m *Monkey) {
	progress := m.Clock.Progress()

	// Fixed meeting point; anchoring to the other monkey feeds back.
	centerX := f.ctx.Profile.Width / 2
	centerY := f.swingZoneTop + 30

	switch {
	case progress < 30:
		eased := anim.EaseInOut(progress * 100 / 30)
		m.Pos.X = m.StartPos.X + (centerX-m.StartPos.X)*eased/100
		m.Pos.Y = m.StartPos.Y + (centerY-m.StartPos.Y)*eased/100
		m.Dir = 1
		if centerX <= m.StartPos.X {
			m.Dir = -1
		}

	case progress < 80:
		tussleP := anim.Clamp((progress-30)*100/50, 0, 100)
		shakeX := anim.Sin(tussleP*45, 8)
		shakeY := anim.Cos(tussleP*60, 5)
		m.Pos.X = centerX + shakeX
		m.Pos.Y = centerY + shakeY
		m.Rotation = shakeX * 7
		m.Dir = 1
		if tussleP%20 >= 10 {
			m.Dir = -1
		}

	default:
		retreatP := anim.Clamp((progress-80)*100/20, 0, 100)
		eased := anim.EaseOut(retreatP)
		retreatDir := 1
		if m.StartPos.X < centerX {
			retreatDir = -1
		}
		m.Pos.X = centerX + retreatDir*eased*25/100
		m.Pos.Y = f.swingZoneTop + 40 - anim.Sin(eased*2, 15)
		m.Dir = -retreatDir
		m.Rotation = 0
	}

	m.LimbPhase = progress * 45
}

// updateFalling: plummet, bounce, sit dazed, then get back up. The
// post-fall vine reset happens in selectNextTrick.
func updateFalling(f *Monkeys, m *Monkey) {
	progress := m.Clock.Progress()

	landY := f.groundY - 18

	switch {
	case progress < 40:
		fallP := anim.Clamp(progress*100/40, 0, 100)
		eased := fallP * fallP / 100

		m.Pos.X = m.StartPos.X + anim.Sin(fallP*45, 20)
		m.Pos.Y = m.StartPos.Y + (landY-m.StartPos.Y)*eased/100

		m.Rotation = fallP * 14
		m.LimbPhase = fallP * 120

	case progress < 55:
		bounceP := anim.Clamp((progress-40)*100/15, 0, 100)
		m.Pos.X = m.StartPos.X
		m.Pos.Y = landY - (20 - bounceP*20/100)
		m.Rotation = 45 * (100 - bounceP) / 100
		m.LimbPhase = bounceP * 36

	case progress < 75:
		dazeP := anim.Clamp((progress-55)*100/20, 0, 100)
		m.Pos.X = m.StartPos.X
		m.Pos.Y = f.groundY - 12
		m.Rotation = 0
		m.Dir = 1
		if dazeP%15 >= 7 {
			m.Dir = -1
		}
		m.LimbPhase = dazeP * 18

	default:
		recoverP := anim.Clamp((progress-75)*100/25, 0, 100)
		m.Pos.X = m.StartPos.X
		m.Pos.Y = f.groundY - 12 - recoverP*6/100
		m.Rotation = 0
		m.Dir = 1
		m.LimbPhase = recoverP * 7
	}
}
