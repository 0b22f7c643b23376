package swordfight

import (
	"math/rand"
	"testing"

	"github.com/milk9111/watchfaces/face"
	"github.com/milk9111/watchfaces/host"
	"github.com/milk9111/watchfaces/platform"
)

type pulseCounter struct {
	short int
	long  int
}

func (p *pulseCounter) ShortPulse() { p.short++ }
func (p *pulseCounter) LongPulse()  { p.long++ }

func testContext(battery int) (face.Context, *pulseCounter) {
	pulses := &pulseCounter{}
	return face.Context{
		Profile: platform.NewProfile(platform.Config{Shape: "rect", Color: true, TickMillis: 50, LowPowerTickMillis: 100}),
		Haptics: pulses,
		Battery: host.NewBattery(battery),
		Rand:    rand.New(rand.NewSource(1)),
	}, pulses
}

func newTestFace(t *testing.T, battery int) (*SwordFight, *pulseCounter) {
	t.Helper()
	ctx, pulses := testContext(battery)
	f, err := New(ctx)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return f.(*SwordFight), pulses
}

func TestChoreographyScriptMatchesFallback(t *testing.T) {
	moves, err := runChoreographyScript([]byte(choreographyScript))
	if err != nil {
		t.Fatalf("script error: %v", err)
	}
	if len(moves) != len(fallbackMoves) {
		t.Fatalf("script produced %d moves, fallback has %d", len(moves), len(fallbackMoves))
	}
	for i, m := range moves {
		if m != fallbackMoves[i] {
			t.Errorf("move %d: script %+v, fallback %+v", i, m, fallbackMoves[i])
		}
	}
}

func TestChoreographyScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no moves global", `x := 1`},
		{"empty moves", `moves := []`},
		{"unknown pose", `moves := [["lunge", "ready", 10, false]]`},
		{"short beat", `moves := [["ready", "ready", 10]]`},
		{"zero duration", `moves := [["ready", "ready", 0, false]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runChoreographyScript([]byte(tt.src)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestBeatAdvanceIsLockstep(t *testing.T) {
	f, _ := newTestFace(t, 100)

	first := f.moves.Current()
	if first.A != PoseReady || first.B != PoseReady {
		t.Fatalf("opening move = %+v, want ready/ready", first)
	}

	// The opening stance holds for its full budget.
	for i := 0; i < first.Dur-1; i++ {
		f.Tick()
		if f.moves.Index() != 0 {
			t.Fatalf("advanced to move %d after %d ticks, budget is %d", f.moves.Index(), i+1, first.Dur)
		}
	}

	f.Tick()
	if f.moves.Index() != 1 {
		t.Fatalf("index = %d after budget spent, want 1", f.moves.Index())
	}
	second := f.moves.Current()
	if f.left.Pose != second.A || f.right.Pose != second.B {
		t.Errorf("poses = %v/%v, want %v/%v", f.left.Pose, f.right.Pose, second.A, second.B)
	}
}

func TestSequenceWrapsAfterFullCycle(t *testing.T) {
	f, _ := newTestFace(t, 100)

	total := 0
	for _, m := range fallbackMoves {
		total += m.Dur
	}
	for i := 0; i < total; i++ {
		f.Tick()
	}
	if f.moves.Index() != 0 {
		t.Fatalf("index = %d after full cycle, want wrap to 0", f.moves.Index())
	}
}

func TestClashSpawnsSparkBetweenFighters(t *testing.T) {
	f, _ := newTestFace(t, 100)

	// Run to the first clash beat (slash vs block_high).
	for !f.sparkOn {
		f.Tick()
		if f.frame > 1000 {
			t.Fatal("no clash within 1000 ticks")
		}
	}

	if f.sparkLife <= 0 || f.sparkLife > sparkLife {
		t.Errorf("sparkLife = %d, want 1..%d", f.sparkLife, sparkLife)
	}
	if f.spark.X <= f.left.X-10 || f.spark.X >= f.right.X+10 {
		t.Errorf("spark at x=%d, fighters at %d and %d", f.spark.X, f.left.X, f.right.X)
	}
	if f.spark.Y <= 0 || f.spark.Y >= f.groundY {
		t.Errorf("spark at y=%d, want above ground %d", f.spark.Y, f.groundY)
	}

	// The spark burns out on its own.
	for i := 0; i < sparkLife+1; i++ {
		f.Tick()
	}
	if f.sparkOn {
		t.Error("spark still active past its lifetime")
	}
}

func TestClashHapticsGatedOnBattery(t *testing.T) {
	t.Run("full battery pulses once with cooldown", func(t *testing.T) {
		f, pulses := newTestFace(t, 100)
		for i := 0; i < 60; i++ {
			f.Tick()
		}
		if pulses.short != 1 {
			t.Errorf("short pulses = %d within cooldown window, want 1", pulses.short)
		}
	})

	t.Run("low battery stays silent", func(t *testing.T) {
		f, pulses := newTestFace(t, 40)
		for i := 0; i < 200; i++ {
			f.Tick()
		}
		if pulses.short != 0 {
			t.Errorf("short pulses = %d at 40%% battery, want 0", pulses.short)
		}
	})

	t.Run("low battery also skips camera shake", func(t *testing.T) {
		f, _ := newTestFace(t, 15)
		for i := 0; i < 200; i++ {
			f.Tick()
			if f.shakeX != 0 || f.shakeY != 0 {
				t.Fatalf("camera shake at 15%% battery on tick %d", i)
			}
		}
	})
}

func TestFightersStayOnOwnHalves(t *testing.T) {
	f, _ := newTestFace(t, 100)
	w := f.ctx.Profile.Width

	total := 0
	for _, m := range fallbackMoves {
		total += m.Dur
	}
	// Two full cycles.
	for i := 0; i < total*2; i++ {
		f.Tick()
		if f.left.X < 30 || f.left.X > w/2-20 {
			t.Fatalf("tick %d: left fighter at x=%d, want 30..%d", i, f.left.X, w/2-20)
		}
		if f.right.X < w/2+20 || f.right.X > w-30 {
			t.Fatalf("tick %d: right fighter at x=%d, want %d..%d", i, f.right.X, w/2+20, w-30)
		}
	}
}

func TestInterpolationConvergesWithinBudget(t *testing.T) {
	f := NewFighter(38, 1)
	f.Pose = PoseThrust
	target := poses.Get(int(PoseThrust))

	// Sword angle moves at 14/frame, body at 4-6; the largest gap in the
	// pose table closes inside 12 frames.
	for i := 0; i < 12; i++ {
		f.Interpolate()
	}
	if f.SwordAng != target.SwordAng {
		t.Errorf("SwordAng = %d after 12 frames, want %d", f.SwordAng, target.SwordAng)
	}
	if f.Lean != target.Lean || f.Crouch != target.Crouch {
		t.Errorf("body = lean %d crouch %d, want %d %d", f.Lean, f.Crouch, target.Lean, target.Crouch)
	}
}

func TestShakeInterruptsIntoStruck(t *testing.T) {
	f, _ := newTestFace(t, 100)
	for i := 0; i < 5; i++ {
		f.Tick()
	}

	f.Shake()
	if f.right.Pose != PoseStruck {
		t.Fatalf("right pose = %v after shake, want struck", f.right.Pose)
	}
	if f.beat.Frame != 0 {
		t.Errorf("beat frame = %d after interrupt, want 0", f.beat.Frame)
	}

	// The struck beat runs its frames, then the routine resumes.
	for i := 0; i < 12; i++ {
		f.Tick()
	}
	if f.right.Pose == PoseStruck && f.beat.Frame == 0 {
		t.Error("routine did not resume after struck interrupt")
	}
}

func TestRoundProfilePlacesFightersWider(t *testing.T) {
	ctx, _ := testContext(100)
	ctx.Profile = platform.NewProfile(platform.Config{Shape: "round", Color: true, TickMillis: 50, LowPowerTickMillis: 100})
	built, err := New(ctx)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f := built.(*SwordFight)
	if f.groundY != 162 {
		t.Errorf("groundY = %d on round profile, want 162", f.groundY)
	}
	if f.left.X != 55 || f.right.X != 125 {
		t.Errorf("fighters at %d/%d, want 55/125", f.left.X, f.right.X)
	}
}
