package castle

import (
	"math/rand"
	"testing"

	"github.com/milk9111/watchfaces/face"
	"github.com/milk9111/watchfaces/host"
	"github.com/milk9111/watchfaces/platform"
)

func newTestFace(t *testing.T, battery int) *Castle {
	t.Helper()
	ctx := face.Context{
		Profile: platform.NewProfile(platform.Config{Shape: "rect", Color: true, TickMillis: 100, LowPowerTickMillis: 200}),
		Haptics: host.NopHaptics{},
		Battery: host.NewBattery(battery),
		Rand:    rand.New(rand.NewSource(7)),
	}
	built, err := New(ctx)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return built.(*Castle)
}

func TestKnightsPatrolWithinBounds(t *testing.T) {
	f := newTestFace(t, 100)
	w := f.ctx.Profile.Width

	for tick := 0; tick < 2000; tick++ {
		f.Tick()
		for i := range f.knights {
			x := f.knights[i].X
			if x < knightEdge || x > w-knightEdgeRight {
				t.Fatalf("tick %d: knight %d at x=%d outside patrol range", tick, i, x)
			}
		}
	}
}

func TestKnightBouncesAtLeftEdge(t *testing.T) {
	f := newTestFace(t, 100)
	f.knights[0].X = knightEdge + 1
	f.knights[0].Dir = -1

	f.Tick()
	if f.knights[0].X != knightEdge {
		t.Fatalf("knight at x=%d, want pinned at %d", f.knights[0].X, knightEdge)
	}
	if f.knights[0].Dir != 1 {
		t.Fatalf("knight direction = %d after left bounce, want 1", f.knights[0].Dir)
	}
}

func TestKnightBouncesAtRightEdge(t *testing.T) {
	f := newTestFace(t, 100)
	w := f.ctx.Profile.Width
	f.knights[1].X = w - knightEdgeRight - 1
	f.knights[1].Dir = 1

	f.Tick()
	if f.knights[1].X != w-knightEdgeRight {
		t.Fatalf("knight at x=%d, want pinned at %d", f.knights[1].X, w-knightEdgeRight)
	}
	if f.knights[1].Dir != -1 {
		t.Fatalf("knight direction = %d after right bounce, want -1", f.knights[1].Dir)
	}
}

func TestLegPhaseCycles(t *testing.T) {
	f := newTestFace(t, 100)
	start := f.knights[0].LegPhase
	for i := 0; i < 8; i++ {
		f.Tick()
	}
	if f.knights[0].LegPhase != start {
		t.Errorf("leg phase = %d after full cycle, want %d", f.knights[0].LegPhase, start)
	}
}

func TestKnightsStartStaggered(t *testing.T) {
	f := newTestFace(t, 100)
	if f.knights[0].LegPhase == f.knights[1].LegPhase {
		t.Error("knights share a leg phase, patrol should be staggered")
	}
	if f.knights[0].Dir != 1 || f.knights[1].Dir != -1 {
		t.Errorf("knight dirs = %d, %d, want 1, -1", f.knights[0].Dir, f.knights[1].Dir)
	}
}

func TestShakeReversesPatrol(t *testing.T) {
	f := newTestFace(t, 100)
	d0, d1 := f.knights[0].Dir, f.knights[1].Dir

	f.Shake()
	if f.knights[0].Dir != -d0 || f.knights[1].Dir != -d1 {
		t.Errorf("dirs after shake = %d, %d, want %d, %d",
			f.knights[0].Dir, f.knights[1].Dir, -d0, -d1)
	}
}

func TestStarsAreFixedButTwinkle(t *testing.T) {
	f := newTestFace(t, 100)
	wantX := [numStars]int{}
	before := [numStars]int{}
	for i := range f.stars {
		wantX[i] = f.stars[i].X
		before[i] = f.stars[i].Phase
	}

	for i := 0; i < 50; i++ {
		f.Tick()
	}
	for i := range f.stars {
		if f.stars[i].X != wantX[i] {
			t.Errorf("star %d moved from x=%d to x=%d", i, wantX[i], f.stars[i].X)
		}
		if f.stars[i].Phase == before[i] {
			t.Errorf("star %d phase never advanced", i)
		}
	}
}

func TestStarsStayOnScreen(t *testing.T) {
	f := newTestFace(t, 100)
	w := f.ctx.Profile.Width
	for i := range f.stars {
		s := f.stars[i]
		if s.X < 5 || s.X > w-5 {
			t.Errorf("star %d at x=%d outside margin", i, s.X)
		}
		if s.Y < 0 || s.Y > 30 {
			t.Errorf("star %d at y=%d below the sky band", i, s.Y)
		}
	}
}

func TestGroundScalesWithProfile(t *testing.T) {
	ctx := face.Context{
		Profile: platform.NewProfile(platform.Config{Shape: "round", Color: true, TickMillis: 100, LowPowerTickMillis: 200}),
		Haptics: host.NopHaptics{},
		Battery: host.NewBattery(100),
		Rand:    rand.New(rand.NewSource(7)),
	}
	built, err := New(ctx)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f := built.(*Castle)

	h := ctx.Profile.Height
	if f.groundTop != h-30 {
		t.Errorf("groundTop = %d, want %d", f.groundTop, h-30)
	}
	if f.knightY != f.groundTop+10 {
		t.Errorf("knightY = %d, want %d", f.knightY, f.groundTop+10)
	}
}
