package anim

import "testing"

func TestClockAdvancesAndReportsBudget(t *testing.T) {
	c := Clock{}
	c.Reset(50)

	for i := 0; i < 49; i++ {
		if c.Advance() {
			t.Fatalf("budget reported exhausted at frame %d of 50", c.Frame)
		}
	}
	if !c.Advance() {
		t.Fatalf("budget should be exhausted exactly at frame 50")
	}

	c.Reset(50)
	if c.Frame != 0 {
		t.Fatalf("Reset should zero the frame counter, got %d", c.Frame)
	}
}

func TestClockProgressClamped(t *testing.T) {
	cases := []struct {
		name      string
		frame     int
		maxFrames int
		want      int
	}{
		{"start", 0, 50, 0},
		{"mid", 25, 50, 50},
		{"end", 50, 50, 100},
		{"past_budget", 80, 50, 100},
		{"negative_frame", -5, 50, 0},
		{"zero_budget", 10, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clk := Clock{Frame: c.frame, MaxFrames: c.maxFrames}
			if got := clk.Progress(); got != c.want {
				t.Fatalf("Progress() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestClockInterruptPreempts(t *testing.T) {
	c := Clock{}
	c.Reset(50)
	for i := 0; i < 20; i++ {
		c.Advance()
	}
	if c.Progress() != 40 {
		t.Fatalf("setup: expected progress 40, got %d", c.Progress())
	}

	c.Interrupt(80)
	if c.Frame != 0 || c.MaxFrames != 80 {
		t.Fatalf("interrupt should reset frame and replace budget, got frame=%d max=%d", c.Frame, c.MaxFrames)
	}
}

func TestClockSanitize(t *testing.T) {
	cases := []struct {
		name      string
		clock     Clock
		wantReset bool
	}{
		{"healthy", Clock{Frame: 10, MaxFrames: 50}, false},
		{"negative_frame", Clock{Frame: -3, MaxFrames: 50}, true},
		{"runaway_frame", Clock{Frame: 10000, MaxFrames: 50}, true},
		{"zero_budget", Clock{Frame: 10, MaxFrames: 0}, true},
		{"runaway_budget", Clock{Frame: 10, MaxFrames: 9999}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clk := c.clock
			if got := clk.Sanitize(50); got != c.wantReset {
				t.Fatalf("Sanitize() = %v, want %v", got, c.wantReset)
			}
			if clk.Frame < 0 || clk.Frame > hardFrameCap {
				t.Fatalf("frame still out of range after sanitize: %d", clk.Frame)
			}
			if clk.MaxFrames <= 0 || clk.MaxFrames > hardFrameCap {
				t.Fatalf("budget still out of range after sanitize: %d", clk.MaxFrames)
			}
		})
	}
}
