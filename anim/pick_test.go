package anim

import (
	"math/rand"
	"testing"
)

func TestPickCoversDisjointRanges(t *testing.T) {
	choices := []Choice[string]{
		{Weight: 40, Value: "swing"},
		{Weight: 10, Value: "climb"},
		{Weight: 10, Value: "hang"},
		{Weight: 10, Value: "tail"},
		{Weight: 30, Value: "munch"},
	}

	r := rand.New(rand.NewSource(1))
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[Pick(r, choices)]++
	}

	// Every candidate must be reachable, and the heaviest range must
	// dominate the lightest ones.
	for _, c := range choices {
		if counts[c.Value] == 0 {
			t.Fatalf("candidate %q never selected", c.Value)
		}
	}
	if counts["swing"] <= counts["climb"] {
		t.Fatalf("weight 40 candidate picked %d times, weight 10 candidate %d", counts["swing"], counts["climb"])
	}
}

func TestPickDegenerateTables(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	if got := Pick[string](r, nil); got != "" {
		t.Fatalf("empty table should return zero value, got %q", got)
	}
	if got := Pick(r, []Choice[string]{{Weight: 0, Value: "a"}, {Weight: -5, Value: "b"}}); got != "" {
		t.Fatalf("all-zero weights should return zero value, got %q", got)
	}
	if got := Pick(r, []Choice[string]{{Weight: 0, Value: "a"}, {Weight: 7, Value: "b"}}); got != "b" {
		t.Fatalf("only positive-weight candidate should win, got %q", got)
	}
}

func TestRandRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := RandRange(r, 5, 9)
		if v < 5 || v > 9 {
			t.Fatalf("RandRange(5, 9) = %d out of bounds", v)
		}
	}
	if got := RandRange(r, 7, 7); got != 7 {
		t.Fatalf("degenerate range should return min, got %d", got)
	}
	if got := RandRange(r, 7, 3); got != 7 {
		t.Fatalf("inverted range should return min, got %d", got)
	}
}

func TestEaseClampsDomain(t *testing.T) {
	cases := []struct {
		name     string
		progress int
	}{
		{"below", -40}, {"zero", 0}, {"mid", 50}, {"full", 100}, {"past", 250},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, f := range []func(int) int{EaseInOut, EaseOut} {
				got := f(c.progress)
				if got < 0 || got > 100 {
					t.Fatalf("ease(%d) = %d out of [0,100]", c.progress, got)
				}
			}
		})
	}
	if EaseInOut(0) != 0 || EaseInOut(100) != 100 {
		t.Fatalf("ease endpoints must be fixed points")
	}
	if EaseOut(0) != 0 || EaseOut(100) != 100 {
		t.Fatalf("ease-out endpoints must be fixed points")
	}
}

func TestWrapDeg(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 0}, {359, 359}, {360, 0}, {725, 5}, {-1, 359}, {-720, 0},
	}
	for _, c := range cases {
		if got := WrapDeg(c.in); got != c.want {
			t.Fatalf("WrapDeg(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
