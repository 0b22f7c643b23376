package anim

import "testing"

func TestTweenStepsTowardTarget(t *testing.T) {
	cases := []struct {
		name    string
		current int
		target  int
		step    int
		want    int
	}{
		{"below_target_far", 0, 100, 4, 4},
		{"above_target_far", 100, 0, 4, 96},
		{"within_step_snaps", 98, 100, 4, 100},
		{"within_step_snaps_down", -2, -4, 4, -4},
		{"already_converged", 50, 50, 4, 50},
		{"zero_step", 10, 20, 0, 10},
		{"negative_step_normalized", 0, 100, -4, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Tween(c.current, c.target, c.step)
			if got != c.want {
				t.Fatalf("Tween(%d, %d, %d) = %d, want %d", c.current, c.target, c.step, got, c.want)
			}
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestTweenNeverOvershoots(t *testing.T) {
	for current := -30; current <= 30; current += 7 {
		for target := -30; target <= 30; target += 5 {
			for step := 0; step <= 20; step += 3 {
				next := Tween(current, target, step)
				if abs(next-target) > abs(current-target) {
					t.Fatalf("Tween(%d, %d, %d) = %d moved away from target", current, target, step, next)
				}
				if abs(current-target) <= step && next != target {
					t.Fatalf("Tween(%d, %d, %d) = %d should have converged exactly", current, target, step, next)
				}
				if Tween(target, target, step) != target {
					t.Fatalf("Tween at target must be a no-op")
				}
			}
		}
	}
}

func TestTweenConvergesInBoundedTicks(t *testing.T) {
	current, target, step := 0, 137, 14
	for i := 0; i < 20; i++ {
		current = Tween(current, target, step)
		if current == target {
			return
		}
	}
	t.Fatalf("tween did not converge, stuck at %d", current)
}

func TestTableClampsInvalidTags(t *testing.T) {
	table := NewTable([]string{"ready", "thrust", "slash"})

	cases := []struct {
		name string
		tag  int
		want string
	}{
		{"valid_first", 0, "ready"},
		{"valid_last", 2, "slash"},
		{"negative", -1, "ready"},
		{"past_end", 3, "ready"},
		{"garbage", 100000, "ready"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := table.Get(c.tag); got != c.want {
				t.Fatalf("Get(%d) = %q, want %q", c.tag, got, c.want)
			}
		})
	}
}
