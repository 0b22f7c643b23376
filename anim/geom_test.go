package anim

import "testing"

func TestSegmentIntersection(t *testing.T) {
	cases := []struct {
		name           string
		a1, a2, b1, b2 Point
		want           Point
		wantHit        bool
	}{
		{
			name: "perpendicular_cross",
			a1:   Point{0, 10}, a2: Point{20, 10},
			b1: Point{10, 0}, b2: Point{10, 20},
			want: Point{10, 10}, wantHit: true,
		},
		{
			name: "diagonal_x_cross",
			a1:   Point{0, 0}, a2: Point{10, 10},
			b1: Point{0, 10}, b2: Point{10, 0},
			want: Point{5, 5}, wantHit: true,
		},
		{
			name: "parallel_never_cross",
			a1:   Point{0, 0}, a2: Point{10, 0},
			b1: Point{0, 5}, b2: Point{10, 5},
			wantHit: false,
		},
		{
			name: "disjoint_would_cross_if_extended",
			a1:   Point{0, 0}, a2: Point{4, 4},
			b1: Point{10, 0}, b2: Point{6, 4},
			wantHit: false,
		},
		{
			name: "shared_endpoint",
			a1:   Point{0, 0}, a2: Point{10, 10},
			b1: Point{10, 10}, b2: Point{20, 0},
			want: Point{10, 10}, wantHit: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, hit := SegmentIntersection(c.a1, c.a2, c.b1, c.b2)
			if hit != c.wantHit {
				t.Fatalf("hit = %v, want %v", hit, c.wantHit)
			}
			if !hit {
				return
			}
			if abs(got.X-c.want.X) > 1 || abs(got.Y-c.want.Y) > 1 {
				t.Fatalf("intersection = %v, want %v within integer rounding", got, c.want)
			}
		})
	}
}

func TestClashPointFallback(t *testing.T) {
	// Two parallel horizontal blades: no intersection, so the clash point is
	// the average of the two segment midpoints.
	a1, a2 := Point{0, 0}, Point{20, 0}
	b1, b2 := Point{0, 10}, Point{20, 10}

	got := ClashPoint(a1, a2, b1, b2)
	want := Point{10, 5}
	if got != want {
		t.Fatalf("ClashPoint fallback = %v, want %v", got, want)
	}
}

func TestClashPointUsesIntersection(t *testing.T) {
	got := ClashPoint(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	want := Point{5, 5}
	if got != want {
		t.Fatalf("ClashPoint = %v, want %v", got, want)
	}
}
