package anim

// Point is an integer canvas coordinate.
type Point struct {
	X, Y int
}

// Mid returns the midpoint of p and q (integer rounding toward zero).
func Mid(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// SegmentIntersection computes where segments a1-a2 and b1-b2 cross using
// the integer determinant test. Parallel or non-overlapping segments report
// no intersection; that is a normal outcome, not an error.
func SegmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	x1, y1 := a1.X, a1.Y
	x2, y2 := a2.X, a2.Y
	x3, y3 := b1.X, b1.Y
	x4, y4 := b2.X, b2.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return Point{}, false
	}

	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	uNum := (x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)

	withinT := tNum >= 0 && tNum <= den
	withinU := uNum >= 0 && uNum <= den
	if den < 0 {
		withinT = tNum <= 0 && tNum >= den
		withinU = uNum <= 0 && uNum >= den
	}
	if !withinT || !withinU {
		return Point{}, false
	}

	return Point{
		X: (x1*den + tNum*(x2-x1)) / den,
		Y: (y1*den + tNum*(y2-y1)) / den,
	}, true
}

// ClashPoint returns the intersection of the two segments, or the average
// of their midpoints when they do not cross. Used to place spark effects;
// a missed intersection just means the effect lands between the blades.
func ClashPoint(a1, a2, b1, b2 Point) Point {
	if p, ok := SegmentIntersection(a1, a2, b1, b2); ok {
		return p
	}
	return Mid(Mid(a1, a2), Mid(b1, b2))
}
