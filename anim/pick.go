package anim

import "math/rand"

// Choice pairs a candidate value with its selection weight.
type Choice[T any] struct {
	Weight int
	Value  T
}

// Pick rolls once over the cumulative weights and returns the selected
// value: weights [40,10,10,10,30] map a 0..99 roll onto disjoint ranges the
// way the face choreography tables expect. Non-positive weights are skipped;
// an empty or all-zero table returns the zero value.
func Pick[T any](r *rand.Rand, choices []Choice[T]) T {
	var zero T
	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total <= 0 {
		return zero
	}
	roll := r.Intn(total)
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		if roll < c.Weight {
			return c.Value
		}
		roll -= c.Weight
	}
	return zero
}

// RandRange returns a uniform value in [min, max]. Degenerate bounds
// collapse to min.
func RandRange(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}
