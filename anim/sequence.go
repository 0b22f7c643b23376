package anim

// Sequence is a scripted cyclic choreography: an ordered list of moves
// advanced one per completed pose cycle, wrapping with modulo arithmetic so
// the index stays valid for any number of advances.
type Sequence[M any] struct {
	moves []M
	idx   int
}

// NewSequence builds a sequence over moves. An empty move list yields a
// zero-value move forever rather than panicking.
func NewSequence[M any](moves []M) *Sequence[M] {
	return &Sequence[M]{moves: moves}
}

// Current returns the active move.
func (s *Sequence[M]) Current() M {
	var zero M
	if len(s.moves) == 0 {
		return zero
	}
	return s.moves[s.idx%len(s.moves)]
}

// Advance steps to the next move, wrapping at the end, and returns it.
func (s *Sequence[M]) Advance() M {
	var zero M
	if len(s.moves) == 0 {
		return zero
	}
	s.idx = (s.idx + 1) % len(s.moves)
	return s.moves[s.idx]
}

// Index returns the current position in the cycle.
func (s *Sequence[M]) Index() int {
	if len(s.moves) == 0 {
		return 0
	}
	return s.idx % len(s.moves)
}

// Len returns the cycle length.
func (s *Sequence[M]) Len() int {
	return len(s.moves)
}
