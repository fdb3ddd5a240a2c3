package lists

// Rand is the source of randomness used by the sampling helpers.
// *rand.Rand from math/rand/v2 satisfies it; seed it with rand.NewPCG for
// reproducible sequences.
type Rand interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// OneOf returns a uniformly random element of seq.
// seq must not be empty.
func OneOf[T any](r Rand, seq []T) T {
	return seq[r.IntN(len(seq))]
}

// Shuffled returns a randomly permuted copy of seq. seq is not modified.
func Shuffled[T any](r Rand, seq []T) []T {
	c := make([]T, len(seq))
	copy(c, seq)
	Shuffle(r, c)
	return c
}

// Shuffle permutes seq in place (Fisher–Yates).
func Shuffle[T any](r Rand, seq []T) {
	for i := len(seq) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
}

// FindRandom returns the first element matching pred, scanning from a random
// index and wrapping around to the start.
func FindRandom[T any](r Rand, seq []T, pred func(T) bool) (T, bool) {
	_, v, ok := FindRandomIndex(r, seq, func(_ int, v T) bool { return pred(v) })
	return v, ok
}

// FindRandomIndex is FindRandom with the index passed to pred and returned
// alongside the match. The index is -1 when nothing matches.
func FindRandomIndex[T any](r Rand, seq []T, pred func(i int, v T) bool) (int, T, bool) {
	var zero T
	n := len(seq)
	if n == 0 {
		return -1, zero, false
	}

	start := r.IntN(n)
	for k := 0; k < n; k++ {
		i := (start + k) % n
		if pred(i, seq[i]) {
			return i, seq[i], true
		}
	}

	return -1, zero, false
}
