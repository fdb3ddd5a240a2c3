package lists

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same index, clamped to n.
type fixedRand struct{ i int }

func (f fixedRand) IntN(n int) int { return f.i % n }

func TestOneOf(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	t.Run("single element", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			assert.Equal(t, "only", OneOf(rng, []string{"only"}))
		}
	})

	t.Run("multiple elements", func(t *testing.T) {
		seq := []string{"a", "b", "c"}
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			s := OneOf(rng, seq)
			assert.Contains(t, seq, s)
			seen[s] = true
		}
		assert.Len(t, seen, 3)
	})

	t.Run("empty panics", func(t *testing.T) {
		assert.Panics(t, func() { OneOf(rng, []int{}) })
	})
}

func TestOneOf_Distribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(12345, 67890))
	seq := []string{"a", "b", "c", "d", "e"}
	counts := make(map[string]int)

	iterations := 10000
	for i := 0; i < iterations; i++ {
		counts[OneOf(rng, seq)]++
	}

	// Each should land near 20%; accept 10% to 30%.
	for _, s := range seq {
		assert.GreaterOrEqual(t, counts[s], iterations/10, "element %q", s)
		assert.LessOrEqual(t, counts[s], iterations*3/10, "element %q", s)
	}
}

func TestShuffled(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	original := []int{1, 2, 3, 4, 5, 6, 7, 8, 2, 2}
	before := slices.Clone(original)

	for i := 0; i < 50; i++ {
		got := Shuffled(rng, original)
		require.Len(t, got, len(original))
		assert.ElementsMatch(t, original, got)
	}

	assert.Equal(t, before, original, "input must not be modified")
}

func TestShuffle(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	t.Run("empty", func(t *testing.T) {
		seq := []int{}
		Shuffle(rng, seq)
		assert.Empty(t, seq)
	})

	t.Run("nil", func(t *testing.T) {
		var seq []int
		Shuffle(rng, seq)
		assert.Nil(t, seq)
	})

	t.Run("single", func(t *testing.T) {
		seq := []int{42}
		Shuffle(rng, seq)
		assert.Equal(t, []int{42}, seq)
	})

	t.Run("permutes in place", func(t *testing.T) {
		seq := Range(0, 20)
		Shuffle(rng, seq)
		assert.ElementsMatch(t, Range(0, 20), seq)
		assert.NotEqual(t, Range(0, 20), seq)
	})
}

func TestShuffle_Deterministic(t *testing.T) {
	a := Range(0, 32)
	b := Range(0, 32)

	Shuffle(rand.New(rand.NewPCG(7, 8)), a)
	Shuffle(rand.New(rand.NewPCG(7, 8)), b)

	assert.Equal(t, a, b)
}

func TestShuffle_AllPermutationsReachable(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 100))
	seen := make(map[[3]int]int)

	for i := 0; i < 6000; i++ {
		seq := []int{0, 1, 2}
		Shuffle(rng, seq)
		seen[[3]int(seq)]++
	}

	assert.Len(t, seen, 6)
	for perm, n := range seen {
		assert.Greater(t, n, 600, "permutation %v underrepresented", perm)
	}
}

func TestFindRandom(t *testing.T) {
	seq := []int{10, 11, 12, 13, 14}

	t.Run("single match from every start", func(t *testing.T) {
		for start := range seq {
			got, ok := FindRandom(fixedRand{start}, seq, func(v int) bool { return v == 12 })
			assert.True(t, ok)
			assert.Equal(t, 12, got)
		}
	})

	t.Run("single match with real rng", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(5, 6))
		for i := 0; i < 100; i++ {
			got, ok := FindRandom(rng, seq, func(v int) bool { return v == 14 })
			assert.True(t, ok)
			assert.Equal(t, 14, got)
		}
	})

	t.Run("scan starts at offset and wraps", func(t *testing.T) {
		even := func(v int) bool { return v%2 == 0 }

		got, ok := FindRandom(fixedRand{1}, seq, even)
		assert.True(t, ok)
		assert.Equal(t, 12, got)

		got, ok = FindRandom(fixedRand{3}, seq, even)
		assert.True(t, ok)
		assert.Equal(t, 14, got)

		got, ok = FindRandom(fixedRand{3}, seq, func(v int) bool { return v < 12 })
		assert.True(t, ok)
		assert.Equal(t, 10, got)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := FindRandom(fixedRand{2}, seq, func(v int) bool { return v > 100 })
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := FindRandom(fixedRand{0}, nil, func(int) bool { return true })
		assert.False(t, ok)
	})
}

func TestFindRandomIndex(t *testing.T) {
	seq := []string{"x", "y", "x"}

	i, v, ok := FindRandomIndex(fixedRand{1}, seq, func(_ int, s string) bool { return s == "x" })
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, "x", v)

	i, _, ok = FindRandomIndex(fixedRand{0}, seq, func(i int, _ string) bool { return i > 5 })
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}
