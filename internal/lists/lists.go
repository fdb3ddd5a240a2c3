// Package lists provides generic helpers over slices: selection by score,
// ranges, repetition, frequency analysis and random sampling.
//
// Functions that can find nothing return (zero, false) instead of an error.
package lists

import (
	"math"

	"golang.org/x/exp/constraints"
)

// MinBy returns the element of seq with the smallest score.
// Ties resolve to the first element encountered.
func MinBy[T any, S constraints.Ordered](seq []T, score func(T) S) (T, bool) {
	if len(seq) == 0 {
		var zero T
		return zero, false
	}

	smallest := seq[0]
	smallestScore := score(smallest)
	for _, e := range seq[1:] {
		if s := score(e); s < smallestScore {
			smallest, smallestScore = e, s
		}
	}

	return smallest, true
}

// MaxBy returns the element of seq with the largest score.
// Ties resolve to the first element encountered.
func MaxBy[T any, S constraints.Ordered](seq []T, score func(T) S) (T, bool) {
	if len(seq) == 0 {
		var zero T
		return zero, false
	}

	biggest := seq[0]
	biggestScore := score(biggest)
	for _, e := range seq[1:] {
		if s := score(e); s > biggestScore {
			biggest, biggestScore = e, s
		}
	}

	return biggest, true
}

// Range returns the integers in [start, end).
func Range[I constraints.Integer](start, end I) []I {
	if end <= start {
		return []I{}
	}

	// end-start can overflow I for narrow signed types; the difference in
	// uint64 wraps back to the exact count.
	result := make([]I, 0, int(uint64(end)-uint64(start)))
	for i := start; i < end; i++ {
		result = append(result, i)
	}

	return result
}

// Repeat concatenates times copies of seq.
func Repeat[T any](times int, seq []T) []T {
	if times <= 0 {
		return []T{}
	}

	result := make([]T, 0, times*len(seq))
	for range Range(0, times) {
		result = append(result, seq...)
	}

	return result
}

// RepeatFloor is Repeat with a fractional count, which is floored.
func RepeatFloor[T any](times float64, seq []T) []T {
	if math.IsNaN(times) {
		return []T{}
	}
	return Repeat(int(math.Floor(times)), seq)
}

// Last returns the final element of seq.
func Last[T any](seq []T) (T, bool) {
	if len(seq) == 0 {
		var zero T
		return zero, false
	}
	return seq[len(seq)-1], true
}

// Mode returns the most frequent element of seq. Among equally frequent
// elements, the one that first appears earliest in seq wins.
func Mode[T comparable](seq []T) (T, bool) {
	if len(seq) == 0 {
		var zero T
		return zero, false
	}

	type entry struct {
		value T
		count int
	}

	// entries keeps first-appearance order; index maps a value to its entry.
	entries := make([]entry, 0, len(seq))
	index := make(map[T]int, len(seq))
	for _, v := range seq {
		if i, ok := index[v]; ok {
			entries[i].count++
			continue
		}
		index[v] = len(entries)
		entries = append(entries, entry{value: v, count: 1})
	}

	top, _ := MaxBy(entries, func(e entry) int { return e.count })
	return top.value, true
}
