package sampler

import (
	"math/rand/v2"
	"time"
)

// RandomDelay returns a random duration in [min, max].
// This is a pure function for easy testing.
func RandomDelay(rng *rand.Rand, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rng.Int64N(int64(max-min)+1))
}
