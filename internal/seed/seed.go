// Package seed hands out reproducible random streams derived from one master
// seed.
package seed

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Registry provides deterministic seed sequences.
// Stream N is seeded with (master, N).
type Registry struct {
	mu         sync.Mutex
	master     uint64
	nextStream uint64
}

// New creates a Registry. A zero master seed is replaced with one derived
// from the clock; call Current to log it for later replay.
func New(master uint64) *Registry {
	if master == 0 {
		master = uint64(time.Now().UnixNano())
	}
	return &Registry{master: master}
}

// NewRand returns the next independent generator.
func (r *Registry) NewRand() *rand.Rand {
	r.mu.Lock()
	defer r.mu.Unlock()

	stream := r.nextStream
	r.nextStream++

	return rand.New(rand.NewPCG(r.master, stream))
}

// Current returns the master seed and the number of streams handed out.
func (r *Registry) Current() (master, streams uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.master, r.nextStream
}
