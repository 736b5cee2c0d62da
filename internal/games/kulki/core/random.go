package core

import (
	"math/rand"
	"time"
)

// Random is the source of randomness used for spawning.
// *rand.Rand satisfies it; tests substitute a scripted source.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// NewRandom returns a seeded math/rand source.
// A zero seed picks one from the current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
