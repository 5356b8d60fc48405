package utils

import (
	"math/rand/v2"
	"time"
)

// NewRNG creates a deterministic PCG generator. A zero seed is replaced by
// one derived from the clock; the seed actually used is returned.
func NewRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0)), seed
}
