// SPDX-License-Identifier: MIT
package themes

import (
	"math/rand"
	"time"
)

// Source supplies the randomness behind palette generation and color
// derivation. Injecting a fixed-seed source makes every generator in
// this package reproducible.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a time-seeded source for production use.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededSource returns a deterministic source for tests.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// between draws uniformly from [lo, hi).
func between(rng Source, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// chance reports true with probability p.
func chance(rng Source, p float64) bool {
	return rng.Float64() < p
}
