// Package fuzz provides the seeded randomization primitive the stateful
// searching sharder uses to produce a fresh coordinate and endpoint
// ordering on every recursive invocation, while remaining reproducible
// for a caller that fixes the seed.
package fuzz

import "math/rand"

// Sampler holds a seeded RNG and produces randomized orderings.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler seeded with the given value. The same
// seed, driven through the same sequence of Shuffle calls, always
// reproduces the same orderings.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))} //nolint:gosec
}

// Shuffle permutes s in place using the Sampler's RNG (Fisher-Yates,
// via rand.Shuffle).
func Shuffle[T any](s *Sampler, items []T) {
	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
