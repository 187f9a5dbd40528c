package core

import "math/rand/v2"

// RNG is a seeded random source. It satisfies game.FoodPicker.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Pick returns a uniformly chosen element of candidates.
// It panics if candidates is empty.
func (r *RNG) Pick(candidates []int) int {
	return candidates[r.r.IntN(len(candidates))]
}
