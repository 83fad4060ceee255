package board

import (
	"math/rand"
	"time"
)

// Sampler picks k distinct positions from [0, n).
type Sampler interface {
	Sample(n, k int) []int
}

// RandSampler samples without replacement using a partial Fisher-Yates shuffle.
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler creates a sampler over rng. A nil rng is seeded from the clock.
func NewRandSampler(rng *rand.Rand) *RandSampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandSampler{rng: rng}
}

// Sample returns k distinct ints from [0, n) in random order.
func (s *RandSampler) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// FixedSampler always returns its stored positions, for reproducible boards.
type FixedSampler []int

// Sample returns the first k stored positions. n is ignored; the grid validates
// the result.
func (s FixedSampler) Sample(n, k int) []int {
	if k > len(s) {
		k = len(s)
	}
	if k < 0 {
		k = 0
	}
	out := make([]int, k)
	copy(out, s[:k])
	return out
}
