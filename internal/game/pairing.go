package game

import (
	"fmt"
	"math/rand"
)

// GeneratePairs returns n pair ids in uniformly random order. Every id in
// 0..n/2-1 appears exactly twice. kinds is the number of distinct card faces
// available, so n may not exceed 2*kinds.
func GeneratePairs(rng *rand.Rand, kinds, n int) ([]int, error) {
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("%w: card count %d must be an even number >= 2", ErrInvalidConfig, n)
	}
	if n > 2*kinds {
		return nil, fmt.Errorf("%w: card count %d exceeds twice the card kinds (%d)", ErrInvalidConfig, n, kinds)
	}
	half := n / 2
	pairs := make([]int, 0, n)
	for i := 0; i < half; i++ {
		pairs = append(pairs, i)
	}
	pairs = append(pairs, pairs...)
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	return pairs, nil
}

// mustValidPairs panics unless every id in 0..len(pairs)/2-1 occurs exactly
// twice. A failure here is a programming error, not a runtime condition.
func mustValidPairs(pairs []int) {
	half := len(pairs) / 2
	counts := make([]int, half)
	for i, p := range pairs {
		if p < 0 || p >= half {
			panic(fmt.Sprintf("pairing: slot %d has out-of-range pair id %d (want 0..%d)", i, p, half-1))
		}
		counts[p]++
	}
	for id, c := range counts {
		if c != 2 {
			panic(fmt.Sprintf("pairing: pair id %d occurs %d times", id, c))
		}
	}
}
