package gen

import (
	"fmt"
	"math/rand/v2"
)

// Source is a seedable pseudo-random generator.
//
// *math/rand/v2.Rand satisfies it, as does [ByteSource].
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Uint64 returns a uniform 64-bit value.
	Uint64() uint64
	// Float32 returns a uniform float32 in [0, 1).
	Float32() float32
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// NewSource returns a PCG-backed source seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// IntRange returns a uniform int in the half-open range [lo, hi).
// It panics if hi <= lo.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		panic(fmt.Sprintf("gen: IntRange: empty range [%d, %d)", lo, hi))
	}

	return lo + src.IntN(hi-lo)
}

// IntRangeInclusive returns a uniform int in the closed range [lo, hi].
// It panics if hi < lo.
func IntRangeInclusive(src Source, lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("gen: IntRangeInclusive: empty range [%d, %d]", lo, hi))
	}

	return lo + src.IntN(hi-lo+1)
}

// Bernoulli returns true with probability p. It panics if p is outside
// [0, 1].
func Bernoulli(src Source, p float64) bool {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("gen: Bernoulli: probability %v outside [0, 1]", p))
	}

	return src.Float64() < p
}

// ChooseOne returns a uniformly chosen element of candidates.
// It panics if candidates is empty.
func ChooseOne[T any](src Source, candidates []T) T {
	if len(candidates) == 0 {
		panic("gen: ChooseOne: no candidates")
	}

	return candidates[src.IntN(len(candidates))]
}
