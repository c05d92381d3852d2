package testutil

import (
	"math"
	"math/rand"
)

// LogSweep returns n float32 values spaced logarithmically from lo to hi
// inclusive. lo and hi must be > 0 and n >= 2.
func LogSweep(lo, hi float64, n int) []float32 {
	out := make([]float32, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = float32(lo * math.Exp(ratio*float64(i)/float64(n-1)))
	}
	return out
}

// DeterministicPositive generates positive float32 values in [lo, hi) with a
// fixed seed for reproducibility.
func DeterministicPositive(seed int64, lo, hi float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32(lo + rng.Float64()*(hi-lo))
	}
	return out
}

// ExactInvSqrt returns 1/sqrt(x) in float64 for each x.
func ExactInvSqrt(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = 1 / math.Sqrt(float64(v))
	}
	return out
}
