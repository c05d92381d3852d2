package fastmath

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for per-bin gains.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) ([]float64, *scratchBuf) {
	buf := scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}
	return buf.data, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// ReciprocalMagnitude computes dst[k] ≈ 1/sqrt(re[k]^2 + im[k]^2).
//
// The power is computed with the SIMD kernels of algo-vecmath and the
// reciprocal root with [InvSqrt]. Powers outside the normal float32 range
// use 1/math.Sqrt instead. A zero power yields a finite gain, so zero bins
// scaled by it stay zero. All three slices must have the same length.
func ReciprocalMagnitude(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
	for k, p := range dst {
		if p == 0 || (p >= minNormalFloat32 && p <= math.MaxFloat32) {
			dst[k] = float64(InvSqrt(float32(p)))
		} else {
			dst[k] = 1 / math.Sqrt(p)
		}
	}
}

// NormalizeParts scales every complex bin (re[k], im[k]) to unit magnitude
// in place. Bins with zero magnitude stay zero.
func NormalizeParts(re, im []float64) error {
	if len(re) != len(im) {
		return ErrLengthMismatch
	}
	if len(re) == 0 {
		return nil
	}

	gain, buf := getScratch(len(re))
	defer putScratch(buf)

	ReciprocalMagnitude(gain, re, im)
	vecmath.MulBlockInPlace(re, gain)
	vecmath.MulBlockInPlace(im, gain)
	return nil
}
