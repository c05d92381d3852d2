package fastmath

import "math"

// InvSqrtMagic is the bit-level seed constant for [InvSqrt].
// It has a lower average relative error than the historical 0x5f3759df.
const InvSqrtMagic uint32 = 0x5f375a86

// minNormalFloat32 is the smallest positive normal float32.
const minNormalFloat32 = 0x1p-126

// InvSqrt approximates 1/sqrt(n).
//
// The float32 bit pattern of n is reinterpreted as an integer, halved and
// subtracted from [InvSqrtMagic], then reinterpreted back and refined with a
// single Newton-Raphson step for f(y) = 1/y^2 - n.
func InvSqrt(n float32) float32 {
	x2 := n * 0.5
	i := math.Float32bits(n)
	i = InvSqrtMagic - (i >> 1)
	y := math.Float32frombits(i)
	y *= 1.5 - (x2 * y * y)

	checkResult(y)
	return y
}

// InvSqrtBlock computes dst[i] = InvSqrt(src[i]).
// dst must be at least as long as src.
func InvSqrtBlock(dst, src []float32) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = InvSqrt(v)
	}
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
// Coincident points yield exactly 0. When the squared distance leaves the
// normal float32 range the result is computed with math.Hypot, so it is
// never negative and overflows only to +Inf.
func Distance(x1, y1, x2, y2 float32) float32 {
	dx := x2 - x1
	dy := y2 - y1
	d2 := dx*dx + dy*dy
	if d2 == 0 || (d2 >= minNormalFloat32 && d2 <= math.MaxFloat32) {
		return d2 * InvSqrt(d2)
	}
	return float32(math.Hypot(float64(dx), float64(dy)))
}
