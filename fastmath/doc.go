// Package fastmath provides two scalar approximations intended to be called
// from host languages that compute them slowly.
//
// These functions trade a small amount of accuracy for speed and are pure,
// allocation-free and safe for concurrent use.
//
// # Accuracy Characteristics
//
// InvSqrt: bit-level initial guess plus one Newton-Raphson step, <0.2% relative
// error for every positive normal float32.
//
// IntegerLog2: exact floor(log2(v)) for v >= 1.
//
// # Domain
//
// Neither function validates its input. InvSqrt on zero, negative, NaN or Inf
// returns a deterministic but meaningless value; IntegerLog2 returns 0 for 0
// and 31 for any negative value. Use [InvSqrtChecked] and [IntegerLog2Checked]
// when out-of-domain input must be reported.
//
// # Debug Builds
//
// Building with the mathcdebug tag makes InvSqrt panic on a NaN result.
package fastmath
