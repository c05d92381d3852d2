package fastmath

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonPositive reports an input outside the positive domain.
	ErrNonPositive = errors.New("fastmath: input must be > 0")

	// ErrNotFinite reports a NaN or infinite input.
	ErrNotFinite = errors.New("fastmath: input must be finite")

	// ErrLengthMismatch reports slices of different lengths.
	ErrLengthMismatch = errors.New("fastmath: slices must have same length")
)

// InvSqrtChecked is [InvSqrt] with input validation. For valid input the
// result is identical to InvSqrt(n).
func InvSqrtChecked(n float32) (float32, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotFinite, n)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrNonPositive, n)
	}
	return InvSqrt(n), nil
}

// IntegerLog2Checked is [IntegerLog2] restricted to val >= 1.
func IntegerLog2Checked(val int32) (int32, error) {
	if val < 1 {
		return 0, fmt.Errorf("%w: %d", ErrNonPositive, val)
	}
	return IntegerLog2(val), nil
}
