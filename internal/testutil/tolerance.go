package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RelErr returns |got-want|/|want| with got widened to float64.
// A zero want yields the absolute error.
func RelErr(got float32, want float64) float64 {
	diff := math.Abs(float64(got) - want)
	if want == 0 {
		return diff
	}
	return diff / math.Abs(want)
}

// RequireRelErr fails t if got deviates from want by more than tol
// (relative tolerance).
func RequireRelErr(t *testing.T, got float32, want, tol float64) {
	t.Helper()
	if e := RelErr(got, want); e > tol || math.IsNaN(e) {
		t.Fatalf("got %v, want %v (rel err %v > tol %v)", got, want, e, tol)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxRelErr returns the maximum relative error between got and want.
// Returns an error if the slices differ in length.
func MaxRelErr(got []float32, want []float64) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	maxErr := 0.0
	for i := range got {
		if e := RelErr(got[i], want[i]); e > maxErr {
			maxErr = e
		}
	}
	return maxErr, nil
}
