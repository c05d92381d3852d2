package testutil

import (
	"math"
	"testing"
)

func TestLogSweepEndpoints(t *testing.T) {
	s := LogSweep(1e-3, 1e3, 7)
	if len(s) != 7 {
		t.Fatalf("len = %d, want 7", len(s))
	}
	RequireRelErr(t, s[0], 1e-3, 1e-6)
	RequireRelErr(t, s[3], 1, 1e-6)
	RequireRelErr(t, s[6], 1e3, 1e-6)

	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			t.Fatalf("sweep not increasing at %d: %v", i, s)
		}
	}
}

func TestDeterministicPositiveReproducible(t *testing.T) {
	a := DeterministicPositive(42, 0.5, 2, 64)
	b := DeterministicPositive(42, 0.5, 2, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
		if a[i] < 0.5 || a[i] > 2 {
			t.Fatalf("index %d: %v out of range", i, a[i])
		}
	}
	RequireFinite(t, a)
}

func TestExactInvSqrt(t *testing.T) {
	got := ExactInvSqrt([]float32{1, 4, 100})
	want := []float64{1, 0.5, 0.1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
