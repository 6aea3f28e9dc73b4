package testutil

import (
	"math"
	"testing"
)

func TestRamp(t *testing.T) {
	RequireSliceNearlyEqual(t, Ramp(1, 0.5, 4), []float64{1, 1.5, 2, 2.5}, 0)
}

func TestConstant(t *testing.T) {
	RequireSliceNearlyEqual(t, Constant(7, 3), []float64{7, 7, 7}, 0)
}

func TestWrappedRotationStaysInRange(t *testing.T) {
	s := WrappedRotation(0, 2, 0.1, 200)
	for i, v := range s {
		if v <= -math.Pi || v > math.Pi {
			t.Fatalf("s[%d] = %v outside (-pi, pi]", i, v)
		}
	}

	wraps := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			wraps++
		}
	}
	// 2 rad/s for 19.9 s is a little over six turns.
	if wraps != 6 {
		t.Fatalf("wraps = %d, want 6", wraps)
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if math.Abs(a[i]) > 1 {
			t.Fatalf("a[%d] = %v exceeds amplitude", i, a[i])
		}
	}
}
