package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute tolerance).
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > eps || math.IsNaN(diff) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// Feed runs step over values in order and collects one output per input.
func Feed(values []float64, step func(float64) float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = step(v)
	}
	return out
}

// FeedErr is like Feed for fallible steps. It fails t on the first error.
func FeedErr(t *testing.T, values []float64, step func(float64) (float64, error)) []float64 {
	t.Helper()
	out := make([]float64, len(values))
	for i, v := range values {
		y, err := step(v)
		if err != nil {
			t.Fatalf("sample %d (%v): %v", i, v, err)
		}
		out[i] = y
	}
	return out
}
