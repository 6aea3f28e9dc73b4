package testutil

import "testing"

func TestRequireSliceNearlyEqualPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3 + 1e-13}, 1e-12)
}

func TestRequireNearlyEqualPass(t *testing.T) {
	RequireNearlyEqual(t, 0.1+0.2, 0.3, 1e-15)
}

func TestRequireFinitePass(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestFeed(t *testing.T) {
	sum := 0.0
	got := Feed([]float64{1, 2, 3}, func(x float64) float64 {
		sum += x
		return sum
	})
	RequireSliceNearlyEqual(t, got, []float64{1, 3, 6}, 0)
}

func TestFeedErr(t *testing.T) {
	got := FeedErr(t, []float64{1, 2}, func(x float64) (float64, error) {
		return 2 * x, nil
	})
	RequireSliceNearlyEqual(t, got, []float64{2, 4}, 0)
}
