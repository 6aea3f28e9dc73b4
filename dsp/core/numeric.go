package core

import "math"

const defaultEpsilon = 1e-12

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// WrapAngle maps theta onto the half-open interval (-π, π].
// NaN and ±Inf are returned as NaN.
func WrapAngle(theta float64) float64 {
	if !IsFinite(theta) {
		return math.NaN()
	}

	w := math.Mod(theta+math.Pi, TwoPi)
	if w <= 0 {
		w += TwoPi
	}

	return w - math.Pi
}

// AngleDiff returns the signed shortest rotation from a to b, in (-π, π].
func AngleDiff(a, b float64) float64 {
	return WrapAngle(b - a)
}
