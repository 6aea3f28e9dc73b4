package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-stream/dsp/core"
)

// Ramp returns start, start+step, start+2*step, ... with n elements.
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Constant returns n copies of value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// WrappedRotation returns the bearing of a body turning at a constant rate,
// sampled every timestep and wrapped onto (-π, π].
func WrappedRotation(start, rate, timestep float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = core.WrapAngle(start + rate*timestep*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude]
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
