package response

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stream/dsp/filter/lowpass"
)

const minSize = 8

// Errors returned by Measure.
var (
	ErrNilFilter       = errors.New("response: nil filter")
	ErrInvalidSize     = errors.New("response: size must be a power of two >= 8")
	ErrInvalidTimestep = errors.New("response: timestep must be finite and > 0")
)

// Response is a one-sided frequency response, from DC to Nyquist.
type Response struct {
	Impulse     []float64 // recorded impulse response, Size samples
	Frequencies []float64 // bin centers in cycles per unit time
	Magnitude   []float64 // linear gain per bin
	MagnitudeDB []float64 // 20·log10(Magnitude)
	// Cutoff is the interpolated frequency at which the gain first falls
	// 3 dB below the DC gain. It is +Inf when that never happens below
	// Nyquist.
	Cutoff float64
}

// Measure resets f and measures its frequency response. f is left in
// a settled state afterwards; call Reset before reusing it on a stream.
func Measure(f lowpass.Filter, opts ...Option) (Response, error) {
	if isNil(f) {
		return Response{}, ErrNilFilter
	}

	cfg := ApplyOptions(opts...)
	n := cfg.Size
	if n < minSize || n&(n-1) != 0 {
		return Response{}, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if !(cfg.Timestep > 0) || math.IsInf(cfg.Timestep, 1) {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidTimestep, cfg.Timestep)
	}

	impulse, err := recordImpulse(f, n)
	if err != nil {
		return Response{}, err
	}

	in := make([]complex128, n)
	for i, v := range impulse {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Response{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Response{}, fmt.Errorf("response: forward FFT: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	res := Response{
		Impulse:     impulse,
		Frequencies: make([]float64, bins),
		Magnitude:   make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
	}
	vecmath.Magnitude(res.Magnitude, re, im)

	binWidth := 1 / (float64(n) * cfg.Timestep)
	for k := range bins {
		res.Frequencies[k] = float64(k) * binWidth
		res.MagnitudeDB[k] = ampToDB(res.Magnitude[k])
	}
	res.Cutoff = cutoff(res.Frequencies, res.Magnitude)

	return res, nil
}

// isNil also catches a nil pointer stored in a non-nil interface.
func isNil(f lowpass.Filter) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// recordImpulse settles f with n zeros and returns its response to a unit
// impulse over n samples.
func recordImpulse(f lowpass.Filter, n int) ([]float64, error) {
	f.Reset()
	for range n {
		if _, err := f.ProcessSample(0); err != nil {
			return nil, fmt.Errorf("response: settling filter: %w", err)
		}
	}

	h := make([]float64, n)
	for i := range h {
		x := 0.0
		if i == 0 {
			x = 1
		}
		y, err := f.ProcessSample(x)
		if err != nil {
			return nil, fmt.Errorf("response: recording impulse: %w", err)
		}
		h[i] = y
	}
	return h, nil
}

// cutoff finds the first -3 dB crossing relative to DC by linear
// interpolation between bins.
func cutoff(freqs, mag []float64) float64 {
	if len(mag) == 0 || mag[0] == 0 {
		return math.Inf(1)
	}
	target := mag[0] / math.Sqrt2
	for k := 1; k < len(mag); k++ {
		if mag[k] < target {
			frac := (mag[k-1] - target) / (mag[k-1] - mag[k])
			return freqs[k-1] + frac*(freqs[k]-freqs[k-1])
		}
	}
	return math.Inf(1)
}

func ampToDB(a float64) float64 {
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(a)
}
