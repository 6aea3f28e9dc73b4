package lowpass

import (
	"fmt"

	"github.com/cwbudde/algo-stream/dsp/core"
)

// Exponential is a first-order exponential smoother:
//
//	y[n] = y[n-1] + (x[n] - y[n-1]) / smoothing
//
// The first sample initializes y and produces 0, since a single sample
// carries no filtered information yet.
type Exponential struct {
	smoothing float64

	prev   float64
	primed bool
}

// NewExponential returns a smoother with the given smoothing constant.
// The constant must be finite and at least 1.
func NewExponential(smoothing float64) (*Exponential, error) {
	if !core.IsFinite(smoothing) || smoothing < 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSmoothing, smoothing)
	}
	return &Exponential{smoothing: smoothing}, nil
}

// Smoothing returns the configured smoothing constant, or 0 for a zero-value
// filter.
func (e *Exponential) Smoothing() float64 {
	return e.smoothing
}

// ProcessSample feeds one sample and returns the smoothed value.
func (e *Exponential) ProcessSample(x float64) (float64, error) {
	if e.smoothing == 0 {
		return 0, fmt.Errorf("%w: smoothing constant not set", ErrNotConfigured)
	}

	if !e.primed {
		e.prev = x
		e.primed = true
		return 0, nil
	}

	if e.smoothing == 1 {
		e.prev = x
	} else {
		e.prev += (x - e.prev) / e.smoothing
	}
	return e.prev, nil
}

// Reset discards the filter history. The smoothing constant is kept.
func (e *Exponential) Reset() {
	e.prev = 0
	e.primed = false
}
