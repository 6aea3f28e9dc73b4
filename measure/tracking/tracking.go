package tracking

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Errors returned by Compare.
var (
	ErrEmptyInput     = errors.New("tracking: no samples to compare")
	ErrLengthMismatch = errors.New("tracking: estimate and reference lengths differ")
)

// Metrics summarizes the residual estimate - reference.
type Metrics struct {
	Length    int     // number of compared samples (after skipping)
	Bias      float64 // mean residual
	StdDev    float64 // sample standard deviation of the residual
	RMS       float64 // root-mean-square residual
	MaxAbs    float64 // largest absolute residual
	MaxAbsPos int     // index of MaxAbs in the original (unskipped) slices
}

type config struct {
	skip int
}

// Option configures Compare.
type Option func(*config)

// WithSkip excludes the first n samples from the comparison.
// Negative values are ignored.
func WithSkip(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.skip = n
		}
	}
}

// Compare computes residual statistics of estimate against reference.
func Compare(estimate, reference []float64, opts ...Option) (Metrics, error) {
	if len(estimate) != len(reference) {
		return Metrics{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(estimate), len(reference))
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.skip >= len(estimate) {
		return Metrics{}, ErrEmptyInput
	}

	est := estimate[cfg.skip:]
	ref := reference[cfg.skip:]
	n := len(est)

	residual := make([]float64, n)
	vecmath.ScaleBlock(residual, ref, -1)
	vecmath.AddBlockInPlace(residual, est)

	squared := make([]float64, n)
	vecmath.MulBlock(squared, residual, residual)

	m := Metrics{
		Length: n,
		RMS:    math.Sqrt(floats.Sum(squared) / float64(n)),
	}

	if n > 1 {
		m.Bias, m.StdDev = stat.MeanStdDev(residual, nil)
	} else {
		m.Bias = residual[0]
	}

	for i, r := range residual {
		if a := math.Abs(r); a > m.MaxAbs || i == 0 {
			m.MaxAbs = a
			m.MaxAbsPos = i + cfg.skip
		}
	}

	return m, nil
}

// GainDB returns how much lower the RMS error of improved is than that of
// baseline, in dB. Positive values mean improved tracks more closely.
func GainDB(baseline, improved Metrics) float64 {
	if improved.RMS == 0 {
		return math.Inf(1)
	}
	if baseline.RMS == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(baseline.RMS/improved.RMS)
}
