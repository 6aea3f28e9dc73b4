package stream

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-stream/dsp/derivative"
	"github.com/cwbudde/algo-stream/dsp/filter/lowpass"
)

// ErrInvalidConfig is returned by [New] and [NewFromConfig] when a stage
// cannot be built from the configuration.
var ErrInvalidConfig = errors.New("stream: invalid config")

// Result holds the outputs produced for one input sample.
type Result struct {
	Derivative float64

	Smoothed    float64
	HasSmoothed bool

	Averaged    float64
	HasAveraged bool
}

// Processor runs a derivative estimator followed by optional low-pass
// filters. It is not safe for concurrent use.
type Processor struct {
	cfg Config

	deriv  derivative.Differentiator
	smooth *lowpass.Exponential
	avg    *lowpass.MovingAverage
}

// New builds a Processor from options.
func New(opts ...Option) (*Processor, error) {
	return NewFromConfig(ApplyOptions(opts...))
}

// NewFromConfig builds a Processor from an explicit configuration.
func NewFromConfig(cfg Config) (*Processor, error) {
	p := &Processor{cfg: cfg}

	if cfg.UseBearingDerivative {
		rate := cfg.MaxTurnRate
		if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("%w: max turn rate %v", ErrInvalidConfig, rate)
		}
		var opts []derivative.BearingOption
		if rate > 0 {
			opts = append(opts, derivative.WithMaxTurnRate(rate))
		}
		p.deriv = derivative.NewBearing(opts...)
	} else {
		p.deriv = derivative.New()
	}

	if cfg.SmoothingConstant != 0 {
		smooth, err := lowpass.NewExponential(cfg.SmoothingConstant)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		p.smooth = smooth
	}

	if cfg.WindowLength != 0 {
		avg, err := lowpass.NewMovingAverage(cfg.WindowLength)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		p.avg = avg
	}

	return p, nil
}

// Config returns the configuration the processor was built from.
func (p *Processor) Config() Config {
	return p.cfg
}

// ProcessSample differentiates one sample and forwards the derivative to
// the enabled filters. timestep must be positive.
func (p *Processor) ProcessSample(value, timestep float64) (Result, error) {
	res := Result{Derivative: p.deriv.ProcessSample(value, timestep)}

	if p.smooth != nil {
		y, err := p.smooth.ProcessSample(res.Derivative)
		if err != nil {
			return Result{}, fmt.Errorf("stream: smoothing: %w", err)
		}
		res.Smoothed, res.HasSmoothed = y, true
	}

	if p.avg != nil {
		y, err := p.avg.ProcessSample(res.Derivative)
		if err != nil {
			return Result{}, fmt.Errorf("stream: moving average: %w", err)
		}
		res.Averaged, res.HasAveraged = y, true
	}

	return res, nil
}

// Reset returns every stage to its freshly constructed state.
func (p *Processor) Reset() {
	p.deriv.Reset()
	if p.smooth != nil {
		p.smooth.Reset()
	}
	if p.avg != nil {
		p.avg.Reset()
	}
}
