package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-stream/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Generator creates deterministic sample streams spaced by a fixed timestep.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Timestep returns the spacing between generated samples.
func (g *Generator) Timestep() float64 {
	return g.cfg.Timestep
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed changes the noise seed for subsequent calls.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Times returns the sample instants 0, dt, 2dt, ...
func (g *Generator) Times(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("times samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = float64(i) * g.cfg.Timestep
	}
	return out, nil
}

// Symbolic samples f(t) = t·sin(t) and its exact derivative
// f'(t) = t·cos(t) + sin(t). It is a convenient reference for judging a
// numerical derivative.
func (g *Generator) Symbolic(samples int) (values, derivative []float64, err error) {
	times, err := g.Times(samples)
	if err != nil {
		return nil, nil, err
	}
	values = make([]float64, samples)
	derivative = make([]float64, samples)
	for i, t := range times {
		s, c := math.Sincos(t)
		values[i] = t * s
		derivative[i] = t*c + s
	}
	return values, derivative, nil
}

// Bearing samples a body turning at a constant rate (radians per unit time)
// from start, wrapped onto (-π, π].
func (g *Generator) Bearing(start, rate float64, samples int) ([]float64, error) {
	times, err := g.Times(samples)
	if err != nil {
		return nil, err
	}
	if !core.IsFinite(start) || !core.IsFinite(rate) {
		return nil, fmt.Errorf("bearing start and rate must be finite: %f, %f", start, rate)
	}
	out := make([]float64, samples)
	for i, t := range times {
		out[i] = core.WrapAngle(start + rate*t)
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// AddNoise returns a copy of data with white noise of the given amplitude
// added. data is not modified.
func (g *Generator) AddNoise(data []float64, amplitude float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("noise input must not be empty")
	}
	noise, err := g.WhiteNoise(amplitude, len(data))
	if err != nil {
		return nil, err
	}
	return floats.AddTo(make([]float64, len(data)), data, noise), nil
}
