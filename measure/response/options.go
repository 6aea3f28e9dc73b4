package response

import "github.com/cwbudde/algo-stream/dsp/core"

const defaultSize = 1024

// Config holds measurement parameters.
type Config struct {
	core.ProcessorConfig
	// Size is the FFT length and the number of impulse response samples
	// recorded. It must be a power of two.
	Size int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 1024-point measurement at the default timestep.
func DefaultConfig() Config {
	return Config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		Size:            defaultSize,
	}
}

// WithTimestep sets the sample spacing used to label frequencies.
// Validation happens in [Measure].
func WithTimestep(timestep float64) Option {
	return func(cfg *Config) {
		cfg.Timestep = timestep
	}
}

// WithSize sets the FFT length. Validation happens in [Measure].
func WithSize(size int) Option {
	return func(cfg *Config) {
		cfg.Size = size
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
