package core

const defaultTimestep = 0.1

// ProcessorConfig defines settings shared by stream sources and analyzers.
type ProcessorConfig struct {
	// Timestep is the nominal duration between consecutive samples.
	Timestep float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 10 Hz stream configuration.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		Timestep: defaultTimestep,
	}
}

// WithTimestep sets the nominal sample spacing. Non-positive or non-finite
// values are ignored.
func WithTimestep(timestep float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if timestep > 0 && IsFinite(timestep) {
			cfg.Timestep = timestep
		}
	}
}

// WithSampleRate sets the timestep from a rate in samples per unit time.
func WithSampleRate(rate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if rate > 0 && IsFinite(rate) {
			cfg.Timestep = 1 / rate
		}
	}
}

// SampleRate returns the inverse of the configured timestep.
func (cfg ProcessorConfig) SampleRate() float64 {
	return 1 / cfg.Timestep
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
