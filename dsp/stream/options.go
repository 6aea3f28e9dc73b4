package stream

// Config selects and parameterizes the processing stages.
//
// Zero values disable the corresponding low-pass filter. The struct is
// YAML-decodable so tools can load it from a file.
type Config struct {
	// SmoothingConstant enables exponential smoothing when non-zero. It must
	// be at least 1.
	SmoothingConstant float64 `yaml:"smoothing_constant"`
	// WindowLength enables the moving average when non-zero. It must be
	// positive.
	WindowLength int `yaml:"window_length"`
	// UseBearingDerivative selects the wraparound-aware estimator.
	UseBearingDerivative bool `yaml:"use_bearing_derivative"`
	// MaxTurnRate tunes the bearing estimator. 0 selects the default.
	MaxTurnRate float64 `yaml:"max_turn_rate"`
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a plain derivative with both filters disabled.
func DefaultConfig() Config {
	return Config{}
}

// WithSmoothing enables exponential smoothing with the given constant.
func WithSmoothing(constant float64) Option {
	return func(cfg *Config) {
		cfg.SmoothingConstant = constant
	}
}

// WithWindowLength enables the moving average over length samples.
func WithWindowLength(length int) Option {
	return func(cfg *Config) {
		cfg.WindowLength = length
	}
}

// WithBearingDerivative selects the wraparound-aware derivative.
func WithBearingDerivative() Option {
	return func(cfg *Config) {
		cfg.UseBearingDerivative = true
	}
}

// WithMaxTurnRate sets the bearing estimator threshold. It implies
// [WithBearingDerivative].
func WithMaxTurnRate(rate float64) Option {
	return func(cfg *Config) {
		cfg.UseBearingDerivative = true
		cfg.MaxTurnRate = rate
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
