package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-stream/dsp/stream"
)

// app carries the flags and logger shared by all subcommands.
type app struct {
	smoothing  float64
	window     int
	bearing    bool
	maxTurn    float64
	configPath string
	verbose    bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "streamdiff",
		Short:         "Differentiate and low-pass filter sample streams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.Float64Var(&a.smoothing, "smoothing", 0, "exponential smoothing constant (>= 1, 0 disables)")
	flags.IntVar(&a.window, "window", 0, "moving average window length (0 disables)")
	flags.BoolVar(&a.bearing, "bearing", false, "treat input as a bearing wrapped onto (-pi, pi]")
	flags.Float64Var(&a.maxTurn, "max-turn", 0, "bearing wraparound threshold in rad per unit time (0 = default)")
	flags.StringVar(&a.configPath, "config", "", "YAML file with smoothing_constant, window_length, use_bearing_derivative, max_turn_rate")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "human-readable debug logging")

	root.AddCommand(newRunCmd(a), newDemoCmd(a), newResponseCmd(a))
	return root
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if verbose {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.WarnLevel))
}

// streamConfig merges the optional YAML file with explicitly set flags.
// Flags win over the file.
func (a *app) streamConfig(cmd *cobra.Command) (stream.Config, error) {
	cfg := stream.DefaultConfig()

	if a.configPath != "" {
		loaded, err := loadConfig(a.configPath)
		if err != nil {
			return stream.Config{}, err
		}
		cfg = loaded
		a.logger.Debug("loaded config", zap.String("path", a.configPath), zap.Any("config", cfg))
	}

	flags := cmd.Flags()
	if flags.Changed("smoothing") {
		cfg.SmoothingConstant = a.smoothing
	}
	if flags.Changed("window") {
		cfg.WindowLength = a.window
	}
	if flags.Changed("bearing") {
		cfg.UseBearingDerivative = a.bearing
	}
	if flags.Changed("max-turn") {
		cfg.MaxTurnRate = a.maxTurn
		if a.maxTurn != 0 {
			cfg.UseBearingDerivative = true
		}
	}
	return cfg, nil
}

func (a *app) newProcessor(cmd *cobra.Command) (*stream.Processor, error) {
	cfg, err := a.streamConfig(cmd)
	if err != nil {
		return nil, err
	}
	p, err := stream.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("processor ready",
		zap.Float64("smoothing", cfg.SmoothingConstant),
		zap.Int("window", cfg.WindowLength),
		zap.Bool("bearing", cfg.UseBearingDerivative),
		zap.Float64("maxTurn", cfg.MaxTurnRate),
	)
	return p, nil
}

func loadConfig(path string) (stream.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return stream.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg stream.Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return stream.Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
