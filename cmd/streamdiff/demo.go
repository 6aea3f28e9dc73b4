package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-stream/dsp/core"
	"github.com/cwbudde/algo-stream/dsp/signal"
	"github.com/cwbudde/algo-stream/dsp/stream"
	"github.com/cwbudde/algo-stream/measure/tracking"
)

type demoOptions struct {
	samples  int
	duration float64
	noise    float64
	seed     int64
	skip     int
	trace    bool
}

func newDemoCmd(a *app) *cobra.Command {
	var o demoOptions

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Differentiate a noisy t·sin(t) and score each stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.samples < 2 {
				return fmt.Errorf("samples must be >= 2: %d", o.samples)
			}
			if !(o.duration > 0) || math.IsInf(o.duration, 0) {
				return fmt.Errorf("duration must be finite and > 0: %v", o.duration)
			}

			p, err := a.newProcessor(cmd)
			if err != nil {
				return err
			}
			if p.Config().UseBearingDerivative {
				a.logger.Warn("bearing derivative enabled; t·sin(t) is not an angle")
			}
			return runDemo(cmd.OutOrStdout(), p, o, a.logger)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&o.samples, "samples", 100, "number of samples")
	flags.Float64Var(&o.duration, "duration", 10, "time span covered by the samples")
	flags.Float64Var(&o.noise, "noise", 0.05, "uniform noise amplitude added to the signal")
	flags.Int64Var(&o.seed, "seed", 1, "noise seed")
	flags.IntVar(&o.skip, "skip", 5, "leading samples excluded from the metrics")
	flags.BoolVar(&o.trace, "trace", false, "print every sample before the summary")
	return cmd
}

// stageTrace collects the per-stage derivative estimates of a demo run.
type stageTrace struct {
	raw      []float64
	smoothed []float64
	averaged []float64
}

func runDemo(w io.Writer, p *stream.Processor, o demoOptions, logger *zap.Logger) error {
	ts := o.duration / float64(o.samples-1)
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithTimestep(ts)},
		signal.WithSeed(o.seed),
	)

	values, exact, err := gen.Symbolic(o.samples)
	if err != nil {
		return err
	}
	if o.noise > 0 {
		if values, err = gen.AddNoise(values, o.noise); err != nil {
			return err
		}
	}
	times, err := gen.Times(o.samples)
	if err != nil {
		return err
	}

	var tr stageTrace
	for i, v := range values {
		res, err := p.ProcessSample(v, ts)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
		tr.raw = append(tr.raw, res.Derivative)
		if res.HasSmoothed {
			tr.smoothed = append(tr.smoothed, res.Smoothed)
		}
		if res.HasAveraged {
			tr.averaged = append(tr.averaged, res.Averaged)
		}
	}

	if o.trace {
		if err := writeTrace(w, times, values, exact, tr); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	rawMetrics, err := tracking.Compare(tr.raw, exact, tracking.WithSkip(o.skip))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "stage\tbias\tstddev\trms\tmax\tgain_dB")
	writeMetrics(tw, "raw", rawMetrics, rawMetrics)

	for _, stage := range []struct {
		name string
		est  []float64
	}{
		{"smoothed", tr.smoothed},
		{"averaged", tr.averaged},
	} {
		if stage.est == nil {
			continue
		}
		m, err := tracking.Compare(stage.est, exact, tracking.WithSkip(o.skip))
		if err != nil {
			return fmt.Errorf("%s: %w", stage.name, err)
		}
		writeMetrics(tw, stage.name, m, rawMetrics)
		logger.Info("stage scored",
			zap.String("stage", stage.name),
			zap.Float64("rms", m.RMS),
			zap.Float64("gainDB", tracking.GainDB(rawMetrics, m)),
		)
	}

	return tw.Flush()
}

func writeMetrics(w io.Writer, name string, m, baseline tracking.Metrics) {
	fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f@%d\t%.2f\n",
		name, m.Bias, m.StdDev, m.RMS, m.MaxAbs, m.MaxAbsPos, tracking.GainDB(baseline, m))
}

func writeTrace(w io.Writer, times, values, exact []float64, tr stageTrace) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "t\tvalue\texact\traw"
	if tr.smoothed != nil {
		header += "\tsmoothed"
	}
	if tr.averaged != nil {
		header += "\taveraged"
	}
	fmt.Fprintln(tw, header)

	for i := range times {
		line := fmt.Sprintf("%.4f\t%.5f\t%.5f\t%.5f", times[i], values[i], exact[i], tr.raw[i])
		if tr.smoothed != nil {
			line += fmt.Sprintf("\t%.5f", tr.smoothed[i])
		}
		if tr.averaged != nil {
			line += fmt.Sprintf("\t%.5f", tr.averaged[i])
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}
