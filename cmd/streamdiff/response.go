package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-stream/dsp/filter/lowpass"
	"github.com/cwbudde/algo-stream/measure/response"
)

var errNoFilters = errors.New("no low-pass filter configured; set --smoothing or --window")

func newResponseCmd(a *app) *cobra.Command {
	var (
		timestep float64
		size     int
		rows     int
	)

	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the frequency response of the configured low-pass filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(timestep > 0) || math.IsInf(timestep, 1) {
				return fmt.Errorf("timestep must be finite and > 0: %v", timestep)
			}

			cfg, err := a.streamConfig(cmd)
			if err != nil {
				return err
			}

			var filters []namedFilter
			if cfg.SmoothingConstant != 0 {
				f, err := lowpass.NewExponential(cfg.SmoothingConstant)
				if err != nil {
					return err
				}
				filters = append(filters, namedFilter{fmt.Sprintf("exponential(%g)", cfg.SmoothingConstant), f})
			}
			if cfg.WindowLength != 0 {
				f, err := lowpass.NewMovingAverage(cfg.WindowLength)
				if err != nil {
					return err
				}
				filters = append(filters, namedFilter{fmt.Sprintf("moving-average(%d)", cfg.WindowLength), f})
			}
			if len(filters) == 0 {
				return errNoFilters
			}

			resps := make([]response.Response, len(filters))
			for i, nf := range filters {
				r, err := response.Measure(nf.filter, response.WithTimestep(timestep), response.WithSize(size))
				if err != nil {
					return fmt.Errorf("%s: %w", nf.name, err)
				}
				resps[i] = r
				a.logger.Debug("measured response", zap.String("filter", nf.name), zap.Float64("cutoff", r.Cutoff))
			}

			return writeResponses(cmd.OutOrStdout(), filters, resps, rows)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&timestep, "timestep", 0.1, "sample spacing used for the frequency axis")
	flags.IntVar(&size, "size", 1024, "impulse length and FFT size (power of two)")
	flags.IntVar(&rows, "rows", 16, "number of frequency rows to print")
	return cmd
}

type namedFilter struct {
	name   string
	filter lowpass.Filter
}

func writeResponses(w io.Writer, filters []namedFilter, resps []response.Response, rows int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "filter\tcutoff\n")
	for i, nf := range filters {
		c := "none"
		if !math.IsInf(resps[i].Cutoff, 1) {
			c = fmt.Sprintf("%.5g", resps[i].Cutoff)
		}
		fmt.Fprintf(tw, "%s\t%s\n", nf.name, c)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	bins := len(resps[0].Frequencies)
	if rows < 2 {
		rows = 2
	}
	if rows > bins {
		rows = bins
	}

	fmt.Fprintln(w)
	header := "freq"
	for _, nf := range filters {
		header += "\t" + nf.name + "_dB"
	}
	fmt.Fprintln(tw, header)

	for r := 0; r < rows; r++ {
		k := r * (bins - 1) / (rows - 1)
		line := fmt.Sprintf("%.5g", resps[0].Frequencies[k])
		for _, resp := range resps {
			line += fmt.Sprintf("\t%.2f", resp.MagnitudeDB[k])
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}
