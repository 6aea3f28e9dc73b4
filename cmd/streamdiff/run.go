package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-stream/dsp/stream"
)

type sample struct {
	value    float64
	timestep float64
}

func newRunCmd(a *app) *cobra.Command {
	var timestep float64

	cmd := &cobra.Command{
		Use:   "run [file.csv]",
		Short: "Process value[,timestep] rows from a CSV file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if timestep <= 0 {
				return fmt.Errorf("timestep must be > 0: %v", timestep)
			}

			p, err := a.newProcessor(cmd)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in, name = f, args[0]
			}

			samples, err := readSamples(in, timestep)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			a.logger.Debug("read samples", zap.String("source", name), zap.Int("count", len(samples)))

			return runSamples(cmd.OutOrStdout(), p, samples, a.logger)
		},
	}

	cmd.Flags().Float64Var(&timestep, "timestep", 0.1, "timestep for rows without a timestep column")
	return cmd
}

// readSamples parses "value[,timestep]" rows. Lines starting with '#' are
// comments and a first row whose value field is not a number is treated as
// a header.
func readSamples(r io.Reader, defaultTimestep float64) ([]sample, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []sample
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if row == 1 && isHeader(rec) {
			continue
		}

		s, err := parseRecord(rec, defaultTimestep)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		out = append(out, s)
	}

	if len(out) == 0 {
		return nil, errors.New("no samples")
	}
	return out, nil
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	return err != nil
}

func parseRecord(rec []string, defaultTimestep float64) (sample, error) {
	if len(rec) == 0 || len(rec) > 2 {
		return sample{}, fmt.Errorf("want 1 or 2 fields, got %d", len(rec))
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	if err != nil {
		return sample{}, fmt.Errorf("value: %w", err)
	}

	s := sample{value: v, timestep: defaultTimestep}
	if len(rec) == 2 {
		ts, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return sample{}, fmt.Errorf("timestep: %w", err)
		}
		if ts <= 0 {
			return sample{}, fmt.Errorf("timestep must be > 0: %v", ts)
		}
		s.timestep = ts
	}
	return s, nil
}

func runSamples(w io.Writer, p *stream.Processor, samples []sample, logger *zap.Logger) error {
	cfg := p.Config()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "n\tvalue\ttimestep\tderivative"
	if cfg.SmoothingConstant != 0 {
		header += "\tsmoothed"
	}
	if cfg.WindowLength != 0 {
		header += "\taveraged"
	}
	fmt.Fprintln(tw, header)

	for i, s := range samples {
		res, err := p.ProcessSample(s.value, s.timestep)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}

		line := fmt.Sprintf("%d\t%g\t%g\t%.6g", i, s.value, s.timestep, res.Derivative)
		if res.HasSmoothed {
			line += fmt.Sprintf("\t%.6g", res.Smoothed)
		}
		if res.HasAveraged {
			line += fmt.Sprintf("\t%.6g", res.Averaged)
		}
		fmt.Fprintln(tw, line)
	}

	logger.Debug("processed stream", zap.Int("samples", len(samples)))
	return tw.Flush()
}
