// Command streamdiff differentiates and low-pass filters sample streams.
//
// Usage:
//
//	streamdiff run [flags] [file.csv]
//	streamdiff demo [flags]
//	streamdiff response [flags]
//
// run reads "value[,timestep]" rows from a CSV file or stdin and prints the
// derivative and filter outputs for every row. demo differentiates a noisy
// t·sin(t) and scores each stage against the exact derivative. response
// prints the frequency response of the configured low-pass filters.
//
// Examples:
//
//	streamdiff run --timestep 0.1 --smoothing 10 --window 3 samples.csv
//	streamdiff run --bearing --max-turn 3 heading.csv
//	streamdiff demo --samples 100 --noise 0.05 --smoothing 10 --window 3
//	streamdiff response --smoothing 10 --window 3 --timestep 0.1
//	streamdiff run --config filters.yaml samples.csv
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
