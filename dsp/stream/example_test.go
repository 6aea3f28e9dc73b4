package stream_test

import (
	"fmt"

	"github.com/cwbudde/algo-stream/dsp/stream"
)

func ExampleProcessor_ProcessSample() {
	p, err := stream.New(stream.WithSmoothing(2), stream.WithWindowLength(2))
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{1, 2, 4, 4} {
		res, err := p.ProcessSample(x, 1)
		if err != nil {
			panic(err)
		}
		fmt.Printf("d=%.3f smooth=%.3f avg=%.3f\n", res.Derivative, res.Smoothed, res.Averaged)
	}

	// Output:
	// d=0.000 smooth=0.000 avg=0.000
	// d=1.000 smooth=0.500 avg=0.500
	// d=2.000 smooth=1.250 avg=1.500
	// d=0.000 smooth=0.625 avg=1.000
}
