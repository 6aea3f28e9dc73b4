package derivative_test

import (
	"fmt"

	"github.com/cwbudde/algo-stream/dsp/derivative"
)

func ExampleEstimator_ProcessSample() {
	e := derivative.New()
	for _, x := range []float64{1, 2, 4, 4} {
		fmt.Printf("%.1f ", e.ProcessSample(x, 1))
	}
	fmt.Println()

	// Output:
	// 0.0 1.0 2.0 0.0
}

func ExampleBearingEstimator_ProcessSample() {
	b := derivative.NewBearing()
	b.ProcessSample(3.0, 0.1)

	// The naive difference would be -60 rad/s.
	fmt.Printf("%.3f rad/s\n", b.ProcessSample(-3.0, 0.1))

	// Output:
	// 2.832 rad/s
}
