package lowpass_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-stream/dsp/filter/lowpass"
)

func ExampleMovingAverage_ProcessSample() {
	m, err := lowpass.NewMovingAverage(3)
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{1, 2, 3, 4, 5} {
		y, _ := m.ProcessSample(x)
		fmt.Printf("%.1f ", y)
	}
	fmt.Println()

	// Output:
	// 1.0 1.5 2.0 3.0 4.0
}

func ExampleExponential_ProcessSample() {
	e, err := lowpass.NewExponential(2)
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{4, 8, 8, 8} {
		y, _ := e.ProcessSample(x)
		fmt.Printf("%.1f ", y)
	}
	fmt.Println()

	// Output:
	// 0.0 6.0 7.0 7.5
}

func Example_notConfigured() {
	var e lowpass.Exponential
	_, err := e.ProcessSample(1)

	fmt.Println(errors.Is(err, lowpass.ErrNotConfigured))
	fmt.Println(err)

	// Output:
	// true
	// lowpass: filter not configured: smoothing constant not set
}
