// Package tracking scores how closely an estimated stream follows a known
// reference, for example a filtered numerical derivative against the
// analytic derivative of a test signal.
//
// # Usage
//
//	m, err := tracking.Compare(smoothed, exact, tracking.WithSkip(10))
//	fmt.Printf("rms=%.3f bias=%.3f\n", m.RMS, m.Bias)
//
// Filters lag and need a few samples to settle, so the first samples can be
// excluded with [WithSkip].
package tracking
