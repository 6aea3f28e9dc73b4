// Package lowpass provides online low-pass filters for noisy sample
// streams, typically the output of a numerical derivative.
//
// Two complementary filters are provided:
//
//   - [Exponential]: a first-order IIR smoother. The output moves towards
//     each new input by 1/smoothing of the remaining distance. A smoothing
//     constant of 1 passes the input through unchanged; larger values reject
//     more noise at the cost of more lag.
//   - [MovingAverage]: a FIR boxcar over the most recent samples. Until the
//     window has filled, the average covers the samples seen so far.
//
// Constructors validate their parameters. A zero-value filter has no
// configuration and every ProcessSample call on it fails with
// [ErrNotConfigured].
//
// Filters are single-stream and not safe for concurrent use.
package lowpass
