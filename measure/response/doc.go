// Package response measures the frequency response of the per-sample
// low-pass filters.
//
// The filter is reset, settled with zeros so that start-up behavior (the
// first-sample initialization of the exponential smoother, the partially
// filled moving-average window) does not leak into the measurement, and
// then driven with a unit impulse. The recorded impulse response is
// transformed with an FFT.
//
// Frequencies are reported in cycles per unit time using the configured
// timestep, so a filter running on 10 Hz samples is measured up to 5 Hz.
package response
