// Package derivative provides online first-difference estimators for
// sample streams.
//
// An [Estimator] differentiates an ordinary scalar stream. A
// [BearingEstimator] differentiates an angle wrapped onto (-π, π] and
// unwraps crossings of the ±π branch cut heuristically, so that a heading
// moving smoothly from 3.1 rad to -3.1 rad reports a small positive rate
// rather than a large negative spike.
//
// Both estimators take the time elapsed since the previous sample with
// every call, so unevenly spaced streams are supported. The timestep must
// be positive: zero yields ±Inf or NaN and negative values invert the sign.
// Neither case is checked on the per-sample path.
//
// Instances are not safe for concurrent use. Run one estimator per stream.
package derivative
