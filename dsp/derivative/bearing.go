package derivative

import (
	"math"

	"github.com/cwbudde/algo-stream/dsp/core"
)

// DefaultMaxTurnRate is the largest change in angular rate, in radians per
// unit time, accepted between consecutive samples before a branch-cut
// crossing is suspected.
const DefaultMaxTurnRate = 2.0

// BearingOption configures a BearingEstimator.
type BearingOption func(*BearingEstimator)

// WithMaxTurnRate sets the plausibility threshold used to detect wraparound.
// It should be tuned to the sample rate and the expected dynamics of the
// tracked body. Non-positive or non-finite values are ignored.
func WithMaxTurnRate(rate float64) BearingOption {
	return func(b *BearingEstimator) {
		if rate > 0 && core.IsFinite(rate) {
			b.maxTurn = rate
		}
	}
}

// BearingEstimator differentiates an angle wrapped onto (-π, π].
//
// For every sample it tries up to three candidate rates, in order:
//
//	d0 = (θ - θprev) / dt
//	d1 = (θ - θprev - 2π) / dt
//	d2 = (θ - θprev + 2π) / dt
//
// A candidate is accepted when its magnitude differs from the magnitude of
// the previously reported rate by no more than the max turn rate. If no
// candidate passes, d2 is reported. This is a heuristic and can be defeated
// by rates close to a multiple of 2π/dt.
//
// Before the first sample the previous angle and rate are both 0, so the
// first call is evaluated against a bearing of 0. The zero value is ready to
// use with [DefaultMaxTurnRate].
type BearingEstimator struct {
	maxTurn float64

	prev     float64
	prevRate float64
}

var _ Differentiator = (*BearingEstimator)(nil)

// NewBearing returns a BearingEstimator using [DefaultMaxTurnRate] unless
// overridden.
func NewBearing(opts ...BearingOption) *BearingEstimator {
	b := &BearingEstimator{maxTurn: DefaultMaxTurnRate}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// MaxTurnRate returns the configured plausibility threshold.
func (b *BearingEstimator) MaxTurnRate() float64 {
	if b.maxTurn <= 0 {
		return DefaultMaxTurnRate
	}
	return b.maxTurn
}

// ProcessSample stores value and returns the unwrapped angular rate.
func (b *BearingEstimator) ProcessSample(value, timestep float64) float64 {
	delta := value - b.prev

	rate := delta / timestep
	if b.implausible(rate) {
		rate = (delta - core.TwoPi) / timestep
		if b.implausible(rate) {
			rate = (delta + core.TwoPi) / timestep
		}
	}

	b.prev = value
	b.prevRate = rate
	return rate
}

// implausible reports whether rate jumps too far from the previous rate.
func (b *BearingEstimator) implausible(rate float64) bool {
	return math.Abs(math.Abs(rate)-math.Abs(b.prevRate)) > b.MaxTurnRate()
}

// Reset clears the stored angle and rate. The max turn rate is kept.
func (b *BearingEstimator) Reset() {
	b.prev = 0
	b.prevRate = 0
}
