package derivative

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-stream/dsp/core"
	"github.com/cwbudde/algo-stream/internal/testutil"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestBearingDefaults(t *testing.T) {
	b := NewBearing()
	if got := b.MaxTurnRate(); got != DefaultMaxTurnRate {
		t.Fatalf("MaxTurnRate: got %v, want %v", got, DefaultMaxTurnRate)
	}

	var zero BearingEstimator
	if got := zero.MaxTurnRate(); got != DefaultMaxTurnRate {
		t.Fatalf("zero value MaxTurnRate: got %v, want %v", got, DefaultMaxTurnRate)
	}
}

func TestBearingWithMaxTurnRate(t *testing.T) {
	if got := NewBearing(WithMaxTurnRate(5)).MaxTurnRate(); got != 5 {
		t.Fatalf("got %v, want 5", got)
	}

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if got := NewBearing(WithMaxTurnRate(bad)).MaxTurnRate(); got != DefaultMaxTurnRate {
			t.Fatalf("WithMaxTurnRate(%v): got %v, want default", bad, got)
		}
	}
}

func TestBearingBranchCutCrossing(t *testing.T) {
	b := NewBearing()
	b.ProcessSample(3.0, 0.1)

	got := b.ProcessSample(-3.0, 0.1)
	naive := (-3.0 - 3.0) / 0.1
	if math.Abs(got) > math.Pi {
		t.Fatalf("rate %v not unwrapped (naive %v)", got, naive)
	}

	want := (-6.0 + core.TwoPi) / 0.1
	testutil.RequireNearlyEqual(t, got, want, 1e-12)
}

func TestBearingSmallStepsPassThrough(t *testing.T) {
	b := NewBearing()
	got := testutil.Feed([]float64{0, 0.1, 0.25, 0.3, 0.2}, func(x float64) float64 {
		return b.ProcessSample(x, 0.1)
	})
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1, 1.5, 0.5, -1}, 1e-12)
}

func TestBearingContinuousRotation(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		timestep float64
		maxTurn  float64
	}{
		{name: "counterclockwise", rate: 1, timestep: 0.1, maxTurn: DefaultMaxTurnRate},
		{name: "clockwise", rate: -1, timestep: 0.1, maxTurn: DefaultMaxTurnRate},
		// Spinning up from rest at 4 rad/s needs a looser threshold.
		{name: "fast counterclockwise", rate: 4, timestep: 0.05, maxTurn: 5},
		{name: "fast clockwise", rate: -4, timestep: 0.05, maxTurn: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bearings := testutil.WrappedRotation(0, tt.rate, tt.timestep, 200)
			b := NewBearing(WithMaxTurnRate(tt.maxTurn))
			got := testutil.Feed(bearings, func(x float64) float64 {
				return b.ProcessSample(x, tt.timestep)
			})

			for i := 1; i < len(got); i++ {
				if math.Abs(got[i]-tt.rate) > 1e-9 {
					t.Fatalf("sample %d (bearing %v): rate %v, want %v", i, bearings[i], got[i], tt.rate)
				}
				// The unwrapped rate is the shortest rotation per timestep.
				step := core.AngleDiff(bearings[i-1], bearings[i]) / tt.timestep
				if math.Abs(got[i]-step) > 1e-9 {
					t.Fatalf("sample %d: rate %v, shortest rotation rate %v", i, got[i], step)
				}
			}
		})
	}
}

func TestBearingLastCandidateWins(t *testing.T) {
	// From rest at bearing 0, a jump to 3 rad in 0.1 s fails all three
	// candidates, so the +2π candidate is reported.
	b := NewBearing()
	got := b.ProcessSample(3.0, 0.1)
	want := (3.0 + core.TwoPi) / 0.1
	testutil.RequireNearlyEqual(t, got, want, 1e-12)
}

func TestBearingLargeThresholdKeepsNaiveRate(t *testing.T) {
	b := NewBearing(WithMaxTurnRate(50))
	b.ProcessSample(3.0, 0.1)

	got := b.ProcessSample(-3.0, 0.1)
	testutil.RequireNearlyEqual(t, got, -60, 1e-12)
}

func TestBearingReset(t *testing.T) {
	b := NewBearing(WithMaxTurnRate(3))
	b.ProcessSample(1, 0.1)
	b.ProcessSample(1.2, 0.1)
	b.Reset()

	if b.MaxTurnRate() != 3 {
		t.Fatalf("Reset changed max turn rate to %v", b.MaxTurnRate())
	}
	if got := b.ProcessSample(0.1, 0.1); math.Abs(got-1) > 1e-12 {
		t.Fatalf("after reset: got %v, want 1", got)
	}
}

func TestBearingProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("steady rotation is unwrapped across the branch cut", prop.ForAll(
		func(start, rate float64) bool {
			const ts = 0.1
			bearings := testutil.WrappedRotation(start, rate, ts, 128)

			b := NewBearing()
			// Prime with the true state so the first reported rate is plausible.
			b.prev = bearings[0]
			b.prevRate = rate

			for _, x := range bearings[1:] {
				if math.Abs(b.ProcessSample(x, ts)-rate) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(-math.Pi, math.Pi),
		gen.Float64Range(-8, 8),
	))

	properties.TestingRun(t)
}

func BenchmarkBearingProcessSample(b *testing.B) {
	bearings := testutil.WrappedRotation(0, 1, 0.1, 1024)
	est := NewBearing()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		est.ProcessSample(bearings[i%len(bearings)], 0.1)
	}
}
