package lowpass

// Filter is the per-sample contract shared by [Exponential] and
// [MovingAverage].
type Filter interface {
	ProcessSample(x float64) (float64, error)
	Reset()
}

var (
	_ Filter = (*Exponential)(nil)
	_ Filter = (*MovingAverage)(nil)
)
