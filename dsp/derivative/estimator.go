package derivative

// Differentiator is implemented by every estimator in this package.
type Differentiator interface {
	// ProcessSample consumes one sample and returns the rate of change
	// since the previous one.
	ProcessSample(value, timestep float64) float64
	// Reset returns the estimator to its freshly constructed state.
	Reset()
}

// Estimator computes (x[n] - x[n-1]) / timestep for a scalar stream.
//
// The first sample carries no rate information and produces 0.
// The zero value is ready to use.
type Estimator struct {
	prev    float64
	hasPrev bool
}

var _ Differentiator = (*Estimator)(nil)

// New returns an Estimator with no history.
func New() *Estimator {
	return &Estimator{}
}

// ProcessSample stores value and returns its first difference divided by
// timestep. It returns 0 on the first call after construction or Reset.
func (e *Estimator) ProcessSample(value, timestep float64) float64 {
	if !e.hasPrev {
		e.prev = value
		e.hasPrev = true
		return 0
	}

	d := (value - e.prev) / timestep
	e.prev = value
	return d
}

// Primed reports whether at least one sample has been consumed.
func (e *Estimator) Primed() bool {
	return e.hasPrev
}

// Reset forgets the previous sample.
func (e *Estimator) Reset() {
	e.prev = 0
	e.hasPrev = false
}
