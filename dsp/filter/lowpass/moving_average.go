package lowpass

import (
	"fmt"

	"github.com/gammazero/deque"
)

// MovingAverage reports the arithmetic mean of the last Length() samples.
//
// The window is a bounded FIFO: once full, each new sample evicts the
// oldest. Output is produced from the first sample on, averaged over
// however many samples the window currently holds.
type MovingAverage struct {
	length int
	window deque.Deque[float64]
}

// NewMovingAverage returns a moving average over length samples.
func NewMovingAverage(length int) (*MovingAverage, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	return &MovingAverage{length: length}, nil
}

// Length returns the configured window capacity, or 0 for a zero-value
// filter.
func (m *MovingAverage) Length() int {
	return m.length
}

// Len returns the number of samples currently held.
func (m *MovingAverage) Len() int {
	return m.window.Len()
}

// ProcessSample pushes x into the window and returns the window mean.
func (m *MovingAverage) ProcessSample(x float64) (float64, error) {
	if m.length == 0 {
		return 0, fmt.Errorf("%w: window length not set", ErrNotConfigured)
	}

	for m.window.Len() >= m.length {
		m.window.PopFront()
	}
	m.window.PushBack(x)

	n := m.window.Len()
	var sum float64
	for i := range n {
		sum += m.window.At(i)
	}
	return sum / float64(n), nil
}

// Reset empties the window. The window length is kept.
func (m *MovingAverage) Reset() {
	m.window.Clear()
}
