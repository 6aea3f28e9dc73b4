package lowpass

import "errors"

// Errors returned by the low-pass filters.
var (
	// ErrNotConfigured is returned when a filter is used without the
	// parameter its constructor would have supplied.
	ErrNotConfigured    = errors.New("lowpass: filter not configured")
	ErrInvalidSmoothing = errors.New("lowpass: smoothing constant must be finite and >= 1")
	ErrInvalidLength    = errors.New("lowpass: window length must be > 0")
)
