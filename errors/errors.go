// Package errors defines all exported error sentinels for the fragscan
// library.
//
// This is the single source of truth for error values. The top-level
// fragscan package wraps these with fmt.Errorf("%w: ...") at use sites,
// so errors.Is checks work regardless of added context.
package errors

import "errors"

var (
	// ErrUnknownAlgorithm is returned when a FingerprintAlgorithmID does
	// not name a supported hash function.
	ErrUnknownAlgorithm = errors.New("fragscan: unknown fingerprint algorithm")

	// ErrInvalidIterations is returned when Measure is asked for fewer
	// than one iteration. A non-positive count is a caller contract
	// violation, not a degenerate input to clamp.
	ErrInvalidIterations = errors.New("fragscan: iteration count must be at least 1")
)
