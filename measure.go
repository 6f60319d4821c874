package fragscan

import (
	"fmt"
	"time"

	fragerrors "github.com/tamirms/fragscan/errors"
)

// DefaultIterations is the iteration count used by cmd/fragbench when none
// is given.
const DefaultIterations = 1000

// Samples is a collection of wall-clock durations, one per measured
// execution.
type Samples []time.Duration

// Statistics is the reduction of a sample collection.
type Statistics struct {
	Average time.Duration
	Min     time.Duration
	Max     time.Duration
}

// Stats reduces the samples to {average, minimum, maximum}. An empty
// collection reduces to the zero Statistics.
func (s Samples) Stats() Statistics {
	if len(s) == 0 {
		return Statistics{}
	}
	stats := Statistics{Min: s[0], Max: s[0]}
	var total time.Duration
	for _, d := range s {
		total += d
		if d < stats.Min {
			stats.Min = d
		}
		if d > stats.Max {
			stats.Max = d
		}
	}
	stats.Average = total / time.Duration(len(s))
	return stats
}

// Measure executes op the given number of times, recording the wall-clock
// elapsed time of each execution from immediately before to immediately
// after the call. Every iteration runs to completion; nothing is retried,
// skipped, or timed out. The samples use the monotonic clock and are never
// negative.
//
// Iterations below 1 are a caller contract violation and fail fast with
// errors.ErrInvalidIterations.
func Measure(op func(), iterations int) (Samples, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", fragerrors.ErrInvalidIterations, iterations)
	}
	samples := make(Samples, iterations)
	for i := range samples {
		start := time.Now()
		op()
		samples[i] = time.Since(start)
	}
	return samples, nil
}
