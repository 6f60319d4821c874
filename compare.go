package fragscan

import "slices"

// Side identifies which of two compared measurements was faster.
type Side int

const (
	// SideNone means no side was faster: the averages were equal, or the
	// comparison was undefined.
	SideNone Side = iota
	// SideA means the first argument to ComparePerformance was faster.
	SideA
	// SideB means the second argument to ComparePerformance was faster.
	SideB
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideA:
		return "a"
	case SideB:
		return "b"
	default:
		return "none"
	}
}

// Comparison is the relative-performance verdict between two Statistics.
//
// When Defined is true, Ratio is the slower side's average divided by the
// faster side's average and is therefore at least 1; equal averages give
// Ratio 1 with Faster set to SideNone. When Defined is false the inputs
// were degenerate (an average of zero, e.g. from timing a trivial
// operation below clock resolution) and Ratio is meaningless.
type Comparison struct {
	Faster  Side
	Ratio   float64
	Defined bool
}

// EqualResults reports whether two match lists are identical: same
// elements, same order, same multiplicity.
func EqualResults(a, b []string) bool {
	return slices.Equal(a, b)
}

// ComparePerformance derives a relative-speed verdict from two sample
// reductions. It never divides by a zero or negative average; such inputs
// yield an undefined Comparison instead.
func ComparePerformance(a, b Statistics) Comparison {
	if a.Average <= 0 || b.Average <= 0 {
		return Comparison{Faster: SideNone}
	}
	switch {
	case a.Average < b.Average:
		return Comparison{
			Faster:  SideA,
			Ratio:   float64(b.Average) / float64(a.Average),
			Defined: true,
		}
	case b.Average < a.Average:
		return Comparison{
			Faster:  SideB,
			Ratio:   float64(a.Average) / float64(b.Average),
			Defined: true,
		}
	default:
		return Comparison{Faster: SideNone, Ratio: 1, Defined: true}
	}
}

// WorkRatio returns how many substrings the index approach enumerated per
// fragment actually queried, quantifying its enumeration overhead
// regardless of wall-clock outcome. The second return is false when
// fragmentCount is zero: nothing was queried and the ratio is undefined.
func WorkRatio(substringCount, fragmentCount int) (float64, bool) {
	if fragmentCount == 0 {
		return 0, false
	}
	return float64(substringCount) / float64(fragmentCount), true
}
