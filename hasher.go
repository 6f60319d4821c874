package fragscan

import (
	"fmt"

	fragerrors "github.com/tamirms/fragscan/errors"
	"github.com/tamirms/fragscan/internal/fingerprint"
)

// FingerprintAlgorithmID identifies the hash function used to fingerprint
// substrings.
type FingerprintAlgorithmID uint16

const (
	// AlgoXXH3 uses xxHash3-64. This is the default.
	AlgoXXH3 FingerprintAlgorithmID = 0

	// AlgoXXHash64 uses xxHash64.
	AlgoXXHash64 FingerprintAlgorithmID = 1

	// AlgoMurmur3 uses the 64-bit half of Murmur3 x64-128.
	AlgoMurmur3 FingerprintAlgorithmID = 2
)

// String returns the algorithm name.
func (a FingerprintAlgorithmID) String() string {
	switch a {
	case AlgoXXH3:
		return "xxh3"
	case AlgoXXHash64:
		return "xxhash64"
	case AlgoMurmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// ParseFingerprintAlgorithm maps a name as returned by String back to its
// ID. It is the inverse of String for the supported algorithms.
func ParseFingerprintAlgorithm(name string) (FingerprintAlgorithmID, error) {
	switch name {
	case "xxh3":
		return AlgoXXH3, nil
	case "xxhash64":
		return AlgoXXHash64, nil
	case "murmur3":
		return AlgoMurmur3, nil
	}
	return 0, fmt.Errorf("%w: %q", fragerrors.ErrUnknownAlgorithm, name)
}

// newFingerprintFunc returns the hash function for the given algorithm ID.
func newFingerprintFunc(id FingerprintAlgorithmID) (fingerprint.Func, error) {
	switch id {
	case AlgoXXH3:
		return fingerprint.XXH3String, nil
	case AlgoXXHash64:
		return fingerprint.XXHash64String, nil
	case AlgoMurmur3:
		return fingerprint.Murmur3String, nil
	}
	return nil, fmt.Errorf("%w: ID %d", fragerrors.ErrUnknownAlgorithm, id)
}
