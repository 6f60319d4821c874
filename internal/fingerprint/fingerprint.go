// Package fingerprint provides the 64-bit string hash functions used to
// fingerprint substrings.
//
// Each function is deterministic: the same input always maps to the same
// value. None of them is collision-free; a fingerprint is a lossy stand-in
// for exact equality and callers that need certainty must verify hits
// against the source text.
package fingerprint

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Func maps a string to a fixed-width 64-bit fingerprint.
type Func func(s string) uint64

// XXH3String fingerprints s with xxHash3-64.
func XXH3String(s string) uint64 {
	return xxh3.HashString(s)
}

// XXHash64String fingerprints s with xxHash64.
func XXHash64String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Murmur3String fingerprints s with the 64-bit half of Murmur3 x64-128.
func Murmur3String(s string) uint64 {
	return murmur3.Sum64([]byte(s))
}
