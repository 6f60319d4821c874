package fragscan

import (
	"strings"

	"github.com/tamirms/fragscan/internal/fingerprint"
)

// Index is a set of fingerprints covering every substring of a text with
// length in [1, maxLen]. It is a pure function of its construction inputs,
// holds no other state, and is safe for concurrent queries.
type Index struct {
	text           string
	hash           fingerprint.Func
	verify         bool
	fingerprints   map[uint64]struct{}
	substringCount int
}

// BuildIndex enumerates every substring of text with length in
// [1, maxLen], fingerprints each, and collects the fingerprints into a
// set. A maxLen of zero or less yields an empty index, and lengths past
// len(text) contribute nothing, so the total number of enumerated
// substrings is the sum over k in [1, maxLen] of max(0, len(text)-k+1).
//
// Construction is quadratic in maxLen for a fixed text. That blow-up
// relative to a direct scan is intentional; SubstringCount exposes it.
func BuildIndex(text string, maxLen int, opts ...IndexOption) (*Index, error) {
	cfg := defaultIndexConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	hash, err := newFingerprintFunc(cfg.algorithm)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		text:         text,
		hash:         hash,
		verify:       cfg.verify,
		fingerprints: make(map[uint64]struct{}),
	}
	for k := 1; k <= maxLen; k++ {
		for i := 0; i+k <= len(text); i++ {
			idx.fingerprints[hash(text[i:i+k])] = struct{}{}
			idx.substringCount++
		}
	}
	return idx, nil
}

// Contains reports whether the fragment's fingerprint is present in the
// index. The empty fragment is never present: zero-length substrings are
// excluded from the enumeration range.
//
// Without verification a hit is decided purely by fingerprint equality, so
// a fragment that collides with some substring of the text is reported
// present even though it never occurs. Build the index with
// WithVerification to confirm candidate hits against the text.
func (idx *Index) Contains(fragment string) bool {
	if fragment == "" {
		return false
	}
	if _, ok := idx.fingerprints[idx.hash(fragment)]; !ok {
		return false
	}
	if idx.verify {
		return strings.Contains(idx.text, fragment)
	}
	return true
}

// SubstringCount returns the total number of substrings enumerated during
// construction, counting repeated substrings each time they occur.
func (idx *Index) SubstringCount() int {
	return idx.substringCount
}

// DistinctFingerprints returns the number of distinct fingerprints stored.
func (idx *Index) DistinctFingerprints() int {
	return len(idx.fingerprints)
}

// MatchWithIndex reports the fragments that occur in text, deciding
// membership through a fingerprint index sized to the longest fragment.
// The index is built fresh on every call and discarded afterwards; nothing
// is cached across calls.
//
// Output ordering and multiplicity follow MatchDirect exactly. Absent
// fingerprint collisions the two matchers agree on every non-empty
// fragment; empty fragments are reported absent here but present by
// MatchDirect.
func MatchWithIndex(text string, fragments []string, opts ...IndexOption) ([]string, error) {
	idx, err := BuildIndex(text, maxFragmentLength(fragments), opts...)
	if err != nil {
		return nil, err
	}
	matches := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if idx.Contains(f) {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

// maxFragmentLength returns the length of the longest fragment, zero for
// an empty set.
func maxFragmentLength(fragments []string) int {
	maxLen := 0
	for _, f := range fragments {
		if len(f) > maxLen {
			maxLen = len(f)
		}
	}
	return maxLen
}
