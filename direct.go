package fragscan

import "strings"

// MatchDirect reports the fragments that occur in text as contiguous
// substrings, preserving input order and multiplicity. Each fragment is
// tested with a plain containment scan; no auxiliary structures are built,
// so the worst-case cost per fragment is (len(text)-len(fragment)+1) *
// len(fragment) comparisons.
//
// The empty fragment is contained in any text, per the usual containment
// semantics of strings.Contains. Note that an index built by BuildIndex
// answers differently for the empty fragment (see Index.Contains).
func MatchDirect(text string, fragments []string) []string {
	matches := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if strings.Contains(text, f) {
			matches = append(matches, f)
		}
	}
	return matches
}
