// Package fragscan decides which candidate fragments occur as contiguous
// substrings of a text, using two competing strategies, and measures their
// relative runtime cost.
//
// The direct strategy scans the text once per fragment with a plain
// containment test. The index strategy enumerates every substring of the
// text up to the longest fragment's length, fingerprints each with a
// 64-bit hash, and answers membership by fingerprint lookup. The index is
// deliberately exhaustive: for a text of length n and bound maxLen it
// enumerates sum over k of max(0, n-k+1) substrings, and quantifying that
// overhead against the direct scan is the point of the exercise.
//
// # Basic Usage
//
// Matching:
//
//	direct := fragscan.MatchDirect(text, fragments)
//	indexed, err := fragscan.MatchWithIndex(text, fragments)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(fragscan.EqualResults(direct, indexed))
//
// Measuring:
//
//	samples, err := fragscan.Measure(func() {
//	    fragscan.MatchDirect(text, fragments)
//	}, fragscan.DefaultIterations)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stats := samples.Stats()
//
// # Membership Caveat
//
// By default the index decides membership purely by fingerprint equality.
// Two distinct strings that hash to the same 64-bit value therefore produce
// a false positive. Build with WithVerification to confirm every candidate
// hit against the text before reporting presence.
//
// # Package Structure
//
//   - Matching: direct.go (MatchDirect), index.go (BuildIndex, Index,
//     MatchWithIndex)
//   - Measurement: measure.go (Measure, Samples, Statistics)
//   - Comparison: compare.go (EqualResults, ComparePerformance, WorkRatio)
//   - Hash dispatch: hasher.go (FingerprintAlgorithmID, factory function)
//   - Hash functions: internal/fingerprint
//   - Error sentinels: errors/
package fragscan
