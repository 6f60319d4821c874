package fragscan

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns a source seeded from the test name, so each test gets a
// distinct but reproducible stream.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewSource(int64((testSeed1 ^ s1) ^ (testSeed2 ^ s2))))
}

// randomText generates a lowercase ASCII text of length n.
func randomText(rng *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('a' + rng.Intn(26))
	}
	return string(buf)
}

// randomFragments draws count fragments from text plus some strings that
// cannot occur in it (they contain an uppercase letter).
func randomFragments(rng *rand.Rand, text string, count int) []string {
	fragments := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if i%3 == 2 || len(text) == 0 {
			fragments = append(fragments, "X"+randomText(rng, 1+rng.Intn(4)))
			continue
		}
		k := 1 + rng.Intn(min(8, len(text)))
		start := rng.Intn(len(text) - k + 1)
		fragments = append(fragments, text[start:start+k])
	}
	return fragments
}

// The worked example shared by several tests.
var (
	sampleText      = "hellotherehowareyou"
	sampleFragments = []string{"hello", "there", "how", "are", "you", "test", "youare", "hellothere"}
	sampleMatches   = []string{"hello", "there", "how", "are", "you", "hellothere"}
)
