// Fragbench exercises both matching strategies over a text and fragment
// list, checks that they agree, and reports their relative runtime cost.
//
// Usage:
//
//	go run ./cmd/fragbench -iterations 1000 -algo xxh3
//
// Flags:
//
//	-iterations  Timed runs per strategy (default: 1000)
//	-algo        Fingerprint hash: xxh3, xxhash64 or murmur3 (default: xxh3)
//	-verify      Confirm fingerprint hits against the text (default: false)
//	-text        Text to search (default: built-in sample)
//	-fragments   Comma-separated fragment list (default: built-in sample)
//	-textfile    Memory-map a file and use its contents as the text
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/edsrzf/mmap-go"

	"github.com/tamirms/fragscan"
)

const (
	defaultText      = "hellotherehowareyou"
	defaultFragments = "hello,there,how,are,you,test,youare,hellothere"
)

func loadTextFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("mmap %s: %w", path, err)
	}
	defer func() { _ = m.Unmap() }()

	// The matchers hold the text for the whole run, so copy out of the
	// mapping rather than keeping the file pinned.
	return string(m), nil
}

func formatMatches(matches []string) string {
	quoted := make([]string, len(matches))
	for i, m := range matches {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func printStats(label string, stats fragscan.Statistics) {
	fmt.Printf("\n--- %s ---\n", label)
	fmt.Printf("Average time: %v\n", stats.Average)
	fmt.Printf("Min time: %v\n", stats.Min)
	fmt.Printf("Max time: %v\n", stats.Max)
}

func main() {
	iterFlag := flag.Int("iterations", fragscan.DefaultIterations, "timed runs per strategy")
	algoFlag := flag.String("algo", "xxh3", "fingerprint hash: xxh3, xxhash64 or murmur3")
	verifyFlag := flag.Bool("verify", false, "confirm fingerprint hits against the text")
	textFlag := flag.String("text", defaultText, "text to search")
	fragmentsFlag := flag.String("fragments", defaultFragments, "comma-separated fragment list")
	textFileFlag := flag.String("textfile", "", "memory-map a file and use its contents as the text")
	flag.Parse()

	algo, err := fragscan.ParseFingerprintAlgorithm(*algoFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := []fragscan.IndexOption{fragscan.WithAlgorithm(algo)}
	if *verifyFlag {
		opts = append(opts, fragscan.WithVerification())
	}

	text := *textFlag
	if *textFileFlag != "" {
		text, err = loadTextFile(*textFileFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	var fragments []string
	if *fragmentsFlag != "" {
		fragments = strings.Split(*fragmentsFlag, ",")
	}

	fmt.Println("=== FUNCTIONALITY TEST ===")

	start := time.Now()
	directResult := fragscan.MatchDirect(text, fragments)
	directOnce := time.Since(start)
	fmt.Printf("Direct scan result: %s\n", formatMatches(directResult))
	fmt.Printf("Direct scan time: %v\n", directOnce)

	start = time.Now()
	indexedResult, err := fragscan.MatchWithIndex(text, fragments, opts...)
	indexedOnce := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Fingerprint index result: %s\n", formatMatches(indexedResult))
	fmt.Printf("Fingerprint index time: %v\n", indexedOnce)

	idx, err := fragscan.BuildIndex(text, maxFragmentLength(fragments), opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Created %d distinct substring fingerprints (%d substrings enumerated)\n",
		idx.DistinctFingerprints(), idx.SubstringCount())

	fmt.Printf("Both methods match: %v\n", fragscan.EqualResults(directResult, indexedResult))

	fmt.Println("\n=== PERFORMANCE ANALYSIS ===")
	fmt.Printf("Text length: %d\n", len(text))
	fmt.Printf("Number of fragments: %d\n", len(fragments))
	fmt.Printf("Iterations per test: %d\n", *iterFlag)

	directSamples, err := fragscan.Measure(func() {
		fragscan.MatchDirect(text, fragments)
	}, *iterFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	indexedSamples, err := fragscan.Measure(func() {
		_, _ = fragscan.MatchWithIndex(text, fragments, opts...)
	}, *iterFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	directStats := directSamples.Stats()
	indexedStats := indexedSamples.Stats()
	printStats("DIRECT SCAN", directStats)
	printStats("FINGERPRINT INDEX", indexedStats)

	verdict := fragscan.ComparePerformance(directStats, indexedStats)
	switch {
	case !verdict.Defined:
		fmt.Println("\nComparison undefined: averages below clock resolution")
	case verdict.Faster == fragscan.SideA:
		fmt.Printf("\nDirect scan is %.2fx FASTER than the fingerprint index\n", verdict.Ratio)
	case verdict.Faster == fragscan.SideB:
		fmt.Printf("\nFingerprint index is %.2fx FASTER than the direct scan\n", verdict.Ratio)
	default:
		fmt.Println("\nBoth approaches have similar performance")
	}

	fmt.Println("\n--- ANALYSIS ---")
	fmt.Printf("Fingerprint index enumerates %d substrings and hashes\n", idx.SubstringCount())
	fmt.Printf("Direct scan only checks %d fragments\n", len(fragments))
	if ratio, ok := fragscan.WorkRatio(idx.SubstringCount(), len(fragments)); ok {
		fmt.Printf("Ratio: fingerprint index does %d/%d = %.1fx more work\n",
			idx.SubstringCount(), len(fragments), ratio)
	} else {
		fmt.Println("Ratio: undefined (no fragments queried)")
	}

	if rss := peakRSSBytes(); rss > 0 {
		fmt.Printf("\nPeak RSS: %.1f MB\n", float64(rss)/(1024*1024))
	}
}

func maxFragmentLength(fragments []string) int {
	maxLen := 0
	for _, f := range fragments {
		if len(f) > maxLen {
			maxLen = len(f)
		}
	}
	return maxLen
}
