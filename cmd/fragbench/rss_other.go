//go:build !linux

package main

// peakRSSBytes is unavailable on this platform; the report omits the line.
func peakRSSBytes() uint64 {
	return 0
}
