//go:build linux

package main

import "golang.org/x/sys/unix"

// peakRSSBytes returns the maximum resident set size since process start.
// getrusage reports it in kilobytes on Linux.
func peakRSSBytes() uint64 {
	var rusage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	return uint64(rusage.Maxrss) * 1024
}
