// SPDX-License-Identifier: MIT

package harness

import "time"

// Sample is one measured phase.
type Sample struct {
	Phase      string        // human label, e.g. "fill" or an index kind
	Elapsed    time.Duration // wall time of the phase
	Items      int           // work items processed (triplets, queries)
	Matches    int           // occupied hits; meaningful only when HasMatches
	HasMatches bool
}

// Millis returns the elapsed time truncated to whole milliseconds.
func (s Sample) Millis() int64 {
	return s.Elapsed.Milliseconds()
}

// WithMatches returns a copy of s carrying a hit count.
func (s Sample) WithMatches(n int) Sample {
	s.Matches = n
	s.HasMatches = true
	return s
}
