// SPDX-License-Identifier: MIT

package harness

import "time"

// Stopwatch measures consecutive disjoint intervals.
// Each Lap returns the time since the previous reference point and moves the
// reference point to now. With the default clock (time.Now) the difference is
// taken on the monotonic reading, so wall-clock jumps do not leak in.
type Stopwatch struct {
	clock func() time.Time
	start time.Time
}

// NewStopwatch starts a stopwatch on clock; nil means time.Now.
func NewStopwatch(clock func() time.Time) *Stopwatch {
	if clock == nil {
		clock = time.Now
	}
	return &Stopwatch{clock: clock, start: clock()}
}

// Lap returns the elapsed time since the reference point and resets it.
func (s *Stopwatch) Lap() time.Duration {
	now := s.clock()
	d := now.Sub(s.start)
	s.start = now
	return d
}

// Reset moves the reference point to now without reporting.
func (s *Stopwatch) Reset() {
	s.start = s.clock()
}
