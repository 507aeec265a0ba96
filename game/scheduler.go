package game

import "time"

// DefaultStepInterval is the game time between two discrete ticks
const DefaultStepInterval = 500 * time.Millisecond

// Scheduler decouples the tick rate from the frame rate.
// Time accumulates across frames; a tick fires once the interval is reached and the
// accumulator restarts from zero, discarding any excess.
type Scheduler struct {
	Interval time.Duration
	elapsed  time.Duration
}

// Accumulate adds dt and reports whether a tick is due
func (s *Scheduler) Accumulate(dt time.Duration) bool {
	s.elapsed += dt
	if s.elapsed >= s.Interval {
		s.elapsed = 0
		return true
	}
	return false
}

// Elapsed returns time accumulated toward the next tick
func (s *Scheduler) Elapsed() time.Duration {
	return s.elapsed
}

// Reset drops accumulated time
func (s *Scheduler) Reset() {
	s.elapsed = 0
}
