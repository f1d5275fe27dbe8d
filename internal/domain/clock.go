package domain

import "time"

// Clock reports monotonic elapsed time since some fixed origin.
type Clock interface {
	Now() time.Duration
}

// Rand is the random source for piece draws and automatic switches.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type monotonicClock struct {
	start time.Time
}

// NewClock returns a Clock whose origin is the moment of the call.
func NewClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() time.Duration {
	return time.Since(c.start)
}
