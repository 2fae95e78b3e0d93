package kernel

import "time"

// Clock is the time source for everything the domain stamps with a time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	at time.Time
}

func NewFixedClock(at time.Time) FixedClock {
	return FixedClock{at: at.UTC()}
}

func (c FixedClock) Now() time.Time {
	return c.at
}
